package loadsheet

import "fmt"

// ProfileNotFoundError is returned when the requested aircraft profile does
// not exist in the catalog.
type ProfileNotFoundError struct {
	ProfileID string
	Err       error
}

func (e *ProfileNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile %s not found: %v", e.ProfileID, e.Err)
	}
	return fmt.Sprintf("profile %s not found", e.ProfileID)
}

func (e *ProfileNotFoundError) Unwrap() error {
	return e.Err
}

func NewProfileNotFoundError(profileID string, err error) *ProfileNotFoundError {
	return &ProfileNotFoundError{
		ProfileID: profileID,
		Err:       err,
	}
}

// Error when a loadout cannot be applied to the profile it targets
type InvalidLoadoutError struct {
	Message string
}

func (e *InvalidLoadoutError) Error() string {
	return e.Message
}

func NewInvalidLoadoutError(format string, args ...interface{}) *InvalidLoadoutError {
	return &InvalidLoadoutError{
		Message: fmt.Sprintf(format, args...),
	}
}

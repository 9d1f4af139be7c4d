package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestProfileCache(clk clock) *ProfileCache {
	return &ProfileCache{
		ttl:   time.Hour,
		clock: clk,
	}
}

func TestProfileCacheEmptyIsAMiss(t *testing.T) {
	t.Parallel()

	cache := newTestProfileCache(&fakeClock{now: time.Now()})
	assert.Nil(t, cache.GetProfiles())
}

func TestProfileCacheReturnsFreshProfiles(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Now()}
	cache := newTestProfileCache(clk)

	cache.SetProfiles(testProfiles())

	got := cache.GetProfiles()
	assert.Len(t, got, 2)
	assert.Equal(t, "asw27", got[0].ID)
}

func TestProfileCacheExpires(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Now()}
	cache := newTestProfileCache(clk)

	cache.SetProfiles(testProfiles())
	clk.Advance(2 * time.Hour)

	assert.Nil(t, cache.GetProfiles())
}

func TestProfileCacheRefreshResetsTTL(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Now()}
	cache := newTestProfileCache(clk)

	cache.SetProfiles(testProfiles())
	clk.Advance(2 * time.Hour)
	cache.SetProfiles(testProfiles()[:1])

	got := cache.GetProfiles()
	assert.Len(t, got, 1)
}

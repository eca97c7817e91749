//go:build unit

package reservation_test

import (
	"math/rand"
	"testing"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSlots(t *testing.T) {
	t.Run("free day exposes the full catalog", func(t *testing.T) {
		assert.Equal(t, slot.Catalog(), reservation.AvailableSlots(slot.Set{}))
	})

	t.Run("occupied slots disappear from availability", func(t *testing.T) {
		occupied, err := slot.NewSet([]string{"09:00-10:00", "12:00-13:00"})
		require.NoError(t, err)

		available := reservation.AvailableSlots(occupied)
		assert.Len(t, available, 5)
		for _, s := range available {
			assert.False(t, occupied.Contains(s))
		}
	})
}

func TestHasConflict(t *testing.T) {
	mustSet := func(values ...string) slot.Set {
		set, err := slot.NewSet(values)
		require.NoError(t, err)
		return set
	}

	t.Run("disjoint sets never conflict", func(t *testing.T) {
		requested := mustSet("09:00-10:00")
		occupied := mustSet("14:00-15:00", "15:00-16:00")
		assert.False(t, reservation.HasConflict(requested, occupied))
	})

	t.Run("single shared slot conflicts the whole request", func(t *testing.T) {
		requested := mustSet("09:00-10:00", "10:00-11:00", "11:00-12:00")
		occupied := mustSet("11:00-12:00")
		assert.True(t, reservation.HasConflict(requested, occupied))
	})

	t.Run("empty occupied set conflicts with nothing", func(t *testing.T) {
		requested := mustSet("09:00-10:00", "15:00-16:00")
		assert.False(t, reservation.HasConflict(requested, slot.Set{}))
	})

	// HasConflict(requested, occupied) must agree with the availability view:
	// a request is conflict-free exactly when it is a subset of the available
	// slots computed from the same occupied set.
	t.Run("agrees with availability for random subsets", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		catalog := slot.Catalog()

		randomSubset := func(nonEmpty bool) slot.Set {
			var picked []slot.Slot
			for _, s := range catalog {
				if rng.Intn(2) == 0 {
					picked = append(picked, s)
				}
			}
			if nonEmpty && len(picked) == 0 {
				picked = append(picked, catalog[rng.Intn(len(catalog))])
			}
			return slot.CollectSet(picked)
		}

		for range 200 {
			requested := randomSubset(true)
			occupied := randomSubset(false)

			available := slot.CollectSet(reservation.AvailableSlots(occupied))
			wantConflict := !requested.IsSubsetOf(available)

			assert.Equal(t, wantConflict, reservation.HasConflict(requested, occupied),
				"requested=%v occupied=%v", requested.Strings(), occupied.Strings())
		}
	})
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetUtilizationZeroBudget(t *testing.T) {
	for _, tc := range []struct{ spent, allocated float64 }{{0, 0}, {500, 0}, {120, 999}} {
		u := ComputeBudgetUtilization(0, tc.spent, tc.allocated, 3)
		assert.Zero(t, u.Available)
		assert.Zero(t, u.UtilizationRate)
		assert.Zero(t, u.AllocationRate)
		assert.Equal(t, int64(3), u.InfluencerCount)
	}
}

func TestBudgetUtilizationRates(t *testing.T) {
	u := ComputeBudgetUtilization(5000, 2000, 0, 0)
	assert.Equal(t, 40.0, u.UtilizationRate)
	assert.Equal(t, 3000.0, u.Available)
	assert.Equal(t, 0.0, u.AllocationRate)

	u = ComputeBudgetUtilization(1000, 250, 750, 2)
	assert.Equal(t, 25.0, u.UtilizationRate)
	assert.Equal(t, 75.0, u.AllocationRate)
}

func TestBudgetUtilizationOverspendNotClamped(t *testing.T) {
	u := ComputeBudgetUtilization(1000, 1500, 2000, 0)
	assert.Equal(t, 150.0, u.UtilizationRate)
	assert.Equal(t, 200.0, u.AllocationRate)
	assert.Equal(t, 0.0, u.Available)
}

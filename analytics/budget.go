package analytics

import "math"

type BudgetUtilization struct {
	CampaignID      uint    `json:"campaignId"`
	Budget          float64 `json:"budget"`
	Spent           float64 `json:"spent"`
	Allocated       float64 `json:"allocated"`
	Available       float64 `json:"available"`
	UtilizationRate float64 `json:"utilizationRate"`
	AllocationRate  float64 `json:"allocationRate"`
	InfluencerCount int64   `json:"influencerCount"`
}

// ComputeBudgetUtilization derives ratios from stored budget fields. Rates are
// percentages and are left unclamped so overspend shows above 100.
func ComputeBudgetUtilization(budget, spent, allocated float64, influencerCount int64) BudgetUtilization {
	u := BudgetUtilization{
		Budget:          budget,
		Spent:           spent,
		Allocated:       allocated,
		InfluencerCount: influencerCount,
	}
	if budget == 0 {
		return u
	}
	u.Available = math.Max(0, budget-spent)
	u.UtilizationRate = spent / budget * 100
	u.AllocationRate = allocated / budget * 100
	return u
}

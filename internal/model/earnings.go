package model

// CircleEarnings tracks a circle's harvest history.
type CircleEarnings struct {
	CircleID          CircleID `json:"circle_id"`
	TotalEarned       Amount   `json:"total_earned"`
	TotalHarvests     uint32   `json:"total_harvests"`
	LastHarvestAmount Amount   `json:"last_harvest_amount"`
}

// NewCircleEarnings returns zeroed earnings for a circle.
func NewCircleEarnings(id CircleID) *CircleEarnings {
	return &CircleEarnings{CircleID: id}
}

// AveragePerHarvest is derived at read time, not stored.
func (e *CircleEarnings) AveragePerHarvest() Amount {
	if e.TotalHarvests == 0 {
		return 0
	}
	return e.TotalEarned / Amount(e.TotalHarvests)
}

// HarvestResult is the aggregate report of a harvest batch. Per-circle
// failures are tallied here, never raised to the caller.
type HarvestResult struct {
	TotalDistributed  Amount `json:"total_distributed"`
	SuccessfulCircles uint32 `json:"successful_circles"`
	FailedHarvests    uint32 `json:"failed_harvests"`
}

package response

import "github.com/kalegame/circleoftrust/internal/model"

type CreateCircleResponse struct {
	CircleID model.CircleID `json:"circle_id"`
}

type CircleResponse struct {
	Circle model.CircleInfo `json:"circle"`
}

type CircleListResponse struct {
	Circles []model.CircleInfo `json:"circles"`
}

type CircleMembersResponse struct {
	Members []model.WalletID `json:"members"`
}

type CircleEarningsResponse struct {
	Earnings model.CircleEarnings `json:"earnings"`
}

type TopCirclesResponse struct {
	Circles []model.CircleEarnings `json:"circles"`
}

type HarvestResponse struct {
	Result model.HarvestResult `json:"result"`
}

type PlayerStatsResponse struct {
	Stats model.PlayerStats `json:"stats"`
}

type PlayerEarningsResponse struct {
	Earnings model.PlayerEarnings `json:"earnings"`
}

type WalletCirclesResponse struct {
	CircleIDs []model.CircleID `json:"circle_ids"`
}

type InCircleResponse struct {
	InCircle bool `json:"in_circle"`
}

type ScoreboardResponse struct {
	Entries []model.ScoreboardEntry `json:"entries"`
}

type TotalStatsResponse struct {
	Stats model.TotalStats `json:"stats"`
}

type TotalKaleResponse struct {
	TotalKaleEarned model.Amount `json:"total_kale_earned"`
}

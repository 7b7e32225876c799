package model

// ScoreboardEntry is a derived, non-persisted view of one player's
// reputation. All fields are recomputed from PlayerStats on every read.
type ScoreboardEntry struct {
	Wallet          WalletID `json:"wallet"`
	CirclesCreated  uint32   `json:"circles_created"`
	CirclesJoined   uint32   `json:"circles_joined"`
	CirclesBetrayed uint32   `json:"circles_betrayed"`
	TimesBetrayed   uint32   `json:"times_betrayed"`
	TrustScore      int64    `json:"trust_score"`
	BetrayalRatio   uint32   `json:"betrayal_ratio"`
	TotalKaleEarned Amount   `json:"total_kale_earned"`
	KalePerCircle   Amount   `json:"kale_per_circle"`
}

// TotalStats aggregates participation across all known players.
type TotalStats struct {
	TotalPlayers        uint32 `json:"total_players"`
	TotalCirclesCreated uint32 `json:"total_circles_created"`
	TotalCirclesJoined  uint32 `json:"total_circles_joined"`
	TotalBetrayals      uint32 `json:"total_betrayals"`
	TotalKaleEarned     Amount `json:"total_kale_earned"`
}

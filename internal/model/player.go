package model

// PlayerStats tracks a wallet's cumulative participation. Created on first
// participation, mutated on every relevant transition, never deleted.
type PlayerStats struct {
	Wallet          WalletID `json:"wallet"`
	CirclesCreated  uint32   `json:"circles_created"`
	CirclesJoined   uint32   `json:"circles_joined"`
	CirclesBetrayed uint32   `json:"circles_betrayed"`
	TimesBetrayed   uint32   `json:"times_betrayed"`
	TotalKaleEarned Amount   `json:"total_kale_earned"`
}

// NewPlayerStats returns zeroed stats for a wallet.
func NewPlayerStats(wallet WalletID) *PlayerStats {
	return &PlayerStats{Wallet: wallet}
}

// PlayerEarnings breaks a wallet's reward total into its three mutually
// exclusive sources. The invariant is that the three components always sum
// to the wallet's PlayerStats.TotalKaleEarned.
type PlayerEarnings struct {
	Wallet            WalletID `json:"wallet"`
	TotalKaleEarned   Amount   `json:"total_kale_earned"`
	FromOwnCircles    Amount   `json:"kale_earned_from_own_circles"`
	FromJoinedCircles Amount   `json:"kale_earned_from_join_circles"`
	FromBetrayals     Amount   `json:"kale_earned_from_betrayals"`
}

// NewPlayerEarnings returns zeroed earnings for a wallet.
func NewPlayerEarnings(wallet WalletID) *PlayerEarnings {
	return &PlayerEarnings{Wallet: wallet}
}

package redis

import (
	"fmt"

	"github.com/kalegame/circleoftrust/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "circletrust"

// Key generation functions for each entity type

// circleKey returns the Redis key for a Circle
func circleKey(id model.CircleID) string {
	return fmt.Sprintf("%s:circle:%d", keyPrefix, id)
}

// nextCircleIDKey returns the Redis key for the circle id counter
func nextCircleIDKey() string {
	return fmt.Sprintf("%s:next_circle_id", keyPrefix)
}

// allCircleIDsKey returns the Redis key for the LIST of all circle ids
func allCircleIDsKey() string {
	return fmt.Sprintf("%s:all_circle_ids", keyPrefix)
}

// createdCircleKey returns the Redis key for the creator -> circle_id index
func createdCircleKey(creator model.WalletID) string {
	return fmt.Sprintf("%s:idx:created_circle:%s", keyPrefix, creator)
}

// circleMembersKey returns the Redis key for a circle's member list
func circleMembersKey(id model.CircleID) string {
	return fmt.Sprintf("%s:circle_members:%d", keyPrefix, id)
}

// walletCircleKey returns the Redis key for the wallet -> circle_id index
func walletCircleKey(wallet model.WalletID) string {
	return fmt.Sprintf("%s:idx:wallet_circle:%s", keyPrefix, wallet)
}

// playerStatsKey returns the Redis key for a wallet's PlayerStats
func playerStatsKey(wallet model.WalletID) string {
	return fmt.Sprintf("%s:player_stats:%s", keyPrefix, wallet)
}

// playerEarningsKey returns the Redis key for a wallet's PlayerEarnings
func playerEarningsKey(wallet model.WalletID) string {
	return fmt.Sprintf("%s:player_earnings:%s", keyPrefix, wallet)
}

// allPlayersKey returns the Redis key for the LIST of all participants
func allPlayersKey() string {
	return fmt.Sprintf("%s:all_players", keyPrefix)
}

// circleEarningsKey returns the Redis key for a circle's CircleEarnings
func circleEarningsKey(id model.CircleID) string {
	return fmt.Sprintf("%s:circle_earnings:%d", keyPrefix, id)
}

// totalKaleEarnedKey returns the Redis key for the global earnings total
func totalKaleEarnedKey() string {
	return fmt.Sprintf("%s:total_kale_earned", keyPrefix)
}

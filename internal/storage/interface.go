package storage

import (
	"context"

	"github.com/kalegame/circleoftrust/internal/model"
)

// Storage defines the interface for data persistence. It is a typed
// repository over the ledger's key space; implementations provide durable
// gets and sets but no transactions; callers own all consistency.
type Storage interface {
	// Circle operations
	SaveCircle(ctx context.Context, circle *model.Circle) error
	GetCircle(ctx context.Context, id model.CircleID) (*model.Circle, error)

	// Circle id allocation and registry.
	// AllocateCircleID returns the next id and advances the counter.
	AllocateCircleID(ctx context.Context) (model.CircleID, error)
	AppendCircleID(ctx context.Context, id model.CircleID) error
	GetAllCircleIDs(ctx context.Context) ([]model.CircleID, error)

	// Creator -> circle index
	SaveCreatedCircle(ctx context.Context, creator model.WalletID, id model.CircleID) error
	GetCreatedCircle(ctx context.Context, creator model.WalletID) (model.CircleID, error)
	HasCreatedCircle(ctx context.Context, creator model.WalletID) (bool, error)

	// Membership: full member set per circle, plus the wallet -> active
	// circle index (at most one circle per wallet).
	SaveCircleMembers(ctx context.Context, id model.CircleID, members []model.WalletID) error
	GetCircleMembers(ctx context.Context, id model.CircleID) ([]model.WalletID, error)
	SaveWalletCircle(ctx context.Context, wallet model.WalletID, id model.CircleID) error
	GetWalletCircle(ctx context.Context, wallet model.WalletID) (model.CircleID, bool, error)

	// Player stats and earnings
	SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error
	GetPlayerStats(ctx context.Context, wallet model.WalletID) (*model.PlayerStats, error)
	SavePlayerEarnings(ctx context.Context, earnings *model.PlayerEarnings) error
	GetPlayerEarnings(ctx context.Context, wallet model.WalletID) (*model.PlayerEarnings, error)
	AppendPlayer(ctx context.Context, wallet model.WalletID) error
	GetAllPlayers(ctx context.Context) ([]model.WalletID, error)

	// Circle earnings
	SaveCircleEarnings(ctx context.Context, earnings *model.CircleEarnings) error
	GetCircleEarnings(ctx context.Context, id model.CircleID) (*model.CircleEarnings, error)

	// Global accumulator
	GetTotalKaleEarned(ctx context.Context) (model.Amount, error)
	SetTotalKaleEarned(ctx context.Context, total model.Amount) error
}

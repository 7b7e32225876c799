// Package ledger owns the cumulative earnings and participation counters.
// Every mutating transition in the registry, membership, betrayal, and
// harvest services records its effects here.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// Source identifies which earnings bucket a credit belongs to. The three
// buckets are mutually exclusive and always sum to the player's stats total.
type Source int

const (
	SourceOwnCircle Source = iota
	SourceJoinedCircle
	SourceBetrayal
)

// Service maintains per-player and per-circle earnings ledgers
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new ledger service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ensureStats fetches a wallet's stats, creating them (and registering the
// wallet in the all-players set) on first participation.
func (s *Service) ensureStats(ctx context.Context, wallet model.WalletID) (*model.PlayerStats, error) {
	stats, err := s.storage.GetPlayerStats(ctx, wallet)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	stats = model.NewPlayerStats(wallet)
	if err := s.storage.SavePlayerStats(ctx, stats); err != nil {
		return nil, err
	}
	if err := s.storage.AppendPlayer(ctx, wallet); err != nil {
		return nil, err
	}
	return stats, nil
}

// ensureEarnings fetches a wallet's earnings record, creating it lazily.
func (s *Service) ensureEarnings(ctx context.Context, wallet model.WalletID) (*model.PlayerEarnings, error) {
	earnings, err := s.storage.GetPlayerEarnings(ctx, wallet)
	if err == nil {
		return earnings, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	earnings = model.NewPlayerEarnings(wallet)
	if err := s.storage.SavePlayerEarnings(ctx, earnings); err != nil {
		return nil, err
	}
	return earnings, nil
}

// RecordCircleCreated increments a wallet's circles_created counter.
func (s *Service) RecordCircleCreated(ctx context.Context, wallet model.WalletID) error {
	stats, err := s.ensureStats(ctx, wallet)
	if err != nil {
		return err
	}
	stats.CirclesCreated++
	return s.storage.SavePlayerStats(ctx, stats)
}

// RecordCircleJoined increments a wallet's circles_joined counter.
func (s *Service) RecordCircleJoined(ctx context.Context, wallet model.WalletID) error {
	stats, err := s.ensureStats(ctx, wallet)
	if err != nil {
		return err
	}
	stats.CirclesJoined++
	return s.storage.SavePlayerStats(ctx, stats)
}

// RecordBetrayalCommitted increments a wallet's circles_betrayed counter.
func (s *Service) RecordBetrayalCommitted(ctx context.Context, wallet model.WalletID) error {
	stats, err := s.ensureStats(ctx, wallet)
	if err != nil {
		return err
	}
	stats.CirclesBetrayed++
	return s.storage.SavePlayerStats(ctx, stats)
}

// RecordBetrayalSuffered increments a wallet's times_betrayed counter.
func (s *Service) RecordBetrayalSuffered(ctx context.Context, wallet model.WalletID) error {
	stats, err := s.ensureStats(ctx, wallet)
	if err != nil {
		return err
	}
	stats.TimesBetrayed++
	return s.storage.SavePlayerStats(ctx, stats)
}

// Credit adds an amount to a wallet's earnings under the given source
// bucket, keeping the stats total in lockstep. Overflow yields
// ErrInvalidAmount with no writes.
func (s *Service) Credit(ctx context.Context, wallet model.WalletID, amount model.Amount, source Source) error {
	earnings, err := s.ensureEarnings(ctx, wallet)
	if err != nil {
		return err
	}
	stats, err := s.ensureStats(ctx, wallet)
	if err != nil {
		return err
	}

	newTotal, err := model.AddAmount(earnings.TotalKaleEarned, amount)
	if err != nil {
		return err
	}
	earnings.TotalKaleEarned = newTotal

	switch source {
	case SourceOwnCircle:
		earnings.FromOwnCircles += amount
	case SourceJoinedCircle:
		earnings.FromJoinedCircles += amount
	case SourceBetrayal:
		earnings.FromBetrayals += amount
	}

	stats.TotalKaleEarned = newTotal

	if err := s.storage.SavePlayerEarnings(ctx, earnings); err != nil {
		return err
	}
	return s.storage.SavePlayerStats(ctx, stats)
}

// RecordCircleHarvest applies a distributed amount to a circle's earnings
// history and the global accumulator.
func (s *Service) RecordCircleHarvest(ctx context.Context, id model.CircleID, amount model.Amount) error {
	earnings, err := s.storage.GetCircleEarnings(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrCircleDoesNotExist) {
			return err
		}
		earnings = model.NewCircleEarnings(id)
	}

	newTotal, err := model.AddAmount(earnings.TotalEarned, amount)
	if err != nil {
		return err
	}
	earnings.TotalEarned = newTotal
	earnings.TotalHarvests++
	earnings.LastHarvestAmount = amount

	if err := s.storage.SaveCircleEarnings(ctx, earnings); err != nil {
		return err
	}

	globalTotal, err := s.storage.GetTotalKaleEarned(ctx)
	if err != nil {
		return err
	}
	newGlobal, err := model.AddAmount(globalTotal, amount)
	if err != nil {
		return err
	}
	return s.storage.SetTotalKaleEarned(ctx, newGlobal)
}

// GetPlayerStats retrieves a wallet's stats
func (s *Service) GetPlayerStats(ctx context.Context, wallet model.WalletID) (*model.PlayerStats, error) {
	return s.storage.GetPlayerStats(ctx, wallet)
}

// GetPlayerEarnings retrieves a wallet's earnings breakdown
func (s *Service) GetPlayerEarnings(ctx context.Context, wallet model.WalletID) (*model.PlayerEarnings, error) {
	return s.storage.GetPlayerEarnings(ctx, wallet)
}

// GetCircleEarnings retrieves a circle's earnings history
func (s *Service) GetCircleEarnings(ctx context.Context, id model.CircleID) (*model.CircleEarnings, error) {
	return s.storage.GetCircleEarnings(ctx, id)
}

// GetTotalKaleEarned retrieves the global earnings accumulator
func (s *Service) GetTotalKaleEarned(ctx context.Context) (model.Amount, error) {
	return s.storage.GetTotalKaleEarned(ctx)
}

// Package scoreboard computes derived reputation and aggregate metrics.
// Nothing here is persisted; every value is recomputed from the ledgers on
// read, so repeated reads of unchanged state are identical.
package scoreboard

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// Service computes scoreboard entries and totals from the stats ledger
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new scoreboard service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// entryFromStats derives one scoreboard entry. Trust score rewards
// participation and penalizes betrayals committed (doubly) and suffered;
// the weighting is a policy constant, not a structural invariant.
func entryFromStats(stats *model.PlayerStats) model.ScoreboardEntry {
	trustScore := int64(stats.CirclesCreated) + int64(stats.CirclesJoined) -
		2*int64(stats.CirclesBetrayed) - int64(stats.TimesBetrayed)

	joined := stats.CirclesJoined
	if joined == 0 {
		joined = 1
	}
	betrayalRatio := stats.CirclesBetrayed * 100 / joined

	circles := stats.CirclesCreated + stats.CirclesJoined
	if circles == 0 {
		circles = 1
	}
	kalePerCircle := stats.TotalKaleEarned / model.Amount(circles)

	return model.ScoreboardEntry{
		Wallet:          stats.Wallet,
		CirclesCreated:  stats.CirclesCreated,
		CirclesJoined:   stats.CirclesJoined,
		CirclesBetrayed: stats.CirclesBetrayed,
		TimesBetrayed:   stats.TimesBetrayed,
		TrustScore:      trustScore,
		BetrayalRatio:   betrayalRatio,
		TotalKaleEarned: stats.TotalKaleEarned,
		KalePerCircle:   kalePerCircle,
	}
}

// GetScoreboard computes one entry per known player, in first-participation
// order.
func (s *Service) GetScoreboard(ctx context.Context) ([]model.ScoreboardEntry, error) {
	players, err := s.storage.GetAllPlayers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ScoreboardEntry, 0, len(players))
	for _, wallet := range players {
		stats, err := s.storage.GetPlayerStats(ctx, wallet)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, entryFromStats(stats))
	}
	return entries, nil
}

// GetTotalStats aggregates participation across all known players.
func (s *Service) GetTotalStats(ctx context.Context) (*model.TotalStats, error) {
	players, err := s.storage.GetAllPlayers(ctx)
	if err != nil {
		return nil, err
	}

	totals := &model.TotalStats{}
	for _, wallet := range players {
		stats, err := s.storage.GetPlayerStats(ctx, wallet)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		totals.TotalPlayers++
		totals.TotalCirclesCreated += stats.CirclesCreated
		totals.TotalCirclesJoined += stats.CirclesJoined
		totals.TotalBetrayals += stats.CirclesBetrayed
		totals.TotalKaleEarned += stats.TotalKaleEarned
	}
	return totals, nil
}

// GetTopEarningCircles lists circle earnings ordered by total earned,
// descending, limited to the given count. Ties break by circle id so the
// ordering is stable for equal inputs.
func (s *Service) GetTopEarningCircles(ctx context.Context, limit int) ([]model.CircleEarnings, error) {
	ids, err := s.storage.GetAllCircleIDs(ctx)
	if err != nil {
		return nil, err
	}

	earnings := make([]model.CircleEarnings, 0, len(ids))
	for _, id := range ids {
		e, err := s.storage.GetCircleEarnings(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrCircleDoesNotExist) {
				continue
			}
			return nil, err
		}
		earnings = append(earnings, *e)
	}

	sort.Slice(earnings, func(i, j int) bool {
		if earnings[i].TotalEarned != earnings[j].TotalEarned {
			return earnings[i].TotalEarned > earnings[j].TotalEarned
		}
		return earnings[i].CircleID < earnings[j].CircleID
	})

	if limit > 0 && limit < len(earnings) {
		earnings = earnings[:limit]
	}
	return earnings, nil
}

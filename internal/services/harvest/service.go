// Package harvest implements the batched harvest-and-distribution engine.
// One circle's failure never blocks distribution to the rest of the batch:
// per-circle errors are tallied into the aggregate result, never raised.
package harvest

import (
	"context"
	"log/slog"

	"github.com/kalegame/circleoftrust/internal/kale"
	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// BatchSize bounds the number of circles processed by one
// HarvestAndDistributeAll call.
const BatchSize = 50

// Service runs harvests against the external farm and distributes the
// proceeds per circle state
type Service struct {
	storage storage.Storage
	farm    kale.Farm
	ledger  *ledger.Service
	logger  *slog.Logger
}

// New creates a new harvest service
func New(storage storage.Storage, farm kale.Farm, ledger *ledger.Service, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		farm:    farm,
		ledger:  ledger,
		logger:  logger,
	}
}

// HarvestAndDistributeAll processes the index-th batch of BatchSize circles
// from the global registry. The returned result is purely statistical; the
// only error returned is a failure to read the registry itself.
func (s *Service) HarvestAndDistributeAll(ctx context.Context, caller model.WalletID, index uint32) (*model.HarvestResult, error) {
	result := &model.HarvestResult{}

	ids, err := s.storage.GetAllCircleIDs(ctx)
	if err != nil {
		return nil, err
	}

	start := int(index) * BatchSize
	if start >= len(ids) {
		return result, nil
	}
	end := start + BatchSize
	if end > len(ids) {
		end = len(ids)
	}

	for _, id := range ids[start:end] {
		distributed, err := s.harvestCircle(ctx, id)
		if err != nil {
			result.FailedHarvests++
			s.logger.Warn("circle harvest failed",
				slog.Uint64("circle_id", uint64(id)),
				slog.String("error", err.Error()),
			)
			continue
		}
		if distributed == 0 {
			// Nothing to claim this round; neither a success nor a failure.
			continue
		}
		result.SuccessfulCircles++
		result.TotalDistributed += distributed
	}

	s.logger.Info("harvest batch complete",
		slog.String("caller", string(caller)),
		slog.Uint64("index", uint64(index)),
		slog.Uint64("successful", uint64(result.SuccessfulCircles)),
		slog.Uint64("failed", uint64(result.FailedHarvests)),
		slog.Int64("distributed", int64(result.TotalDistributed)),
	)

	return result, nil
}

// harvestCircle harvests and distributes for one circle. Ledger writes
// happen only after every transfer for the circle has succeeded, so an
// error leaves the circle's earnings untouched.
func (s *Service) harvestCircle(ctx context.Context, id model.CircleID) (model.Amount, error) {
	circle, err := s.storage.GetCircle(ctx, id)
	if err != nil {
		return 0, err
	}

	amount, err := s.farm.Harvest(ctx, id)
	if err != nil {
		return 0, model.ErrHarvestFailed
	}
	if amount == 0 {
		return 0, nil
	}
	if amount < 0 {
		return 0, model.ErrInvalidAmount
	}
	if _, err := model.AddAmount(circle.TotalKaleEarned, amount); err != nil {
		return 0, err
	}

	var distributed model.Amount
	if circle.Betrayed {
		distributed, err = s.distributeToBetrayer(ctx, circle, amount)
	} else {
		distributed, err = s.distributeEvenly(ctx, circle, amount)
	}
	if err != nil {
		return 0, err
	}
	if distributed == 0 {
		return 0, nil
	}

	circle.TotalKaleEarned += distributed
	if err := s.storage.SaveCircle(ctx, circle); err != nil {
		return 0, err
	}
	if err := s.ledger.RecordCircleHarvest(ctx, id, distributed); err != nil {
		return 0, err
	}

	return distributed, nil
}

// distributeToBetrayer routes the full amount to the circle's betrayer.
func (s *Service) distributeToBetrayer(ctx context.Context, circle *model.Circle, amount model.Amount) (model.Amount, error) {
	if circle.Betrayer == nil {
		// Betrayed without a betrayer violates the circle invariant.
		return 0, model.ErrInvalidAmount
	}
	betrayer := *circle.Betrayer

	if err := s.farm.Transfer(ctx, betrayer, amount); err != nil {
		return 0, model.ErrTokenTransferFailed
	}
	if err := s.ledger.Credit(ctx, betrayer, amount, ledger.SourceBetrayal); err != nil {
		return 0, err
	}
	return amount, nil
}

// distributeEvenly splits the amount across all current members and the
// creator. Integer remainders are not distributed: the circle's recorded
// total reflects only what was actually divided out.
func (s *Service) distributeEvenly(ctx context.Context, circle *model.Circle, amount model.Amount) (model.Amount, error) {
	members, err := s.storage.GetCircleMembers(ctx, circle.ID)
	if err != nil {
		return 0, err
	}

	recipients := make([]model.WalletID, 0, len(members)+1)
	recipients = append(recipients, members...)
	recipients = append(recipients, circle.Creator)

	share := amount / model.Amount(len(recipients))
	if share == 0 {
		return 0, nil
	}

	for _, recipient := range recipients {
		if err := s.farm.Transfer(ctx, recipient, share); err != nil {
			return 0, model.ErrTokenTransferFailed
		}
	}
	for _, recipient := range recipients {
		source := ledger.SourceJoinedCircle
		if recipient == circle.Creator {
			source = ledger.SourceOwnCircle
		}
		if err := s.ledger.Credit(ctx, recipient, share, source); err != nil {
			return 0, err
		}
	}

	return share * model.Amount(len(recipients)), nil
}

// Package betrayal implements the one-way transition that redirects a
// circle's future rewards to a single member.
package betrayal

import (
	"context"
	"log/slog"
	"slices"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// Service manages the betrayal state machine
type Service struct {
	storage storage.Storage
	ledger  *ledger.Service
	logger  *slog.Logger
}

// New creates a new betrayal service
func New(storage storage.Storage, ledger *ledger.Service, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ledger:  ledger,
		logger:  logger,
	}
}

// BetrayCircle marks a circle betrayed and records the betrayer. The
// transition is terminal: membership and member_count are untouched, but
// all future harvests route to the betrayer alone.
//
// The betrayer must be a current member. A non-member is rejected as
// ErrWrongPassword even with the correct password; there is no distinct
// error code for "not a member" in the ledger's taxonomy.
func (s *Service) BetrayCircle(ctx context.Context, betrayer model.WalletID, id model.CircleID, password string) error {
	circle, err := s.storage.GetCircle(ctx, id)
	if err != nil {
		return err
	}

	if circle.Betrayed {
		return model.ErrCircleBetrayed
	}
	if circle.Creator == betrayer {
		return model.ErrCannotBetrayOwnCircle
	}

	provided, err := model.HashPassword(password)
	if err != nil {
		return err
	}
	if provided != circle.PasswordHash {
		return model.ErrWrongPassword
	}

	members, err := s.storage.GetCircleMembers(ctx, id)
	if err != nil {
		return err
	}
	if !slices.Contains(members, betrayer) {
		return model.ErrWrongPassword
	}

	circle.Betrayed = true
	circle.Betrayer = &betrayer
	if err := s.storage.SaveCircle(ctx, circle); err != nil {
		return err
	}

	if err := s.ledger.RecordBetrayalCommitted(ctx, betrayer); err != nil {
		return err
	}
	for _, member := range members {
		if member == betrayer {
			continue
		}
		if err := s.ledger.RecordBetrayalSuffered(ctx, member); err != nil {
			return err
		}
	}

	s.logger.Info("circle betrayed",
		slog.Uint64("circle_id", uint64(id)),
		slog.String("betrayer", string(betrayer)),
	)

	return nil
}

// Package membership owns circle member sets and the one-active-circle-per-
// wallet index.
package membership

import (
	"context"
	"log/slog"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// Service manages join transitions and membership queries
type Service struct {
	storage storage.Storage
	ledger  *ledger.Service
	logger  *slog.Logger
}

// New creates a new membership service
func New(storage storage.Storage, ledger *ledger.Service, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ledger:  ledger,
		logger:  logger,
	}
}

// JoinCircle adds a wallet to a circle's member set. The password is the
// plaintext; it is hashed with the same digest used at creation and compared
// against the stored hash. A wallet may be active in at most one circle.
func (s *Service) JoinCircle(ctx context.Context, joiner model.WalletID, id model.CircleID, password string) error {
	circle, err := s.storage.GetCircle(ctx, id)
	if err != nil {
		return err
	}

	if circle.Betrayed {
		return model.ErrCircleBetrayed
	}
	if circle.Creator == joiner {
		return model.ErrCannotJoinOwnCircle
	}

	if _, active, err := s.storage.GetWalletCircle(ctx, joiner); err != nil {
		return err
	} else if active {
		return model.ErrAlreadyInCircle
	}

	// Length check comes before the digest so oversized input is rejected
	// without hashing.
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
	members = append(members, joiner)
	if err := s.storage.SaveCircleMembers(ctx, id, members); err != nil {
		return err
	}
	if err := s.storage.SaveWalletCircle(ctx, joiner, id); err != nil {
		return err
	}

	circle.MemberCount++
	if err := s.storage.SaveCircle(ctx, circle); err != nil {
		return err
	}

	if err := s.ledger.RecordCircleJoined(ctx, joiner); err != nil {
		return err
	}

	s.logger.Info("wallet joined circle",
		slog.Uint64("circle_id", uint64(id)),
		slog.String("wallet", string(joiner)),
	)

	return nil
}

// GetCircleMembers lists a circle's joiners in join order
func (s *Service) GetCircleMembers(ctx context.Context, id model.CircleID) ([]model.WalletID, error) {
	if _, err := s.storage.GetCircle(ctx, id); err != nil {
		return nil, err
	}
	return s.storage.GetCircleMembers(ctx, id)
}

// GetWalletCircles lists the circles a wallet has joined (zero or one).
func (s *Service) GetWalletCircles(ctx context.Context, wallet model.WalletID) ([]model.CircleID, error) {
	id, active, err := s.storage.GetWalletCircle(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if !active {
		return []model.CircleID{}, nil
	}
	return []model.CircleID{id}, nil
}

// IsInCircle reports whether a wallet has an active circle membership
func (s *Service) IsInCircle(ctx context.Context, wallet model.WalletID) (bool, error) {
	_, active, err := s.storage.GetWalletCircle(ctx, wallet)
	return active, err
}

// IsInSpecificCircle reports whether a wallet is a member of the given circle
func (s *Service) IsInSpecificCircle(ctx context.Context, wallet model.WalletID, id model.CircleID) (bool, error) {
	current, active, err := s.storage.GetWalletCircle(ctx, wallet)
	if err != nil {
		return false, err
	}
	return active && current == id, nil
}

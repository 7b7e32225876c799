// Package registry owns circle records, the creator index, and the global
// circle id sequence.
package registry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// Service manages circle creation and circle-level reads
type Service struct {
	storage storage.Storage
	ledger  *ledger.Service
	logger  *slog.Logger
}

// New creates a new registry service
func New(storage storage.Storage, ledger *ledger.Service, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ledger:  ledger,
		logger:  logger,
	}
}

// CreateCircle registers a new circle owned by creator. A wallet may create
// at most one circle; the new circle starts active with no joiners.
func (s *Service) CreateCircle(ctx context.Context, creator model.WalletID, name string, passwordHash model.PasswordHash) (model.CircleID, error) {
	exists, err := s.storage.HasCreatedCircle(ctx, creator)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, model.ErrAlreadyCreatedCircle
	}

	if len(name) > model.MaxPasswordLen {
		return 0, model.ErrLongPassword
	}

	id, err := s.storage.AllocateCircleID(ctx)
	if err != nil {
		return 0, err
	}

	circle := &model.Circle{
		ID:           id,
		Name:         name,
		Creator:      creator,
		PasswordHash: passwordHash,
	}

	if err := s.storage.SaveCircle(ctx, circle); err != nil {
		return 0, err
	}
	if err := s.storage.SaveCreatedCircle(ctx, creator, id); err != nil {
		return 0, err
	}
	if err := s.storage.SaveCircleMembers(ctx, id, []model.WalletID{}); err != nil {
		return 0, err
	}
	if err := s.storage.AppendCircleID(ctx, id); err != nil {
		return 0, err
	}
	if err := s.storage.SaveCircleEarnings(ctx, model.NewCircleEarnings(id)); err != nil {
		return 0, err
	}

	if err := s.ledger.RecordCircleCreated(ctx, creator); err != nil {
		return 0, err
	}

	s.logger.Info("circle created",
		slog.Uint64("circle_id", uint64(id)),
		slog.String("creator", string(creator)),
	)

	return id, nil
}

// SetPassword replaces a circle's password hash. Only the creator may do
// this, and not after betrayal. Existing members are unaffected; the
// password only gates new joins.
func (s *Service) SetPassword(ctx context.Context, caller model.WalletID, id model.CircleID, passwordHash model.PasswordHash) error {
	circle, err := s.storage.GetCircle(ctx, id)
	if err != nil {
		return err
	}

	if circle.Creator != caller {
		return model.ErrNotOwner
	}
	if circle.Betrayed {
		return model.ErrCircleBetrayed
	}

	circle.PasswordHash = passwordHash
	return s.storage.SaveCircle(ctx, circle)
}

// GetCircle retrieves a circle record by id
func (s *Service) GetCircle(ctx context.Context, id model.CircleID) (*model.Circle, error) {
	return s.storage.GetCircle(ctx, id)
}

// GetCircleInfo retrieves the public projection of a circle
func (s *Service) GetCircleInfo(ctx context.Context, id model.CircleID) (*model.CircleInfo, error) {
	circle, err := s.storage.GetCircle(ctx, id)
	if err != nil {
		return nil, err
	}
	info := circle.Info()
	return &info, nil
}

// GetAllCircles lists every circle in creation order
func (s *Service) GetAllCircles(ctx context.Context) ([]model.CircleInfo, error) {
	ids, err := s.storage.GetAllCircleIDs(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]model.CircleInfo, 0, len(ids))
	for _, id := range ids {
		circle, err := s.storage.GetCircle(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrCircleDoesNotExist) {
				continue
			}
			return nil, err
		}
		infos = append(infos, circle.Info())
	}
	return infos, nil
}

// GetOwnerCircle retrieves the circle a wallet created, if any
func (s *Service) GetOwnerCircle(ctx context.Context, wallet model.WalletID) (*model.CircleInfo, error) {
	id, err := s.storage.GetCreatedCircle(ctx, wallet)
	if err != nil {
		return nil, err
	}
	return s.GetCircleInfo(ctx, id)
}

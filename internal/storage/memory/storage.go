package memory

import (
	"context"
	"sync"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	circles        map[model.CircleID]*model.Circle
	nextCircleID   model.CircleID
	allCircleIDs   []model.CircleID
	createdCircles map[model.WalletID]model.CircleID
	circleMembers  map[model.CircleID][]model.WalletID
	walletCircles  map[model.WalletID]model.CircleID
	playerStats    map[model.WalletID]*model.PlayerStats
	playerEarnings map[model.WalletID]*model.PlayerEarnings
	allPlayers     []model.WalletID
	circleEarnings map[model.CircleID]*model.CircleEarnings
	totalEarned    model.Amount
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		circles:        make(map[model.CircleID]*model.Circle),
		nextCircleID:   1,
		createdCircles: make(map[model.WalletID]model.CircleID),
		circleMembers:  make(map[model.CircleID][]model.WalletID),
		walletCircles:  make(map[model.WalletID]model.CircleID),
		playerStats:    make(map[model.WalletID]*model.PlayerStats),
		playerEarnings: make(map[model.WalletID]*model.PlayerEarnings),
		circleEarnings: make(map[model.CircleID]*model.CircleEarnings),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Circle operations

func (s *Storage) SaveCircle(ctx context.Context, circle *model.Circle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *circle
	s.circles[circle.ID] = &c
	return nil
}

func (s *Storage) GetCircle(ctx context.Context, id model.CircleID) (*model.Circle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	circle, ok := s.circles[id]
	if !ok {
		return nil, model.ErrCircleDoesNotExist
	}
	c := *circle
	return &c, nil
}

func (s *Storage) AllocateCircleID(ctx context.Context) (model.CircleID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextCircleID
	s.nextCircleID++
	return id, nil
}

func (s *Storage) AppendCircleID(ctx context.Context, id model.CircleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allCircleIDs = append(s.allCircleIDs, id)
	return nil
}

func (s *Storage) GetAllCircleIDs(ctx context.Context) ([]model.CircleID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.CircleID, len(s.allCircleIDs))
	copy(ids, s.allCircleIDs)
	return ids, nil
}

// Creator index operations

func (s *Storage) SaveCreatedCircle(ctx context.Context, creator model.WalletID, id model.CircleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createdCircles[creator] = id
	return nil
}

func (s *Storage) GetCreatedCircle(ctx context.Context, creator model.WalletID) (model.CircleID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.createdCircles[creator]
	if !ok {
		return 0, model.ErrCircleDoesNotExist
	}
	return id, nil
}

func (s *Storage) HasCreatedCircle(ctx context.Context, creator model.WalletID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.createdCircles[creator]
	return ok, nil
}

// Membership operations

func (s *Storage) SaveCircleMembers(ctx context.Context, id model.CircleID, members []model.WalletID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]model.WalletID, len(members))
	copy(copied, members)
	s.circleMembers[id] = copied
	return nil
}

func (s *Storage) GetCircleMembers(ctx context.Context, id model.CircleID) ([]model.WalletID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]model.WalletID, len(s.circleMembers[id]))
	copy(members, s.circleMembers[id])
	return members, nil
}

func (s *Storage) SaveWalletCircle(ctx context.Context, wallet model.WalletID, id model.CircleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walletCircles[wallet] = id
	return nil
}

func (s *Storage) GetWalletCircle(ctx context.Context, wallet model.WalletID) (model.CircleID, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.walletCircles[wallet]
	return id, ok, nil
}

// Player operations

func (s *Storage) SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := *stats
	s.playerStats[stats.Wallet] = &st
	return nil
}

func (s *Storage) GetPlayerStats(ctx context.Context, wallet model.WalletID) (*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.playerStats[wallet]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	st := *stats
	return &st, nil
}

func (s *Storage) SavePlayerEarnings(ctx context.Context, earnings *model.PlayerEarnings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *earnings
	s.playerEarnings[earnings.Wallet] = &e
	return nil
}

func (s *Storage) GetPlayerEarnings(ctx context.Context, wallet model.WalletID) (*model.PlayerEarnings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	earnings, ok := s.playerEarnings[wallet]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	e := *earnings
	return &e, nil
}

func (s *Storage) AppendPlayer(ctx context.Context, wallet model.WalletID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allPlayers = append(s.allPlayers, wallet)
	return nil
}

func (s *Storage) GetAllPlayers(ctx context.Context) ([]model.WalletID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]model.WalletID, len(s.allPlayers))
	copy(players, s.allPlayers)
	return players, nil
}

// Circle earnings operations

func (s *Storage) SaveCircleEarnings(ctx context.Context, earnings *model.CircleEarnings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *earnings
	s.circleEarnings[earnings.CircleID] = &e
	return nil
}

func (s *Storage) GetCircleEarnings(ctx context.Context, id model.CircleID) (*model.CircleEarnings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	earnings, ok := s.circleEarnings[id]
	if !ok {
		return nil, model.ErrCircleDoesNotExist
	}
	e := *earnings
	return &e, nil
}

// Global accumulator

func (s *Storage) GetTotalKaleEarned(ctx context.Context) (model.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalEarned, nil
}

func (s *Storage) SetTotalKaleEarned(ctx context.Context, total model.Amount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalEarned = total
	return nil
}

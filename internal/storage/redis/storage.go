package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// setJSON marshals v and stores it under key with no TTL. Ledger entities
// are permanent.
func (s *Storage) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// getJSON fetches key and unmarshals into v, returning notFound when the
// key is absent.
func (s *Storage) getJSON(ctx context.Context, key string, v any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Circle operations

func (s *Storage) SaveCircle(ctx context.Context, circle *model.Circle) error {
	return s.setJSON(ctx, circleKey(circle.ID), circle)
}

func (s *Storage) GetCircle(ctx context.Context, id model.CircleID) (*model.Circle, error) {
	var circle model.Circle
	if err := s.getJSON(ctx, circleKey(id), &circle, model.ErrCircleDoesNotExist); err != nil {
		return nil, err
	}
	return &circle, nil
}

func (s *Storage) AllocateCircleID(ctx context.Context) (model.CircleID, error) {
	id, err := s.client.Incr(ctx, nextCircleIDKey()).Result()
	if err != nil {
		return 0, err
	}
	return model.CircleID(id), nil
}

func (s *Storage) AppendCircleID(ctx context.Context, id model.CircleID) error {
	return s.client.RPush(ctx, allCircleIDsKey(), uint64(id)).Err()
}

func (s *Storage) GetAllCircleIDs(ctx context.Context) ([]model.CircleID, error) {
	values, err := s.client.LRange(ctx, allCircleIDsKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]model.CircleID, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			continue // Skip invalid data
		}
		ids = append(ids, model.CircleID(id))
	}
	return ids, nil
}

// Creator index operations

func (s *Storage) SaveCreatedCircle(ctx context.Context, creator model.WalletID, id model.CircleID) error {
	return s.client.Set(ctx, createdCircleKey(creator), uint64(id), 0).Err()
}

func (s *Storage) GetCreatedCircle(ctx context.Context, creator model.WalletID) (model.CircleID, error) {
	v, err := s.client.Get(ctx, createdCircleKey(creator)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrCircleDoesNotExist
		}
		return 0, err
	}
	return model.CircleID(v), nil
}

func (s *Storage) HasCreatedCircle(ctx context.Context, creator model.WalletID) (bool, error) {
	exists, err := s.client.Exists(ctx, createdCircleKey(creator)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Membership operations

func (s *Storage) SaveCircleMembers(ctx context.Context, id model.CircleID, members []model.WalletID) error {
	return s.setJSON(ctx, circleMembersKey(id), members)
}

func (s *Storage) GetCircleMembers(ctx context.Context, id model.CircleID) ([]model.WalletID, error) {
	var members []model.WalletID
	err := s.getJSON(ctx, circleMembersKey(id), &members, nil)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Storage) SaveWalletCircle(ctx context.Context, wallet model.WalletID, id model.CircleID) error {
	return s.client.Set(ctx, walletCircleKey(wallet), uint64(id), 0).Err()
}

func (s *Storage) GetWalletCircle(ctx context.Context, wallet model.WalletID) (model.CircleID, bool, error) {
	v, err := s.client.Get(ctx, walletCircleKey(wallet)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return model.CircleID(v), true, nil
}

// Player operations

func (s *Storage) SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error {
	return s.setJSON(ctx, playerStatsKey(stats.Wallet), stats)
}

func (s *Storage) GetPlayerStats(ctx context.Context, wallet model.WalletID) (*model.PlayerStats, error) {
	var stats model.PlayerStats
	if err := s.getJSON(ctx, playerStatsKey(wallet), &stats, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Storage) SavePlayerEarnings(ctx context.Context, earnings *model.PlayerEarnings) error {
	return s.setJSON(ctx, playerEarningsKey(earnings.Wallet), earnings)
}

func (s *Storage) GetPlayerEarnings(ctx context.Context, wallet model.WalletID) (*model.PlayerEarnings, error) {
	var earnings model.PlayerEarnings
	if err := s.getJSON(ctx, playerEarningsKey(wallet), &earnings, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &earnings, nil
}

func (s *Storage) AppendPlayer(ctx context.Context, wallet model.WalletID) error {
	return s.client.RPush(ctx, allPlayersKey(), string(wallet)).Err()
}

func (s *Storage) GetAllPlayers(ctx context.Context) ([]model.WalletID, error) {
	values, err := s.client.LRange(ctx, allPlayersKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	players := make([]model.WalletID, len(values))
	for i, v := range values {
		players[i] = model.WalletID(v)
	}
	return players, nil
}

// Circle earnings operations

func (s *Storage) SaveCircleEarnings(ctx context.Context, earnings *model.CircleEarnings) error {
	return s.setJSON(ctx, circleEarningsKey(earnings.CircleID), earnings)
}

func (s *Storage) GetCircleEarnings(ctx context.Context, id model.CircleID) (*model.CircleEarnings, error) {
	var earnings model.CircleEarnings
	if err := s.getJSON(ctx, circleEarningsKey(id), &earnings, model.ErrCircleDoesNotExist); err != nil {
		return nil, err
	}
	return &earnings, nil
}

// Global accumulator

func (s *Storage) GetTotalKaleEarned(ctx context.Context) (model.Amount, error) {
	v, err := s.client.Get(ctx, totalKaleEarnedKey()).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return model.Amount(v), nil
}

func (s *Storage) SetTotalKaleEarned(ctx context.Context, total model.Amount) error {
	return s.client.Set(ctx, totalKaleEarnedKey(), int64(total), 0).Err()
}

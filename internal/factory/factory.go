package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/kalegame/circleoftrust/internal/kale"
	"github.com/kalegame/circleoftrust/internal/services/betrayal"
	"github.com/kalegame/circleoftrust/internal/services/harvest"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/services/membership"
	"github.com/kalegame/circleoftrust/internal/services/registry"
	"github.com/kalegame/circleoftrust/internal/services/scoreboard"
	"github.com/kalegame/circleoftrust/internal/storage"
	"github.com/kalegame/circleoftrust/internal/storage/memory"
	redisstorage "github.com/kalegame/circleoftrust/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External reward primitive
	Farm kale.Farm

	// Services
	LedgerService     *ledger.Service
	RegistryService   *registry.Service
	MembershipService *membership.Service
	BetrayalService   *betrayal.Service
	HarvestService    *harvest.Service
	ScoreboardService *scoreboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Farm is the external harvest/transfer primitive (optional)
	// If nil, a NullFarm is used and every harvest is a no-op
	Farm kale.Farm
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	farm := cfg.Farm
	if farm == nil {
		farm = kale.NullFarm{}
	}

	return newWithDependencies(store, farm, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, farm kale.Farm, logger *slog.Logger) *App {
	ledgerService := ledger.New(store, logger)
	registryService := registry.New(store, ledgerService, logger)
	membershipService := membership.New(store, ledgerService, logger)
	betrayalService := betrayal.New(store, ledgerService, logger)
	harvestService := harvest.New(store, farm, ledgerService, logger)
	scoreboardService := scoreboard.New(store, logger)

	return &App{
		Storage:           store,
		Farm:              farm,
		LedgerService:     ledgerService,
		RegistryService:   registryService,
		MembershipService: membershipService,
		BetrayalService:   betrayalService,
		HarvestService:    harvestService,
		ScoreboardService: scoreboardService,
	}
}

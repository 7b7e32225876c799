package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kalegame/circleoftrust/internal/api/handler"
	"github.com/kalegame/circleoftrust/internal/api/middleware"
	"github.com/kalegame/circleoftrust/internal/services/betrayal"
	"github.com/kalegame/circleoftrust/internal/services/harvest"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/services/membership"
	"github.com/kalegame/circleoftrust/internal/services/registry"
	"github.com/kalegame/circleoftrust/internal/services/scoreboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	RegistryService   *registry.Service
	MembershipService *membership.Service
	BetrayalService   *betrayal.Service
	HarvestService    *harvest.Service
	LedgerService     *ledger.Service
	ScoreboardService *scoreboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	circleHandler := handler.NewCircleHandler(
		cfg.RegistryService,
		cfg.MembershipService,
		cfg.BetrayalService,
		cfg.LedgerService,
		cfg.ScoreboardService,
	)
	harvestHandler := handler.NewHarvestHandler(cfg.HarvestService)
	statsHandler := handler.NewStatsHandler(
		cfg.LedgerService,
		cfg.MembershipService,
		cfg.RegistryService,
		cfg.ScoreboardService,
	)

	// Create middleware
	walletMiddleware := middleware.Wallet()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Read-only circle and scoreboard routes (no wallet required)
	api.HandleFunc("/circles", circleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/circles/top", circleHandler.TopEarning).Methods(http.MethodGet)
	api.HandleFunc("/circles/{id:[0-9]+}", circleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/circles/{id:[0-9]+}/members", circleHandler.Members).Methods(http.MethodGet)
	api.HandleFunc("/circles/{id:[0-9]+}/earnings", circleHandler.Earnings).Methods(http.MethodGet)

	api.HandleFunc("/players/{wallet}/stats", statsHandler.PlayerStats).Methods(http.MethodGet)
	api.HandleFunc("/players/{wallet}/earnings", statsHandler.PlayerEarnings).Methods(http.MethodGet)
	api.HandleFunc("/players/{wallet}/circles", statsHandler.PlayerCircles).Methods(http.MethodGet)
	api.HandleFunc("/players/{wallet}/circle", statsHandler.OwnerCircle).Methods(http.MethodGet)
	api.HandleFunc("/players/{wallet}/in-circle", statsHandler.InCircle).Methods(http.MethodGet)
	api.HandleFunc("/players/{wallet}/in-circle/{id:[0-9]+}", statsHandler.InSpecificCircle).Methods(http.MethodGet)

	api.HandleFunc("/scoreboard", statsHandler.Scoreboard).Methods(http.MethodGet)
	api.HandleFunc("/stats/total", statsHandler.TotalStats).Methods(http.MethodGet)
	api.HandleFunc("/kale/total", statsHandler.TotalKale).Methods(http.MethodGet)

	// Mutating routes require a wallet identity
	mutating := api.NewRoute().Subrouter()
	mutating.Use(walletMiddleware)
	mutating.HandleFunc("/circles", circleHandler.Create).Methods(http.MethodPost)
	mutating.HandleFunc("/circles/{id:[0-9]+}/join", circleHandler.Join).Methods(http.MethodPost)
	mutating.HandleFunc("/circles/{id:[0-9]+}/betray", circleHandler.Betray).Methods(http.MethodPost)
	mutating.HandleFunc("/circles/{id:[0-9]+}/password", circleHandler.SetPassword).Methods(http.MethodPut)
	mutating.HandleFunc("/harvests", harvestHandler.Run).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

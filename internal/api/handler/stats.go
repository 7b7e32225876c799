package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kalegame/circleoftrust/internal/api/response"
	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/services/membership"
	"github.com/kalegame/circleoftrust/internal/services/registry"
	"github.com/kalegame/circleoftrust/internal/services/scoreboard"
)

// StatsHandler handles player stats, earnings and scoreboard endpoints
type StatsHandler struct {
	ledgerService     *ledger.Service
	membershipService *membership.Service
	registryService   *registry.Service
	scoreboardService *scoreboard.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(
	ledgerService *ledger.Service,
	membershipService *membership.Service,
	registryService *registry.Service,
	scoreboardService *scoreboard.Service,
) *StatsHandler {
	return &StatsHandler{
		ledgerService:     ledgerService,
		membershipService: membershipService,
		registryService:   registryService,
		scoreboardService: scoreboardService,
	}
}

func walletVar(r *http.Request) model.WalletID {
	return model.WalletID(mux.Vars(r)["wallet"])
}

// PlayerStats handles GET /api/v1/players/{wallet}/stats
func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledgerService.GetPlayerStats(r.Context(), walletVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsResponse{Stats: *stats})
}

// PlayerEarnings handles GET /api/v1/players/{wallet}/earnings
func (h *StatsHandler) PlayerEarnings(w http.ResponseWriter, r *http.Request) {
	earnings, err := h.ledgerService.GetPlayerEarnings(r.Context(), walletVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerEarningsResponse{Earnings: *earnings})
}

// PlayerCircles handles GET /api/v1/players/{wallet}/circles
func (h *StatsHandler) PlayerCircles(w http.ResponseWriter, r *http.Request) {
	ids, err := h.membershipService.GetWalletCircles(r.Context(), walletVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WalletCirclesResponse{CircleIDs: ids})
}

// OwnerCircle handles GET /api/v1/players/{wallet}/circle
func (h *StatsHandler) OwnerCircle(w http.ResponseWriter, r *http.Request) {
	info, err := h.registryService.GetOwnerCircle(r.Context(), walletVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CircleResponse{Circle: *info})
}

// InCircle handles GET /api/v1/players/{wallet}/in-circle
func (h *StatsHandler) InCircle(w http.ResponseWriter, r *http.Request) {
	in, err := h.membershipService.IsInCircle(r.Context(), walletVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.InCircleResponse{InCircle: in})
}

// InSpecificCircle handles GET /api/v1/players/{wallet}/in-circle/{id}
func (h *StatsHandler) InSpecificCircle(w http.ResponseWriter, r *http.Request) {
	id, err := circleIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	in, err := h.membershipService.IsInSpecificCircle(r.Context(), walletVar(r), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.InCircleResponse{InCircle: in})
}

// Scoreboard handles GET /api/v1/scoreboard
func (h *StatsHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scoreboardService.GetScoreboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreboardResponse{Entries: entries})
}

// TotalStats handles GET /api/v1/stats/total
func (h *StatsHandler) TotalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.scoreboardService.GetTotalStats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TotalStatsResponse{Stats: *stats})
}

// TotalKale handles GET /api/v1/kale/total
func (h *StatsHandler) TotalKale(w http.ResponseWriter, r *http.Request) {
	total, err := h.ledgerService.GetTotalKaleEarned(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TotalKaleResponse{TotalKaleEarned: total})
}

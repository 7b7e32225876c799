package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kalegame/circleoftrust/internal/api/middleware"
	"github.com/kalegame/circleoftrust/internal/api/request"
	"github.com/kalegame/circleoftrust/internal/api/response"
	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/services/betrayal"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/services/membership"
	"github.com/kalegame/circleoftrust/internal/services/registry"
	"github.com/kalegame/circleoftrust/internal/services/scoreboard"
)

// CircleHandler handles circle lifecycle endpoints
type CircleHandler struct {
	registryService   *registry.Service
	membershipService *membership.Service
	betrayalService   *betrayal.Service
	ledgerService     *ledger.Service
	scoreboardService *scoreboard.Service
}

// NewCircleHandler creates a new circle handler
func NewCircleHandler(
	registryService *registry.Service,
	membershipService *membership.Service,
	betrayalService *betrayal.Service,
	ledgerService *ledger.Service,
	scoreboardService *scoreboard.Service,
) *CircleHandler {
	return &CircleHandler{
		registryService:   registryService,
		membershipService: membershipService,
		betrayalService:   betrayalService,
		ledgerService:     ledgerService,
		scoreboardService: scoreboardService,
	}
}

// circleIDVar parses the {id} path variable
func circleIDVar(r *http.Request) (model.CircleID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, NewInvalidRequestError("invalid circle id")
	}
	return model.CircleID(id), nil
}

// Create handles POST /api/v1/circles
func (h *CircleHandler) Create(w http.ResponseWriter, r *http.Request) {
	wallet := middleware.MustGetWallet(r.Context())

	var req request.CreateCircleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	hash, err := model.ParsePasswordHash(req.PasswordHash)
	if err != nil {
		WriteError(w, NewInvalidRequestError("password_hash must be a hex-encoded SHA-256 digest"))
		return
	}

	id, err := h.registryService.CreateCircle(r.Context(), wallet, req.Name, hash)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateCircleResponse{CircleID: id})
}

// Get handles GET /api/v1/circles/{id}
func (h *CircleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := circleIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := h.registryService.GetCircleInfo(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CircleResponse{Circle: *info})
}

// List handles GET /api/v1/circles
func (h *CircleHandler) List(w http.ResponseWriter, r *http.Request) {
	circles, err := h.registryService.GetAllCircles(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CircleListResponse{Circles: circles})
}

// Members handles GET /api/v1/circles/{id}/members
func (h *CircleHandler) Members(w http.ResponseWriter, r *http.Request) {
	id, err := circleIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	members, err := h.membershipService.GetCircleMembers(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CircleMembersResponse{Members: members})
}

// Earnings handles GET /api/v1/circles/{id}/earnings
func (h *CircleHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	id, err := circleIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Validate the circle exists so unknown ids are a 404, not zeroes
	if _, err := h.registryService.GetCircle(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	earnings, err := h.ledgerService.GetCircleEarnings(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CircleEarningsResponse{Earnings: *earnings})
}

// Join handles POST /api/v1/circles/{id}/join
func (h *CircleHandler) Join(w http.ResponseWriter, r *http.Request) {
	wallet := middleware.MustGetWallet(r.Context())

	id, err := circleIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.JoinCircleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.membershipService.JoinCircle(r.Context(), wallet, id, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Betray handles POST /api/v1/circles/{id}/betray
func (h *CircleHandler) Betray(w http.ResponseWriter, r *http.Request) {
	wallet := middleware.MustGetWallet(r.Context())

	id, err := circleIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.BetrayCircleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.betrayalService.BetrayCircle(r.Context(), wallet, id, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SetPassword handles PUT /api/v1/circles/{id}/password
func (h *CircleHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	wallet := middleware.MustGetWallet(r.Context())

	id, err := circleIDVar(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	hash, err := model.ParsePasswordHash(req.PasswordHash)
	if err != nil {
		WriteError(w, NewInvalidRequestError("password_hash must be a hex-encoded SHA-256 digest"))
		return
	}

	if err := h.registryService.SetPassword(r.Context(), wallet, id, hash); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// TopEarning handles GET /api/v1/circles/top
func (h *CircleHandler) TopEarning(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	earnings, err := h.scoreboardService.GetTopEarningCircles(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TopCirclesResponse{Circles: earnings})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kalegame/circleoftrust/internal/api/middleware"
	"github.com/kalegame/circleoftrust/internal/api/request"
	"github.com/kalegame/circleoftrust/internal/api/response"
	"github.com/kalegame/circleoftrust/internal/services/harvest"
)

// HarvestHandler handles harvest endpoints
type HarvestHandler struct {
	harvestService *harvest.Service
}

// NewHarvestHandler creates a new harvest handler
func NewHarvestHandler(harvestService *harvest.Service) *HarvestHandler {
	return &HarvestHandler{harvestService: harvestService}
}

// Run handles POST /api/v1/harvests
//
// The caller names a batch index; circles outside that window are
// untouched. An empty body runs the first batch.
func (h *HarvestHandler) Run(w http.ResponseWriter, r *http.Request) {
	wallet := middleware.MustGetWallet(r.Context())

	var req request.HarvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = request.HarvestRequest{}
	}

	result, err := h.harvestService.HarvestAndDistributeAll(r.Context(), wallet, req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HarvestResponse{Result: *result})
}

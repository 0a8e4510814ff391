package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/farm/domain"
	"github.com/jevonx/farmers-market/internal/farm/usecase/command"
	"github.com/jevonx/farmers-market/internal/farm/usecase/query"
	"github.com/jevonx/farmers-market/pkg/logger"
)

// FarmHandler handles HTTP requests for farms using CQRS pattern
type FarmHandler struct {
	createHandler      *command.CreateFarmHandler
	descriptionHandler *command.UpdateDescriptionHandler
	getFarmHandler     *query.GetFarmHandler
	listHandler        *query.ListFarmsHandler
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(repo domain.FarmRepository) *FarmHandler {
	return NewFarmHandlerWithDI(
		command.NewCreateFarmHandler(repo),
		command.NewUpdateDescriptionHandler(repo),
		query.NewGetFarmHandler(repo),
		query.NewListFarmsHandler(repo),
	)
}

// NewFarmHandlerWithDI creates a new farm handler using dependency injection;
// used by Wire.
func NewFarmHandlerWithDI(
	createHandler *command.CreateFarmHandler,
	descriptionHandler *command.UpdateDescriptionHandler,
	getFarmHandler *query.GetFarmHandler,
	listHandler *query.ListFarmsHandler,
) *FarmHandler {
	return &FarmHandler{
		createHandler:      createHandler,
		descriptionHandler: descriptionHandler,
		getFarmHandler:     getFarmHandler,
		listHandler:        listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *FarmHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/farms", h.ListFarms).Methods("GET")
	router.HandleFunc("/api/farms", h.CreateFarm).Methods("POST")
	router.HandleFunc("/api/farms/{id}", h.GetFarm).Methods("GET")
	router.HandleFunc("/api/farms/{id}/description", h.UpdateDescription).Methods("PUT")
}

// CreateFarm handles POST /api/farms
func (h *FarmHandler) CreateFarm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Description string `json:"description"`
		City        string `json:"city"`
		State       string `json:"state"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateFarmCommand{
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
		City:        req.City,
		State:       req.State,
	}

	farm, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create farm")
		respondJSON(w, apperr.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Farm created successfully",
		Data:    farm,
	})
}

// ListFarms handles GET /api/farms
func (h *FarmHandler) ListFarms(w http.ResponseWriter, r *http.Request) {
	farms, err := h.listHandler.Handle(query.ListFarmsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list farms")
		respondJSON(w, apperr.HTTPStatus(err), Response{
			Success: false,
			Error:   "Failed to list farms",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"farms": farms,
			"total": len(farms),
		},
	})
}

// GetFarm handles GET /api/farms/{id}
func (h *FarmHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Invalid farm ID",
		})
		return
	}

	farm, err := h.getFarmHandler.Handle(query.GetFarmQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, apperr.HTTPStatus(err), Response{
			Success: false,
			Error:   "Farm not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    farm,
	})
}

// UpdateDescription handles PUT /api/farms/{id}/description
func (h *FarmHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Invalid farm ID",
		})
		return
	}

	var req struct {
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateDescriptionCommand{
		ID:          uint(id),
		Description: req.Description,
	}

	farm, err := h.descriptionHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update farm description")
		respondJSON(w, apperr.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Farm description updated successfully",
		Data:    farm,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

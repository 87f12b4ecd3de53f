package handler

import (
	"net/http"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
	"github.com/osse101/EmojiKombat_Go/internal/progression"
)

// TapRequest batches taps from a client. Count defaults to 1.
type TapRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=500"`
}

// CompleteTaskRequest grants a dynamic reward once per task id
type CompleteTaskRequest struct {
	TaskID string `json:"task_id" validate:"required,max=64,identifier"`
	Reward int64  `json:"reward" validate:"gte=0"`
}

// EarnRequest credits a minigame payout
type EarnRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// OffersResponse lists upgrades as seen by one player
type OffersResponse struct {
	Upgrades []domain.UpgradeOffer `json:"upgrades"`
}

// TasksResponse lists tasks as seen by one player
type TasksResponse struct {
	Tasks []domain.TaskStatus `json:"tasks"`
}

// PlayerHandlers exposes the player intents
type PlayerHandlers struct {
	service progression.Service
}

// NewPlayerHandlers creates player handlers
func NewPlayerHandlers(service progression.Service) *PlayerHandlers {
	return &PlayerHandlers{service: service}
}

// HandleCreate starts a new player with a generated id
// @Summary Create player
// @Tags players
// @Produce json
// @Success 201 {object} PlayerResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/players [post]
func (h *PlayerHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, view, err := h.service.CreatePlayer(r.Context())
		if err != nil {
			respondServiceError(w, r, "Create player", err)
			return
		}
		logger.FromContext(r.Context()).Info("Player created", logger.AttrKeyPlayerID, playerID)
		respondJSON(w, http.StatusCreated, PlayerResponse{Message: MsgPlayerCreated, PlayerID: playerID, View: view})
	}
}

// HandleGetState returns the player's current view, applying idle catch-up
// @Summary Get player state
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{playerID} [get]
func (h *PlayerHandlers) HandleGetState() http.HandlerFunc {
	return h.viewAction("Get state", func(r *http.Request, playerID string) (domain.View, error) {
		return h.service.GetState(r.Context(), playerID)
	})
}

// HandleTap applies one or more taps
// @Summary Tap
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body TapRequest false "Batched tap count"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players/{playerID}/tap [post]
func (h *PlayerHandlers) HandleTap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		var req TapRequest
		if err := DecodeOptionalRequest(r, w, &req, "Tap"); err != nil {
			return
		}
		if req.Count == 0 {
			req.Count = 1
		}

		view, err := h.service.Tap(r.Context(), playerID, req.Count)
		if err != nil {
			respondServiceError(w, r, "Tap", err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{View: view})
	}
}

// HandlePurchaseUpgrade buys the next level of an upgrade
// @Summary Purchase upgrade
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Param upgradeID path string true "Upgrade ID"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} RejectionResponse
// @Router /api/v1/players/{playerID}/upgrades/{upgradeID} [post]
func (h *PlayerHandlers) HandlePurchaseUpgrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		upgradeID, ok := GetPathParam(r, w, "upgradeID")
		if !ok {
			return
		}

		view, err := h.service.PurchaseUpgrade(r.Context(), playerID, upgradeID)
		if err != nil {
			respondRejection(w, r, "Purchase upgrade", view, err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{View: view})
	}
}

// HandleGetOffers lists upgrades with the player's owned count and next cost
// @Summary List upgrade offers
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} OffersResponse
// @Router /api/v1/players/{playerID}/upgrades [get]
func (h *PlayerHandlers) HandleGetOffers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		offers, err := h.service.Offers(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get offers", err)
			return
		}
		respondJSON(w, http.StatusOK, OffersResponse{Upgrades: offers})
	}
}

// HandleClaimTask claims a catalog task once its requirement is met
// @Summary Claim task
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Param taskID path string true "Task ID"
// @Success 200 {object} PlayerResponse
// @Failure 403 {object} RejectionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} RejectionResponse
// @Router /api/v1/players/{playerID}/tasks/{taskID}/claim [post]
func (h *PlayerHandlers) HandleClaimTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		taskID, ok := GetPathParam(r, w, "taskID")
		if !ok {
			return
		}

		view, err := h.service.ClaimTask(r.Context(), playerID, taskID)
		if err != nil {
			respondRejection(w, r, "Claim task", view, err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{View: view})
	}
}

// HandleCompleteTask grants a dynamic task reward; repeats are no-ops
// @Summary Complete task
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body CompleteTaskRequest true "Task and reward"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players/{playerID}/tasks/complete [post]
func (h *PlayerHandlers) HandleCompleteTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		var req CompleteTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete task"); err != nil {
			return
		}

		view, err := h.service.CompleteTask(r.Context(), playerID, req.TaskID, req.Reward)
		if err != nil {
			respondServiceError(w, r, "Complete task", err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{View: view})
	}
}

// HandleGetTasks lists tasks with completion and claimability
// @Summary List player tasks
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} TasksResponse
// @Router /api/v1/players/{playerID}/tasks [get]
func (h *PlayerHandlers) HandleGetTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		tasks, err := h.service.Tasks(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get tasks", err)
			return
		}
		respondJSON(w, http.StatusOK, TasksResponse{Tasks: tasks})
	}
}

// HandleEarnFromMinigame credits a minigame payout
// @Summary Minigame payout
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body EarnRequest true "Amount earned"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players/{playerID}/minigames/earn [post]
func (h *PlayerHandlers) HandleEarnFromMinigame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		var req EarnRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Earn from minigame"); err != nil {
			return
		}

		view, err := h.service.EarnFromMinigame(r.Context(), playerID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Earn from minigame", err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{View: view})
	}
}

// HandleIncrementReferral records one referral
// @Summary Record referral
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} PlayerResponse
// @Router /api/v1/players/{playerID}/referrals [post]
func (h *PlayerHandlers) HandleIncrementReferral() http.HandlerFunc {
	return h.viewAction("Increment referral", func(r *http.Request, playerID string) (domain.View, error) {
		return h.service.IncrementReferral(r.Context(), playerID)
	})
}

// HandleReset wipes the player's progress
// @Summary Reset player
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} PlayerResponse
// @Router /api/v1/players/{playerID} [delete]
func (h *PlayerHandlers) HandleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		view, err := h.service.Reset(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Reset", err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{Message: MsgPlayerReset, View: view})
	}
}

// viewAction handles bodyless intents that return a view
func (h *PlayerHandlers) viewAction(opName string, action func(*http.Request, string) (domain.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, "playerID")
		if !ok {
			return
		}
		view, err := action(r, playerID)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, PlayerResponse{View: view})
	}
}

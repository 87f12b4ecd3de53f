package handler

import (
	"net/http"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/progression"
)

// UpgradeCatalogResponse lists every purchasable upgrade in display order
type UpgradeCatalogResponse struct {
	Upgrades []domain.UpgradeDefinition `json:"upgrades"`
}

// RankCatalogResponse lists the rank table from lowest to highest
type RankCatalogResponse struct {
	Ranks []domain.RankThreshold `json:"ranks"`
}

// TaskCatalogResponse lists every claimable task
type TaskCatalogResponse struct {
	Tasks []domain.TaskDefinition `json:"tasks"`
}

// CatalogHandlers serves the static game definitions
type CatalogHandlers struct {
	service progression.Service
}

// NewCatalogHandlers creates catalog handlers
func NewCatalogHandlers(service progression.Service) *CatalogHandlers {
	return &CatalogHandlers{service: service}
}

// HandleGetUpgrades returns the upgrade catalog
// @Summary List upgrades
// @Tags catalog
// @Produce json
// @Success 200 {object} UpgradeCatalogResponse
// @Router /api/v1/catalog/upgrades [get]
func (h *CatalogHandlers) HandleGetUpgrades() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, UpgradeCatalogResponse{Upgrades: h.service.Catalog().Upgrades.All()})
	}
}

// HandleGetRanks returns the rank table
// @Summary List ranks
// @Tags catalog
// @Produce json
// @Success 200 {object} RankCatalogResponse
// @Router /api/v1/catalog/ranks [get]
func (h *CatalogHandlers) HandleGetRanks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, RankCatalogResponse{Ranks: h.service.Catalog().Ranks.All()})
	}
}

// HandleGetTasks returns the task catalog
// @Summary List tasks
// @Tags catalog
// @Produce json
// @Success 200 {object} TaskCatalogResponse
// @Router /api/v1/catalog/tasks [get]
func (h *CatalogHandlers) HandleGetTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, TaskCatalogResponse{Tasks: h.service.Catalog().Tasks.All()})
	}
}

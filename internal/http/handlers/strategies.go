package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/store"
)

func (h *Handler) StrategiesList(c *gin.Context) {
	strategies, err := h.Store.ListStrategies(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch strategies")
		return
	}
	respondData(c, strategies)
}

type CreateStrategyRequest struct {
	Name         string `json:"name" validate:"required"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	SystemPrompt string `json:"systemPrompt"`
	EmotionGoal  string `json:"emotionGoal"`
	Persona      string `json:"persona"`
	IsDefault    *bool  `json:"isDefault"`
}

func (h *Handler) StrategyCreate(c *gin.Context) {
	var req CreateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	if req.Icon == "" {
		req.Icon = models.DefaultStrategyIcon
	}
	isDefault := false
	if req.IsDefault != nil {
		isDefault = *req.IsDefault
	}

	id, err := h.Store.CreateStrategy(c.Request.Context(), models.Strategy{
		Name:         req.Name,
		Icon:         req.Icon,
		Description:  req.Description,
		SystemPrompt: req.SystemPrompt,
		EmotionGoal:  req.EmotionGoal,
		Persona:      req.Persona,
		IsDefault:    isDefault,
	})
	if err != nil {
		h.fail(c, err, "Failed to create strategy")
		return
	}
	respondData(c, gin.H{"id": id})
}

func (h *Handler) StrategyGet(c *gin.Context) {
	strategy, err := h.Store.GetStrategy(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Strategy not found")
			return
		}
		h.fail(c, err, "Failed to fetch strategy")
		return
	}
	respondData(c, strategy)
}

func (h *Handler) StrategyUpdate(c *gin.Context) {
	var patch models.StrategyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Store.UpdateStrategy(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.fail(c, err, "Failed to update strategy")
		return
	}
	respondEmpty(c)
}

func (h *Handler) StrategyDelete(c *gin.Context) {
	if err := h.Store.ArchiveStrategy(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete strategy")
		return
	}
	respondEmpty(c)
}

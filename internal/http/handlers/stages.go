package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salescoach/backend/internal/models"
)

func (h *Handler) StagesList(c *gin.Context) {
	stages, err := h.Store.ListStages(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch stages")
		return
	}
	respondData(c, stages)
}

type CreateStageRequest struct {
	Name              string `json:"name" validate:"required"`
	Order             int    `json:"order"`
	TargetPerception  string `json:"targetPerception"`
	AIInstruction     string `json:"aiInstruction"`
	KeyQuestions      string `json:"keyQuestions"`
	TransitionSignals string `json:"transitionSignals"`
	Warnings          string `json:"warnings"`
	IsActive          *bool  `json:"isActive"`
}

func (h *Handler) StageCreate(c *gin.Context) {
	var req CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	id, err := h.Store.CreateStage(c.Request.Context(), models.SalesStage{
		Name:              req.Name,
		Order:             req.Order,
		TargetPerception:  req.TargetPerception,
		AIInstruction:     req.AIInstruction,
		KeyQuestions:      req.KeyQuestions,
		TransitionSignals: req.TransitionSignals,
		Warnings:          req.Warnings,
		IsActive:          active,
	})
	if err != nil {
		h.fail(c, err, "Failed to create stage")
		return
	}
	respondData(c, gin.H{"id": id})
}

func (h *Handler) StageUpdate(c *gin.Context) {
	var patch models.SalesStagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Store.UpdateStage(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.fail(c, err, "Failed to update stage")
		return
	}
	respondEmpty(c)
}

func (h *Handler) StageDelete(c *gin.Context) {
	if err := h.Store.ArchiveStage(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete stage")
		return
	}
	respondEmpty(c)
}

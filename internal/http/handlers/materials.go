package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salescoach/backend/internal/models"
)

func (h *Handler) MaterialsList(c *gin.Context) {
	materials, err := h.Store.ListMaterials(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch materials")
		return
	}
	respondData(c, materials)
}

type CreateMaterialRequest struct {
	Title       string   `json:"title" validate:"required"`
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

func (h *Handler) MaterialCreate(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "title is required")
		return
	}
	if req.Type == "" {
		req.Type = models.DefaultMaterialType
	}

	id, err := h.Store.CreateMaterial(c.Request.Context(), models.Material{
		Title:       req.Title,
		Type:        req.Type,
		URL:         req.URL,
		Description: req.Description,
		Keywords:    req.Keywords,
		UseCount:    0,
	})
	if err != nil {
		h.fail(c, err, "Failed to create material")
		return
	}
	respondData(c, gin.H{"id": id})
}

func (h *Handler) MaterialUpdate(c *gin.Context) {
	var patch models.MaterialPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Store.UpdateMaterial(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.fail(c, err, "Failed to update material")
		return
	}
	respondEmpty(c)
}

func (h *Handler) MaterialDelete(c *gin.Context) {
	if err := h.Store.ArchiveMaterial(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete material")
		return
	}
	respondEmpty(c)
}

func (h *Handler) MaterialUse(c *gin.Context) {
	if err := h.Store.IncrementMaterialUseCount(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to increment use count")
		return
	}
	respondEmpty(c)
}

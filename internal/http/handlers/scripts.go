package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salescoach/backend/internal/models"
)

func (h *Handler) ScriptsList(c *gin.Context) {
	scripts, err := h.Store.ListScripts(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch scripts")
		return
	}
	respondData(c, scripts)
}

type CreateScriptRequest struct {
	Title    string   `json:"title" validate:"required"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	IsActive *bool    `json:"isActive"`
}

func (h *Handler) ScriptCreate(c *gin.Context) {
	var req CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "title is required")
		return
	}
	if req.Category == "" {
		req.Category = models.DefaultScriptCategory
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	id, err := h.Store.CreateScript(c.Request.Context(), models.Script{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Keywords: req.Keywords,
		UseCount: 0,
		IsActive: active,
	})
	if err != nil {
		h.fail(c, err, "Failed to create script")
		return
	}
	respondData(c, gin.H{"id": id})
}

func (h *Handler) ScriptUpdate(c *gin.Context) {
	var patch models.ScriptPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Store.UpdateScript(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.fail(c, err, "Failed to update script")
		return
	}
	respondEmpty(c)
}

func (h *Handler) ScriptDelete(c *gin.Context) {
	if err := h.Store.ArchiveScript(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete script")
		return
	}
	respondEmpty(c)
}

func (h *Handler) ScriptUse(c *gin.Context) {
	if err := h.Store.IncrementScriptUseCount(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to increment use count")
		return
	}
	respondEmpty(c)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/store"
)

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/customers [get]
func (h *Handler) CustomersList(c *gin.Context) {
	customers, err := h.Store.ListCustomers(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch customers")
		return
	}
	respondData(c, customers)
}

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/customers [post]
func (h *Handler) CustomerCreate(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	if req.Status == "" {
		req.Status = models.StatusLead
	}

	id, err := h.Store.CreateCustomer(c.Request.Context(), models.Customer{
		Name:        req.Name,
		Company:     req.Company,
		Status:      req.Status,
		Notes:       req.Notes,
		CreatedAt:   today(),
		LastContact: today(),
	})
	if err != nil {
		h.fail(c, err, "Failed to create customer")
		return
	}
	respondData(c, gin.H{"id": id})
}

func (h *Handler) CustomerGet(c *gin.Context) {
	customer, err := h.Store.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Customer not found")
			return
		}
		h.fail(c, err, "Failed to fetch customer")
		return
	}
	respondData(c, customer)
}

func (h *Handler) CustomerUpdate(c *gin.Context) {
	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Store.UpdateCustomer(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.fail(c, err, "Failed to update customer")
		return
	}
	respondEmpty(c)
}

func (h *Handler) CustomerDelete(c *gin.Context) {
	if err := h.Store.ArchiveCustomer(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete customer")
		return
	}
	respondEmpty(c)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/store"
)

func (h *Handler) ProductsList(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch products")
		return
	}
	respondData(c, products)
}

type CreateProductRequest struct {
	Name             string   `json:"name" validate:"required"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Benefits         []string `json:"benefits"`
	PriceRange       string   `json:"priceRange"`
	TargetCustomer   string   `json:"targetCustomer"`
	IsActive         *bool    `json:"isActive"`
}

func (h *Handler) ProductCreate(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	id, err := h.Store.CreateProduct(c.Request.Context(), models.Product{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Benefits:         req.Benefits,
		PriceRange:       req.PriceRange,
		TargetCustomer:   req.TargetCustomer,
		IsActive:         isActive,
	})
	if err != nil {
		h.fail(c, err, "Failed to create product")
		return
	}
	respondData(c, gin.H{"id": id})
}

func (h *Handler) ProductGet(c *gin.Context) {
	product, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		h.fail(c, err, "Failed to fetch product")
		return
	}
	respondData(c, product)
}

func (h *Handler) ProductUpdate(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Store.UpdateProduct(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.fail(c, err, "Failed to update product")
		return
	}
	respondEmpty(c)
}

func (h *Handler) ProductDelete(c *gin.Context) {
	if err := h.Store.ArchiveProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete product")
		return
	}
	respondEmpty(c)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/service"
	"github.com/salescoach/backend/internal/store"
)

// Store is the record-store surface the handlers use; *store.Store
// implements it.
type Store interface {
	Ping(ctx context.Context) error

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, c models.Customer) (string, error)
	UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) error
	ArchiveCustomer(ctx context.Context, id string) error

	ListScripts(ctx context.Context) ([]models.Script, error)
	CreateScript(ctx context.Context, s models.Script) (string, error)
	UpdateScript(ctx context.Context, id string, patch models.ScriptPatch) error
	ArchiveScript(ctx context.Context, id string) error
	IncrementScriptUseCount(ctx context.Context, id string) error

	ListMaterials(ctx context.Context) ([]models.Material, error)
	CreateMaterial(ctx context.Context, m models.Material) (string, error)
	UpdateMaterial(ctx context.Context, id string, patch models.MaterialPatch) error
	ArchiveMaterial(ctx context.Context, id string) error
	IncrementMaterialUseCount(ctx context.Context, id string) error

	ListStages(ctx context.Context) ([]models.SalesStage, error)
	CreateStage(ctx context.Context, s models.SalesStage) (string, error)
	UpdateStage(ctx context.Context, id string, patch models.SalesStagePatch) error
	ArchiveStage(ctx context.Context, id string) error

	ListStrategies(ctx context.Context) ([]models.Strategy, error)
	GetStrategy(ctx context.Context, id string) (*models.Strategy, error)
	CreateStrategy(ctx context.Context, s models.Strategy) (string, error)
	UpdateStrategy(ctx context.Context, id string, patch models.StrategyPatch) error
	ArchiveStrategy(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (string, error)
	UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) error
	ArchiveProduct(ctx context.Context, id string) error
}

// Advisor is the AI orchestration surface; *service.Advisor implements it.
type Advisor interface {
	AnalyzeConversation(ctx context.Context, req service.AnalysisRequest) (*models.AnalysisResult, error)
	QuickResponse(ctx context.Context, conversation, responseType, contextText string) (string, error)
	GenerateMessage(ctx context.Context, req service.SituationRequest) (*models.SituationResult, error)
}

type Handler struct {
	Store     Store
	Advisor   Advisor
	Validator *validator.Validate
	Logger    zerolog.Logger
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// fail maps an error to the envelope: validation errors carry their own
// message at 400, missing records 404, everything else the fixed message at
// 500 with the cause logged.
func (h *Handler) fail(c *gin.Context, err error, message string) {
	var verr service.ValidationError
	if errors.As(err, &verr) {
		respondError(c, http.StatusBadRequest, verr.Error())
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, message)
		return
	}
	h.Logger.Error().Err(err).Msg(message)
	respondError(c, http.StatusInternalServerError, message)
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/salescoach/backend/internal/ai"
	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/prompt"
)

// ValidationError marks missing required input. Raised before any remote
// call; handlers map it to a client error.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrConversationRequired = ValidationError("conversation is required")
	ErrResponseTypeRequired = ValidationError("response type is required")
	ErrSituationRequired    = ValidationError("situation is required")
)

// RecordSource is the slice of the record store the advisor needs.
type RecordSource interface {
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	GetStrategy(ctx context.Context, id string) (*models.Strategy, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListStages(ctx context.Context) ([]models.SalesStage, error)
}

// Advisor sequences the fetch-records, assemble-prompt, call-model,
// parse-reply pipeline behind every AI endpoint.
type Advisor struct {
	Store  RecordSource
	Model  ai.Model
	Logger zerolog.Logger
}

type AnalysisRequest struct {
	Conversation string
	CustomerID   string
	StrategyID   string
}

func (a *Advisor) AnalyzeConversation(ctx context.Context, req AnalysisRequest) (*models.AnalysisResult, error) {
	if strings.TrimSpace(req.Conversation) == "" {
		return nil, ErrConversationRequired
	}

	// Customer and strategy are best-effort context: a stale id must not
	// block the analysis.
	var customer *models.Customer
	if req.CustomerID != "" {
		c, err := a.Store.GetCustomer(ctx, req.CustomerID)
		if err != nil {
			a.Logger.Warn().Err(err).Str("customer_id", req.CustomerID).Msg("customer lookup failed, proceeding without")
		} else {
			customer = c
		}
	}
	var strategy *models.Strategy
	if req.StrategyID != "" {
		st, err := a.Store.GetStrategy(ctx, req.StrategyID)
		if err != nil {
			a.Logger.Warn().Err(err).Str("strategy_id", req.StrategyID).Msg("strategy lookup failed, proceeding without")
		} else {
			strategy = st
		}
	}

	stages, err := a.Store.ListStages(ctx)
	if err != nil {
		return nil, err
	}

	p, err := prompt.Analysis(prompt.AnalysisContext{
		Conversation: req.Conversation,
		Stages:       stages,
		Strategy:     strategy,
		Customer:     customer,
	})
	if err != nil {
		return nil, err
	}

	reply, err := a.Model.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	return prompt.ParseAnalysis(reply)
}

// QuickResponse returns a single-sentence reply as raw text; unlike the full
// analysis the model is not asked for JSON here.
func (a *Advisor) QuickResponse(ctx context.Context, conversation, responseType, contextText string) (string, error) {
	if strings.TrimSpace(conversation) == "" {
		return "", ErrConversationRequired
	}
	if strings.TrimSpace(responseType) == "" {
		return "", ErrResponseTypeRequired
	}

	p, err := prompt.QuickResponse(conversation, responseType, contextText)
	if err != nil {
		return "", err
	}
	reply, err := a.Model.Generate(ctx, p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

type SituationRequest struct {
	Situation  string
	StrategyID string
	CustomerID string
	ProductID  string
}

func (a *Advisor) GenerateMessage(ctx context.Context, req SituationRequest) (*models.SituationResult, error) {
	if strings.TrimSpace(req.Situation) == "" {
		return nil, ErrSituationRequired
	}

	var strategy *models.Strategy
	if req.StrategyID != "" {
		st, err := a.Store.GetStrategy(ctx, req.StrategyID)
		if err != nil {
			a.Logger.Warn().Err(err).Str("strategy_id", req.StrategyID).Msg("strategy lookup failed, proceeding without")
		} else {
			strategy = st
		}
	}
	var customer *models.Customer
	if req.CustomerID != "" {
		c, err := a.Store.GetCustomer(ctx, req.CustomerID)
		if err != nil {
			a.Logger.Warn().Err(err).Str("customer_id", req.CustomerID).Msg("customer lookup failed, proceeding without")
		} else {
			customer = c
		}
	}
	var product *models.Product
	if req.ProductID != "" {
		p, err := a.Store.GetProduct(ctx, req.ProductID)
		if err != nil {
			a.Logger.Warn().Err(err).Str("product_id", req.ProductID).Msg("product lookup failed, proceeding without")
		} else {
			product = p
		}
	}

	p, err := prompt.Situation(prompt.SituationContext{
		Situation: req.Situation,
		Product:   product,
		Strategy:  strategy,
		Customer:  customer,
	})
	if err != nil {
		return nil, err
	}

	reply, err := a.Model.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	generated, err := prompt.ParseMessage(reply)
	if err != nil {
		return nil, err
	}

	// The UI-facing shape renames the model-facing fields.
	result := &models.SituationResult{
		Situation: req.Situation,
		Analysis:  generated.SituationAnalysis,
		Approach:  generated.RecommendedApproach,
		Messages:  make([]models.ResponseMessage, 0, len(generated.Messages)),
	}
	for _, m := range generated.Messages {
		result.Messages = append(result.Messages, models.ResponseMessage{
			Type:        m.Type,
			Text:        m.Text,
			Explanation: m.Tone,
		})
	}
	return result, nil
}

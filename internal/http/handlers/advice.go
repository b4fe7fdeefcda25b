package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salescoach/backend/internal/service"
)

type quickResponseSpec struct {
	Type    string `json:"type"`
	Context string `json:"context"`
}

type AnalyzeRequest struct {
	Conversation  string             `json:"conversation"`
	CustomerID    string             `json:"customerId"`
	StrategyID    string             `json:"strategyId"`
	QuickResponse *quickResponseSpec `json:"quickResponse"`
}

// @Summary Analyze a sales conversation
// @Tags advice
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/analysis [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	// quickResponse switches the endpoint into single-suggestion mode: the
	// model returns one plain-text reply instead of the full analysis.
	if req.QuickResponse != nil {
		text, err := h.Advisor.QuickResponse(c.Request.Context(), req.Conversation, req.QuickResponse.Type, req.QuickResponse.Context)
		if err != nil {
			h.fail(c, err, "Failed to generate response")
			return
		}
		respondData(c, gin.H{"response": text})
		return
	}

	result, err := h.Advisor.AnalyzeConversation(c.Request.Context(), service.AnalysisRequest{
		Conversation: req.Conversation,
		CustomerID:   req.CustomerID,
		StrategyID:   req.StrategyID,
	})
	if err != nil {
		h.fail(c, err, "Failed to analyze conversation")
		return
	}
	respondData(c, result)
}

type GenerateMessageRequest struct {
	Situation  string `json:"situation"`
	StrategyID string `json:"strategyId"`
	CustomerID string `json:"customerId"`
	ProductID  string `json:"productId"`
}

// @Summary Generate situation-based messages
// @Tags advice
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/generate-message [post]
func (h *Handler) GenerateMessage(c *gin.Context) {
	var req GenerateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	result, err := h.Advisor.GenerateMessage(c.Request.Context(), service.SituationRequest{
		Situation:  req.Situation,
		StrategyID: req.StrategyID,
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
	})
	if err != nil {
		h.fail(c, err, "Failed to generate message")
		return
	}
	respondData(c, result)
}

// Package prompt renders the instruction blocks sent to the generative model
// and parses the structured part of its replies.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/salescoach/backend/internal/models"
)

var (
	analysisTmpl  = template.Must(template.New("analysis").Parse(analysisTemplate))
	quickTmpl     = template.Must(template.New("quick").Parse(quickResponseTemplate))
	situationTmpl = template.Must(template.New("situation").Parse(situationTemplate))
)

// AnalysisContext carries everything interpolated into the conversation
// analysis prompt. Strategy and Customer are optional; nil falls back to the
// generic persona lines.
type AnalysisContext struct {
	Conversation string
	Stages       []models.SalesStage
	Strategy     *models.Strategy
	Customer     *models.Customer
}

func Analysis(ctx AnalysisContext) (string, error) {
	lines := make([]string, 0, len(ctx.Stages))
	for _, s := range ctx.Stages {
		lines = append(lines, fmt.Sprintf("%d. %s: 목표인식=%q, AI지시=%q", s.Order, s.Name, s.TargetPerception, s.AIInstruction))
	}

	strategyContext := "기본 세일즈 전략 적용"
	if ctx.Strategy != nil {
		strategyContext = fmt.Sprintf("전략: %s\n감정목표: %s\n페르소나: %s",
			ctx.Strategy.Name, ctx.Strategy.EmotionGoal, ctx.Strategy.Persona)
	}

	customerContext := "신규 고객"
	if ctx.Customer != nil {
		customerContext = fmt.Sprintf("고객: %s (%s)\n상태: %s\n메모: %s",
			ctx.Customer.Name, ctx.Customer.Company, ctx.Customer.Status, ctx.Customer.Notes)
	}

	var b strings.Builder
	err := analysisTmpl.Execute(&b, map[string]string{
		"StageFramework":  strings.Join(lines, "\n"),
		"StrategyContext": strategyContext,
		"CustomerContext": customerContext,
		"Conversation":    ctx.Conversation,
		"Schema":          analysisSchemaV1,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func QuickResponse(conversation, responseType, context string) (string, error) {
	var b strings.Builder
	err := quickTmpl.Execute(&b, map[string]string{
		"Conversation": conversation,
		"ResponseType": responseType,
		"Context":      context,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// SituationContext carries the optional records interpolated into the
// situation-to-message prompt.
type SituationContext struct {
	Situation string
	Product   *models.Product
	Strategy  *models.Strategy
	Customer  *models.Customer
}

func Situation(ctx SituationContext) (string, error) {
	productContext := ""
	if ctx.Product != nil {
		productContext = fmt.Sprintf(`=== 판매 상품/서비스 정보 ===
상품명: %s
한줄설명: %s
상세설명: %s
핵심혜택: %s
가격대: %s
타겟고객: %s

`, ctx.Product.Name, ctx.Product.ShortDescription, ctx.Product.FullDescription,
			strings.Join(ctx.Product.Benefits, ", "), ctx.Product.PriceRange, ctx.Product.TargetCustomer)
	}

	strategyContext := ""
	if ctx.Strategy != nil {
		strategyContext = fmt.Sprintf(`=== 전략 정보 ===
전략명: %s
설명: %s
감정목표: %s
페르소나: %s
시스템프롬프트: %s

`, ctx.Strategy.Name, ctx.Strategy.Description, ctx.Strategy.EmotionGoal,
			ctx.Strategy.Persona, ctx.Strategy.SystemPrompt)
	}

	customerContext := ""
	if ctx.Customer != nil {
		customerContext = fmt.Sprintf(`=== 고객 정보 ===
고객명: %s
회사: %s
상태: %s
메모: %s
최종연락일: %s

`, ctx.Customer.Name, ctx.Customer.Company, ctx.Customer.Status,
			ctx.Customer.Notes, ctx.Customer.LastContact)
	}

	var b strings.Builder
	err := situationTmpl.Execute(&b, map[string]any{
		"ProductContext":  productContext,
		"StrategyContext": strategyContext,
		"CustomerContext": customerContext,
		"Situation":       ctx.Situation,
		"HasProduct":      ctx.Product != nil,
		"Schema":          messageSchemaV1,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

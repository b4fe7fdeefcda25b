package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/store"
)

type fakeStore struct {
	customer *models.Customer
	strategy *models.Strategy
	product  *models.Product
	stages   []models.SalesStage

	customerCalls int
	strategyCalls int
	productCalls  int
	stageCalls    int
}

func (f *fakeStore) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	f.customerCalls++
	if f.customer == nil {
		return nil, store.ErrNotFound
	}
	return f.customer, nil
}

func (f *fakeStore) GetStrategy(ctx context.Context, id string) (*models.Strategy, error) {
	f.strategyCalls++
	if f.strategy == nil {
		return nil, store.ErrNotFound
	}
	return f.strategy, nil
}

func (f *fakeStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	f.productCalls++
	if f.product == nil {
		return nil, store.ErrNotFound
	}
	return f.product, nil
}

func (f *fakeStore) ListStages(ctx context.Context) ([]models.SalesStage, error) {
	f.stageCalls++
	return f.stages, nil
}

type scriptedModel struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (m *scriptedModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

const analysisReply = `{
  "customerEmotion": "긍정적",
  "currentStageOrder": 2,
  "currentStageName": "라포 형성",
  "canAdvance": false,
  "hiddenNeeds": "확신",
  "suggestedResponses": [{"type": "공감", "text": "이해합니다", "explanation": "신뢰 유지"}],
  "suggestedQuestions": ["어떤 점이 걱정되세요?"],
  "stageStrategy": "공감 먼저",
  "recommendedMaterials": ["사례"],
  "warnings": []
}`

const messageReply = `{
  "situationAnalysis": "침묵 상황",
  "recommendedApproach": "부담 없는 재접촉",
  "messages": [
    {"type": "공감", "text": "바쁘셨죠", "tone": "따뜻함"},
    {"type": "질문", "text": "검토해보셨나요?", "tone": "가벼운 확인"},
    {"type": "클로징", "text": "무료 진단 어떠세요?", "tone": "작은 행동 제안"}
  ]
}`

func TestAnalyzeConversationEmptyInputSkipsModel(t *testing.T) {
	st := &fakeStore{}
	m := &scriptedModel{reply: analysisReply}
	a := &Advisor{Store: st, Model: m, Logger: zerolog.Nop()}

	_, err := a.AnalyzeConversation(context.Background(), AnalysisRequest{Conversation: "   "})
	if !errors.Is(err, ErrConversationRequired) {
		t.Fatalf("expected ErrConversationRequired, got %v", err)
	}
	if m.calls != 0 {
		t.Fatalf("model called %d times on invalid input", m.calls)
	}
	if st.stageCalls != 0 {
		t.Fatalf("store queried %d times on invalid input", st.stageCalls)
	}
}

func TestAnalyzeConversation(t *testing.T) {
	st := &fakeStore{
		customer: &models.Customer{Name: "김민수", Company: "민수식당", Status: "상담중"},
		stages: []models.SalesStage{
			{Order: 1, Name: "첫 대화", IsActive: true},
			{Order: 2, Name: "라포 형성", IsActive: true},
		},
	}
	m := &scriptedModel{reply: analysisReply}
	a := &Advisor{Store: st, Model: m, Logger: zerolog.Nop()}

	result, err := a.AnalyzeConversation(context.Background(), AnalysisRequest{
		Conversation: "고객: 안녕하세요",
		CustomerID:   "c1",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.CurrentStageName != "라포 형성" {
		t.Fatalf("unexpected stage: %q", result.CurrentStageName)
	}
	if st.customerCalls != 1 || st.stageCalls != 1 {
		t.Fatalf("unexpected store calls: customer=%d stages=%d", st.customerCalls, st.stageCalls)
	}
	if st.strategyCalls != 0 {
		t.Fatalf("strategy fetched without an id")
	}
	if !strings.Contains(m.prompts[0], "김민수") {
		t.Fatalf("customer context missing from prompt")
	}
}

func TestAnalyzeConversationStaleCustomerID(t *testing.T) {
	st := &fakeStore{stages: []models.SalesStage{{Order: 1, Name: "첫 대화"}}}
	m := &scriptedModel{reply: analysisReply}
	a := &Advisor{Store: st, Model: m, Logger: zerolog.Nop()}

	result, err := a.AnalyzeConversation(context.Background(), AnalysisRequest{
		Conversation: "고객: 안녕하세요",
		CustomerID:   "gone",
	})
	if err != nil {
		t.Fatalf("stale customer id must not fail the analysis: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a result")
	}
	if !strings.Contains(m.prompts[0], "신규 고객") {
		t.Fatalf("expected customer fallback in prompt")
	}
}

func TestQuickResponse(t *testing.T) {
	m := &scriptedModel{reply: "  가격이 고민되시는 마음 이해합니다.  \n"}
	a := &Advisor{Store: &fakeStore{}, Model: m, Logger: zerolog.Nop()}

	got, err := a.QuickResponse(context.Background(), "고객: 비싸네요", "공감", "")
	if err != nil {
		t.Fatalf("quick response: %v", err)
	}
	if got != "가격이 고민되시는 마음 이해합니다." {
		t.Fatalf("expected trimmed reply, got %q", got)
	}
}

func TestQuickResponseMissingType(t *testing.T) {
	m := &scriptedModel{reply: "응답"}
	a := &Advisor{Store: &fakeStore{}, Model: m, Logger: zerolog.Nop()}

	_, err := a.QuickResponse(context.Background(), "고객: 비싸네요", "", "")
	if !errors.Is(err, ErrResponseTypeRequired) {
		t.Fatalf("expected ErrResponseTypeRequired, got %v", err)
	}
	if m.calls != 0 {
		t.Fatalf("model called on invalid input")
	}
}

func TestGenerateMessage(t *testing.T) {
	st := &fakeStore{
		product: &models.Product{Name: "구글맵 상위노출", ShortDescription: "3개 국어 최적화"},
	}
	m := &scriptedModel{reply: messageReply}
	a := &Advisor{Store: st, Model: m, Logger: zerolog.Nop()}

	result, err := a.GenerateMessage(context.Background(), SituationRequest{
		Situation: "고객이 3일째 답이 없습니다.",
		ProductID: "p1",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Situation != "고객이 3일째 답이 없습니다." {
		t.Fatalf("situation not echoed: %q", result.Situation)
	}
	if result.Analysis != "침묵 상황" || result.Approach != "부담 없는 재접촉" {
		t.Fatalf("analysis fields not mapped: %+v", result)
	}
	if len(result.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(result.Messages))
	}
	if result.Messages[0].Explanation != "따뜻함" {
		t.Fatalf("tone not mapped to explanation: %+v", result.Messages[0])
	}
	if !strings.Contains(m.prompts[0], "구글맵 상위노출") {
		t.Fatalf("product context missing from prompt")
	}
}

func TestGenerateMessageEmptySituation(t *testing.T) {
	m := &scriptedModel{reply: messageReply}
	a := &Advisor{Store: &fakeStore{}, Model: m, Logger: zerolog.Nop()}

	_, err := a.GenerateMessage(context.Background(), SituationRequest{Situation: ""})
	if !errors.Is(err, ErrSituationRequired) {
		t.Fatalf("expected ErrSituationRequired, got %v", err)
	}
	if m.calls != 0 {
		t.Fatalf("model called on invalid input")
	}
}

func TestGenerateMessageModelError(t *testing.T) {
	m := &scriptedModel{err: errors.New("upstream timeout")}
	a := &Advisor{Store: &fakeStore{}, Model: m, Logger: zerolog.Nop()}

	_, err := a.GenerateMessage(context.Background(), SituationRequest{Situation: "침묵"})
	if err == nil || !strings.Contains(err.Error(), "upstream timeout") {
		t.Fatalf("expected model error, got %v", err)
	}
}

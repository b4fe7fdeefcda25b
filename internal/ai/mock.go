package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/utils"
)

// MockModel answers without any external call. Output varies with the prompt
// hash but is stable for a given prompt, and always satisfies the response
// parser, so the full pipeline works in dev with no credentials.
type MockModel struct {
	ModelVersion string
}

func (m MockModel) Generate(ctx context.Context, prompt string) (string, error) {
	h := utils.HashStringToUint64(prompt)

	switch {
	case strings.Contains(prompt, "=== 분석 요청 ==="):
		return m.analysisReply(h)
	case strings.Contains(prompt, "=== 요청사항 ==="):
		return m.situationReply(h)
	default:
		return "지금 상황에서 가장 중요한 부분부터 함께 정리해보면 좋을 것 같아요.", nil
	}
}

func (m MockModel) analysisReply(h uint64) (string, error) {
	emotions := []string{"관심", "망설임", "경계", "긍정적"}
	needs := []string{"비용 대비 효과 확신", "실제 사례 확인", "내부 설득 근거"}

	result := models.AnalysisResult{
		CustomerEmotion:   emotions[int(h)%len(emotions)],
		CurrentStageOrder: int(h%4) + 1,
		CurrentStageName:  "라포 형성",
		CanAdvance:        h%2 == 0,
		NextStageName:     "가치 소개",
		HiddenNeeds:       needs[int(h/7)%len(needs)],
		SuggestedResponses: []models.SuggestedResponse{
			{Type: "공감", Text: "그 부분이 특히 고민이시겠네요.", Explanation: "고객의 우려를 먼저 인정합니다"},
		},
		SuggestedQuestions:   []string{"현재 가장 큰 어려움은 무엇인가요?"},
		StageStrategy:        "공감을 충분히 표현한 뒤 다음 질문으로 넘어가세요.",
		RecommendedMaterials: []string{"사례"},
		Warnings:             []string{"너무 빨리 상품 소개로 넘어가지 마세요"},
	}
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (m MockModel) situationReply(h uint64) (string, error) {
	result := models.GeneratedMessage{
		SituationAnalysis:   "고객이 결정을 앞두고 확신을 얻고 싶어하는 상황입니다.",
		RecommendedApproach: "부담을 줄이고 작은 다음 행동을 제안하는 접근이 효과적입니다.",
		Messages: []models.SituationMessage{
			{Type: "공감", Text: "고민되시는 부분 충분히 이해합니다. 쉽지 않은 결정이시죠.", Tone: "고객의 감정을 먼저 인정하는 톤"},
			{Type: "제안", Text: "우선 부담 없이 무료 진단부터 받아보시는 건 어떨까요?", Tone: "작은 행동을 제안하는 톤"},
			{Type: "질문", Text: "결정에서 가장 중요하게 보시는 기준이 무엇인가요?", Tone: "판단 기준을 여는 질문 톤"},
		},
	}
	if h%2 == 0 {
		result.Messages[2] = models.SituationMessage{
			Type: "클로징",
			Text: "이번 주 안에 시작하시면 진단 결과를 바로 반영해드릴 수 있어요.",
			Tone: "시점을 제안하는 클로징 톤",
		}
	}
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/salescoach/backend/internal/prompt"
)

func TestMockAnalysisReplyParses(t *testing.T) {
	m := MockModel{ModelVersion: "mock-v1"}
	p := "대화 분석\n=== 분석 요청 ===\nJSON으로 응답하세요."

	reply, err := m.Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	result, err := prompt.ParseAnalysis(reply)
	if err != nil {
		t.Fatalf("mock analysis reply failed the parser: %v", err)
	}
	if result.CustomerEmotion == "" || result.CurrentStageName == "" {
		t.Fatalf("mock reply missing required fields: %+v", result)
	}
}

func TestMockSituationReplyParses(t *testing.T) {
	m := MockModel{ModelVersion: "mock-v1"}
	p := "상황 메시지\n=== 요청사항 ===\n3개의 메시지를 생성하세요."

	reply, err := m.Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	result, err := prompt.ParseMessage(reply)
	if err != nil {
		t.Fatalf("mock situation reply failed the parser: %v", err)
	}
	if len(result.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(result.Messages))
	}
}

func TestMockQuickReplyIsPlainText(t *testing.T) {
	m := MockModel{}
	reply, err := m.Generate(context.Background(), "응답 유형: 공감\n대화 내용: 고객: 비싸네요")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(reply, "{") {
		t.Fatalf("quick reply should not be JSON: %q", reply)
	}
}

func TestMockIsDeterministic(t *testing.T) {
	m := MockModel{}
	p := "대화\n=== 분석 요청 ===\n"
	a, _ := m.Generate(context.Background(), p)
	b, _ := m.Generate(context.Background(), p)
	if a != b {
		t.Fatalf("same prompt produced different replies")
	}
}

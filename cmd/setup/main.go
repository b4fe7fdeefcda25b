// Command setup provisions the record store for a new deployment: it
// creates the schema, seeds the default sales stages, the default
// strategy and a set of sample scripts, and writes a .env file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salescoach/backend/internal/models"
	"github.com/salescoach/backend/internal/store"
)

var defaultStages = []models.SalesStage{
	{
		Name:              "첫 대화",
		Order:             1,
		TargetPerception:  "이 사람은 전문가 같다. 한번 들어볼만 하다.",
		AIInstruction:     "친근하면서도 전문적인 첫인상을 주세요. 고객의 현재 상황을 파악하는 질문을 하세요.",
		KeyQuestions:      "현재 어떤 방식으로 마케팅을 하고 계신가요?",
		TransitionSignals: "고객이 현재 상황에 대해 이야기하기 시작함",
		Warnings:          "너무 빨리 상품 소개로 넘어가지 마세요",
		IsActive:          true,
	},
	{
		Name:              "라포 형성",
		Order:             2,
		TargetPerception:  "이 사람은 내 상황을 이해하고 있다.",
		AIInstruction:     "고객의 말에 공감하고, 비슷한 사례나 경험을 공유하세요.",
		KeyQuestions:      "그 부분이 특히 고민이시겠네요. 혹시 이전에 시도해보신 방법이 있으신가요?",
		TransitionSignals: "고객이 고민이나 어려움을 솔직하게 이야기함",
		Warnings:          "공감 없이 바로 해결책을 제시하지 마세요",
		IsActive:          true,
	},
	{
		Name:              "가치 소개",
		Order:             3,
		TargetPerception:  "이 서비스가 내 문제를 해결해줄 수 있겠다.",
		AIInstruction:     "고객의 니즈와 연결해서 서비스의 가치를 설명하세요. 구체적인 사례를 활용하세요.",
		KeyQuestions:      "비슷한 상황의 업체가 이 방법으로 외국인 고객이 30% 늘었어요.",
		TransitionSignals: "고객이 서비스에 관심을 보이며 질문함",
		Warnings:          "기능 나열보다 고객 관점의 혜택을 강조하세요",
		IsActive:          true,
	},
	{
		Name:              "니즈 파악 (5 Whys)",
		Order:             4,
		TargetPerception:  "내가 진짜 원하는 게 뭔지 알게 됐다.",
		AIInstruction:     "왜?를 반복해서 고객의 진짜 니즈를 파악하세요. 표면적 니즈 뒤의 근본 욕구를 찾으세요.",
		KeyQuestions:      "외국인 고객을 늘리고 싶으신 이유가 뭔가요? → 그게 왜 중요하신가요?",
		TransitionSignals: "고객이 깊은 고민이나 진짜 목표를 이야기함",
		Warnings:          "심문하는 느낌이 들지 않게 자연스럽게 물어보세요",
		IsActive:          true,
	},
	{
		Name:              "핵심 문제 짚기",
		Order:             5,
		TargetPerception:  "맞아, 이게 내 핵심 문제야. 이걸 해결해야 해.",
		AIInstruction:     "파악한 니즈를 정리해서 핵심 문제를 명확히 짚어주세요.",
		KeyQuestions:      "정리하면, 외국인 고객 확보가 안 되는 핵심 원인은 구글맵 노출 부족인 거죠?",
		TransitionSignals: "고객이 \"맞아요\", \"그렇죠\"라며 동의함",
		Warnings:          "고객의 문제를 과장하거나 공포 마케팅하지 마세요",
		IsActive:          true,
	},
	{
		Name:              "클로징",
		Order:             6,
		TargetPerception:  "지금 시작하는 게 좋겠다.",
		AIInstruction:     "구체적인 다음 단계를 제안하세요. 시작하기 쉬운 작은 행동부터 제안하세요.",
		KeyQuestions:      "우선 무료로 현재 구글맵 상태를 진단해드릴까요?",
		TransitionSignals: "고객이 가격, 일정, 진행 방법을 물어봄",
		Warnings:          "너무 밀어붙이지 마세요. 거절해도 관계는 유지하세요.",
		IsActive:          true,
	},
}

var defaultStrategy = models.Strategy{
	Name:         "신뢰 구축형",
	Icon:         "🤝",
	Description:  "신뢰와 전문성을 강조하는 기본 전략",
	SystemPrompt: "전문적이면서도 따뜻한 톤으로 대화하세요.",
	EmotionGoal:  "안심, 신뢰",
	Persona:      "경험 많은 마케팅 전문가",
	IsDefault:    true,
}

var sampleScripts = []models.Script{
	{
		Title:    "첫 인사 - 문의 감사",
		Category: "인사",
		Content:  "안녕하세요! 문의 주셔서 감사합니다. 구글맵 상위노출 서비스에 관심을 가져주셨군요. 현재 어떤 업종을 운영하고 계신가요?",
		IsActive: true,
	},
	{
		Title:    "공감 - 외국인 고객 고민",
		Category: "라포",
		Content:  "외국인 고객 유치가 쉽지 않으시죠. 특히 명동 같은 상권은 경쟁이 치열해서 온라인에서 먼저 눈에 띄는 게 정말 중요하더라고요.",
		IsActive: true,
	},
	{
		Title:    "가치 제안 - 3개 언어 혜택",
		Category: "가치제안",
		Content:  "저희 서비스는 한국어, 영어, 일본어 3개 국어로 구글맵 프로필을 최적화해드려요. 실제로 이 방법으로 외국인 고객이 평균 40% 증가한 사례가 많습니다.",
		IsActive: true,
	},
	{
		Title:    "반론 처리 - 가격 고민",
		Category: "반론처리",
		Content:  "가격이 부담되시는 마음 이해합니다. 다만 월 120만원으로 매달 외국인 고객 10명만 더 오셔도 충분히 투자 대비 효과가 있으실 거예요.",
		IsActive: true,
	},
	{
		Title:    "클로징 - 무료 진단 제안",
		Category: "클로징",
		Content:  "우선 부담 없이 현재 구글맵 상태를 무료로 진단해드릴까요? 10분 정도면 현재 상황과 개선 포인트를 알려드릴 수 있어요.",
		IsActive: true,
	},
}

func main() {
	databaseURL := flag.String("database-url", "", "postgres connection string (prompted if empty)")
	geminiKey := flag.String("gemini-api-key", "", "gemini api key to write into .env (prompted if empty)")
	skipSeed := flag.Bool("skip-seed", false, "create the schema only, without seed records")
	envPath := flag.String("env", ".env", "path of the env file to write")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	logger := log.With().Str("service", "salescoach-setup").Logger()

	in := bufio.NewReader(os.Stdin)
	if *databaseURL == "" {
		*databaseURL = ask(in, "Postgres URL: ")
	}
	if *databaseURL == "" {
		logger.Fatal().Msg("database url is required")
	}
	if *geminiKey == "" {
		*geminiKey = ask(in, "Gemini API key (empty to use the mock model): ")
	}

	ctx := context.Background()
	st, err := store.New(ctx, *databaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to create schema")
	}
	logger.Info().Msg("schema ready")

	if !*skipSeed {
		if err := seed(ctx, st); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed records")
		}
		logger.Info().
			Int("stages", len(defaultStages)).
			Int("scripts", len(sampleScripts)).
			Msg("seed records created")
	}

	if err := writeEnv(*envPath, *databaseURL, *geminiKey); err != nil {
		logger.Fatal().Err(err).Msg("failed to write env file")
	}
	logger.Info().Str("path", *envPath).Msg("env file written")
}

func ask(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func seed(ctx context.Context, st *store.Store) error {
	// Seeding is skipped when stages already exist so the command stays
	// safe to re-run against a provisioned database.
	stages, err := st.ListStages(ctx)
	if err != nil {
		return err
	}
	if len(stages) > 0 {
		return nil
	}

	for _, stage := range defaultStages {
		if _, err := st.CreateStage(ctx, stage); err != nil {
			return fmt.Errorf("seed stage %q: %w", stage.Name, err)
		}
	}
	if _, err := st.CreateStrategy(ctx, defaultStrategy); err != nil {
		return fmt.Errorf("seed strategy: %w", err)
	}
	for _, script := range sampleScripts {
		if _, err := st.CreateScript(ctx, script); err != nil {
			return fmt.Errorf("seed script %q: %w", script.Title, err)
		}
	}
	return nil
}

func writeEnv(path, databaseURL, geminiKey string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# generated by setup on %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&b, "DATABASE_URL=%s\n", databaseURL)
	fmt.Fprintf(&b, "GEMINI_API_KEY=%s\n", geminiKey)
	b.WriteString("PORT=8080\n")
	b.WriteString("LOG_LEVEL=info\n")
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

package prompt

// The JSON blocks below are the schema contract the response parser depends
// on. The model is told to return JSON only because the parser has no
// recovery path for conversational preamble. Versioned: changing a schema
// means changing the parser with it.

const analysisSchemaV1 = `{
  "customerEmotion": "고객의 현재 감정 상태",
  "currentStageOrder": 현재_단계_순서_숫자,
  "currentStageName": "현재 단계 이름",
  "canAdvance": 다음_단계로_넘어갈_수_있는지_boolean,
  "nextStageName": "다음 단계 이름 (있는 경우)",
  "hiddenNeeds": "파악된 숨은 니즈",
  "suggestedResponses": [
    {
      "type": "공감|질문|가치제안|반론처리|클로징",
      "text": "추천 응답 텍스트",
      "explanation": "이 응답을 추천하는 이유"
    }
  ],
  "suggestedQuestions": ["이 단계에서 던질 질문들"],
  "stageStrategy": "현재 단계에서의 전략 조언",
  "recommendedMaterials": ["추천 자료 유형"],
  "warnings": ["주의해야 할 사항"]
}`

const messageSchemaV1 = `{
  "situationAnalysis": "상황에 대한 전문적인 분석 (2-3문장)",
  "recommendedApproach": "추천하는 접근 방법 (2-3문장)",
  "messages": [
    {
      "type": "공감|제안|질문|클로징",
      "text": "실제 사용할 메시지 텍스트 (자연스러운 한국어, 2-3문장)",
      "tone": "이 메시지의 톤과 의도 설명 (1문장)"
    },
    {
      "type": "공감|제안|질문|클로징",
      "text": "실제 사용할 메시지 텍스트 (자연스러운 한국어, 2-3문장)",
      "tone": "이 메시지의 톤과 의도 설명 (1문장)"
    },
    {
      "type": "공감|제안|질문|클로징",
      "text": "실제 사용할 메시지 텍스트 (자연스러운 한국어, 2-3문장)",
      "tone": "이 메시지의 톤과 의도 설명 (1문장)"
    }
  ]
}`

const analysisTemplate = `당신은 세일즈 심리학 전문가입니다. 아래 대화를 분석해주세요.

=== 세일즈 단계 프레임워크 ===
{{.StageFramework}}

=== 전략 정보 ===
{{.StrategyContext}}

=== 고객 정보 ===
{{.CustomerContext}}

=== 대화 내용 ===
{{.Conversation}}

=== 분석 요청 ===
다음 JSON 형식으로 분석 결과를 제공해주세요:

{{.Schema}}

JSON만 반환하고 다른 텍스트는 포함하지 마세요.`

const quickResponseTemplate = `세일즈 상황입니다. 다음 유형의 응답을 생성해주세요.

응답 유형: {{.ResponseType}}
{{if .Context}}맥락: {{.Context}}
{{end}}
대화 내용:
{{.Conversation}}

자연스럽고 설득력 있는 한국어 응답을 한 문장으로 제공해주세요. 응답만 작성하세요.`

const situationTemplate = `당신은 전문적인 세일즈 커뮤니케이션 전문가입니다.
현재 상황을 분석하고 효과적인 응대 메시지를 생성해주세요.

{{.ProductContext}}{{.StrategyContext}}{{.CustomerContext}}
=== 현재 상황 ===
{{.Situation}}

=== 요청사항 ===
위 상황을 분석하고, 세일즈 전문가로서 3개의 응대 메시지를 생성해주세요.
각 메시지는 다른 유형(공감, 제안, 질문, 클로징 중)이어야 하며,
자연스럽고 설득력 있는 한국어로 작성되어야 합니다.
{{if .HasProduct}}
반드시 위 상품/서비스 정보를 활용하여 구체적인 메시지를 생성하세요. 플레이스홀더([상품명] 등)를 사용하지 말고 실제 상품명과 혜택을 직접 언급하세요.
{{end}}
다음 JSON 형식으로 응답해주세요:

{{.Schema}}

JSON만 반환하고 다른 텍스트는 포함하지 마세요.`

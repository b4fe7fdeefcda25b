package models

// Customer status values as stored in the record store.
const (
	StatusLead       = "리드"
	StatusConsulting = "상담중"
	StatusProposed   = "제안"
	StatusContracted = "계약"
	StatusChurned    = "해지"
)

// Fallback select values used when the store has no value for a record.
const (
	DefaultScriptCategory = "기타"
	DefaultMaterialType   = "기타"
	DefaultStrategyIcon   = "🎯"
)

type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"createdAt"`
	LastContact string `json:"lastContact"`
}

type CustomerPatch struct {
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	LastContact *string `json:"lastContact"`
}

type Script struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	UseCount int      `json:"useCount"`
	IsActive bool     `json:"isActive"`
}

type ScriptPatch struct {
	Title    *string   `json:"title"`
	Category *string   `json:"category"`
	Content  *string   `json:"content"`
	Keywords *[]string `json:"keywords"`
	IsActive *bool     `json:"isActive"`
}

type Material struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	UseCount    int      `json:"useCount"`
}

type MaterialPatch struct {
	Title       *string   `json:"title"`
	Type        *string   `json:"type"`
	URL         *string   `json:"url"`
	Description *string   `json:"description"`
	Keywords    *[]string `json:"keywords"`
}

type SalesStage struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Order             int    `json:"order"`
	TargetPerception  string `json:"targetPerception"`
	AIInstruction     string `json:"aiInstruction"`
	KeyQuestions      string `json:"keyQuestions,omitempty"`
	TransitionSignals string `json:"transitionSignals,omitempty"`
	Warnings          string `json:"warnings,omitempty"`
	IsActive          bool   `json:"isActive"`
}

type SalesStagePatch struct {
	Name              *string `json:"name"`
	Order             *int    `json:"order"`
	TargetPerception  *string `json:"targetPerception"`
	AIInstruction     *string `json:"aiInstruction"`
	KeyQuestions      *string `json:"keyQuestions"`
	TransitionSignals *string `json:"transitionSignals"`
	Warnings          *string `json:"warnings"`
	IsActive          *bool   `json:"isActive"`
}

type Strategy struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	SystemPrompt string `json:"systemPrompt"`
	EmotionGoal  string `json:"emotionGoal"`
	Persona      string `json:"persona"`
	IsDefault    bool   `json:"isDefault"`
}

type StrategyPatch struct {
	Name         *string `json:"name"`
	Icon         *string `json:"icon"`
	Description  *string `json:"description"`
	SystemPrompt *string `json:"systemPrompt"`
	EmotionGoal  *string `json:"emotionGoal"`
	Persona      *string `json:"persona"`
	IsDefault    *bool   `json:"isDefault"`
}

type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Benefits         []string `json:"benefits"`
	PriceRange       string   `json:"priceRange"`
	TargetCustomer   string   `json:"targetCustomer"`
	IsActive         bool     `json:"isActive"`
}

type ProductPatch struct {
	Name             *string   `json:"name"`
	ShortDescription *string   `json:"shortDescription"`
	FullDescription  *string   `json:"fullDescription"`
	Benefits         *[]string `json:"benefits"`
	PriceRange       *string   `json:"priceRange"`
	TargetCustomer   *string   `json:"targetCustomer"`
	IsActive         *bool     `json:"isActive"`
}

// AnalysisResult is produced fresh per request and never persisted.
type AnalysisResult struct {
	CustomerEmotion      string              `json:"customerEmotion"`
	CurrentStageOrder    int                 `json:"currentStageOrder"`
	CurrentStageName     string              `json:"currentStageName"`
	CanAdvance           bool                `json:"canAdvance"`
	NextStageName        string              `json:"nextStageName,omitempty"`
	HiddenNeeds          string              `json:"hiddenNeeds"`
	SuggestedResponses   []SuggestedResponse `json:"suggestedResponses"`
	SuggestedQuestions   []string            `json:"suggestedQuestions"`
	StageStrategy        string              `json:"stageStrategy"`
	RecommendedMaterials []string            `json:"recommendedMaterials"`
	Warnings             []string            `json:"warnings"`
}

type SuggestedResponse struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

// GeneratedMessage is the model-facing shape of the situation flow.
type GeneratedMessage struct {
	SituationAnalysis   string             `json:"situationAnalysis"`
	RecommendedApproach string             `json:"recommendedApproach"`
	Messages            []SituationMessage `json:"messages"`
}

type SituationMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Tone string `json:"tone"`
}

// SituationResult is the UI-facing shape returned by /api/generate-message.
// Field names differ from GeneratedMessage on purpose.
type SituationResult struct {
	Situation string            `json:"situation"`
	Analysis  string            `json:"analysis"`
	Approach  string            `json:"approach"`
	Messages  []ResponseMessage `json:"messages"`
}

type ResponseMessage struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

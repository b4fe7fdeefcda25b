package store

import (
	"context"

	"github.com/salescoach/backend/internal/models"
)

const strategiesCollection = "strategies"

const (
	keyStrategyName        = "전략명"
	keyStrategyIcon        = "아이콘"
	keyStrategyDescription = "설명"
	keyStrategyPrompt      = "시스템프롬프트"
	keyStrategyEmotion     = "감정목표"
	keyStrategyPersona     = "페르소나"
	keyStrategyDefault     = "기본전략"
)

// Default strategies sort first. More than one record may carry the default
// flag; nothing here resolves that.
const strategiesOrder = `(properties->'기본전략'->>'checked') DESC NULLS LAST`

func decodeStrategy(rec record) models.Strategy {
	icon := rec.Props.RichText(keyStrategyIcon)
	if icon == "" {
		icon = models.DefaultStrategyIcon
	}
	return models.Strategy{
		ID:           rec.ID,
		Name:         rec.Props.Title(keyStrategyName),
		Icon:         icon,
		Description:  rec.Props.RichText(keyStrategyDescription),
		SystemPrompt: rec.Props.RichText(keyStrategyPrompt),
		EmotionGoal:  rec.Props.RichText(keyStrategyEmotion),
		Persona:      rec.Props.RichText(keyStrategyPersona),
		IsDefault:    rec.Props.Checkbox(keyStrategyDefault),
	}
}

func (s *Store) ListStrategies(ctx context.Context) ([]models.Strategy, error) {
	recs, err := s.listRecords(ctx, strategiesCollection, "", strategiesOrder)
	if err != nil {
		return nil, err
	}
	out := make([]models.Strategy, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeStrategy(rec))
	}
	return out, nil
}

func (s *Store) GetStrategy(ctx context.Context, id string) (*models.Strategy, error) {
	rec, err := s.getRecord(ctx, strategiesCollection, id)
	if err != nil {
		return nil, err
	}
	st := decodeStrategy(rec)
	return &st, nil
}

func (s *Store) CreateStrategy(ctx context.Context, st models.Strategy) (string, error) {
	return s.createRecord(ctx, strategiesCollection, Props{
		keyStrategyName:        TitleProp(st.Name),
		keyStrategyIcon:        RichTextProp(st.Icon),
		keyStrategyDescription: RichTextProp(st.Description),
		keyStrategyPrompt:      RichTextProp(st.SystemPrompt),
		keyStrategyEmotion:     RichTextProp(st.EmotionGoal),
		keyStrategyPersona:     RichTextProp(st.Persona),
		keyStrategyDefault:     CheckboxProp(st.IsDefault),
	})
}

func (s *Store) UpdateStrategy(ctx context.Context, id string, patch models.StrategyPatch) error {
	props := Props{}
	if patch.Name != nil {
		props[keyStrategyName] = TitleProp(*patch.Name)
	}
	if patch.Icon != nil {
		props[keyStrategyIcon] = RichTextProp(*patch.Icon)
	}
	if patch.Description != nil {
		props[keyStrategyDescription] = RichTextProp(*patch.Description)
	}
	if patch.SystemPrompt != nil {
		props[keyStrategyPrompt] = RichTextProp(*patch.SystemPrompt)
	}
	if patch.EmotionGoal != nil {
		props[keyStrategyEmotion] = RichTextProp(*patch.EmotionGoal)
	}
	if patch.Persona != nil {
		props[keyStrategyPersona] = RichTextProp(*patch.Persona)
	}
	if patch.IsDefault != nil {
		props[keyStrategyDefault] = CheckboxProp(*patch.IsDefault)
	}
	return s.patchRecord(ctx, strategiesCollection, id, props)
}

func (s *Store) ArchiveStrategy(ctx context.Context, id string) error {
	return s.archiveRecord(ctx, strategiesCollection, id)
}

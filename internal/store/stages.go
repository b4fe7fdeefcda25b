package store

import (
	"context"

	"github.com/salescoach/backend/internal/models"
)

const stagesCollection = "stages"

const (
	keyStageName        = "단계명"
	keyStageOrder       = "순서"
	keyStagePerception  = "목표인식"
	keyStageInstruction = "AI지시"
	keyStageQuestions   = "핵심질문"
	keyStageSignals     = "전환신호"
	keyStageWarnings    = "주의사항"
	keyStageActive      = "활성화"
)

const (
	stagesActiveFilter = `properties->'활성화'->>'checked' = 'true'`
	stagesOrder        = `COALESCE((properties->'순서'->>'number')::numeric, 0) ASC`
)

func decodeStage(rec record) models.SalesStage {
	return models.SalesStage{
		ID:                rec.ID,
		Name:              rec.Props.Title(keyStageName),
		Order:             rec.Props.Number(keyStageOrder),
		TargetPerception:  rec.Props.RichText(keyStagePerception),
		AIInstruction:     rec.Props.RichText(keyStageInstruction),
		KeyQuestions:      rec.Props.RichText(keyStageQuestions),
		TransitionSignals: rec.Props.RichText(keyStageSignals),
		Warnings:          rec.Props.RichText(keyStageWarnings),
		IsActive:          rec.Props.Checkbox(keyStageActive),
	}
}

// ListStages returns active stages in their configured sequence. Order values
// are not checked for uniqueness or gaps; the sequence is whatever the
// operator configured.
func (s *Store) ListStages(ctx context.Context) ([]models.SalesStage, error) {
	recs, err := s.listRecords(ctx, stagesCollection, stagesActiveFilter, stagesOrder)
	if err != nil {
		return nil, err
	}
	out := make([]models.SalesStage, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeStage(rec))
	}
	return out, nil
}

func (s *Store) CreateStage(ctx context.Context, st models.SalesStage) (string, error) {
	return s.createRecord(ctx, stagesCollection, Props{
		keyStageName:        TitleProp(st.Name),
		keyStageOrder:       NumberProp(st.Order),
		keyStagePerception:  RichTextProp(st.TargetPerception),
		keyStageInstruction: RichTextProp(st.AIInstruction),
		keyStageQuestions:   RichTextProp(st.KeyQuestions),
		keyStageSignals:     RichTextProp(st.TransitionSignals),
		keyStageWarnings:    RichTextProp(st.Warnings),
		keyStageActive:      CheckboxProp(st.IsActive),
	})
}

func (s *Store) UpdateStage(ctx context.Context, id string, patch models.SalesStagePatch) error {
	props := Props{}
	if patch.Name != nil {
		props[keyStageName] = TitleProp(*patch.Name)
	}
	if patch.Order != nil {
		props[keyStageOrder] = NumberProp(*patch.Order)
	}
	if patch.TargetPerception != nil {
		props[keyStagePerception] = RichTextProp(*patch.TargetPerception)
	}
	if patch.AIInstruction != nil {
		props[keyStageInstruction] = RichTextProp(*patch.AIInstruction)
	}
	if patch.KeyQuestions != nil {
		props[keyStageQuestions] = RichTextProp(*patch.KeyQuestions)
	}
	if patch.TransitionSignals != nil {
		props[keyStageSignals] = RichTextProp(*patch.TransitionSignals)
	}
	if patch.Warnings != nil {
		props[keyStageWarnings] = RichTextProp(*patch.Warnings)
	}
	if patch.IsActive != nil {
		props[keyStageActive] = CheckboxProp(*patch.IsActive)
	}
	return s.patchRecord(ctx, stagesCollection, id, props)
}

func (s *Store) ArchiveStage(ctx context.Context, id string) error {
	return s.archiveRecord(ctx, stagesCollection, id)
}

package store

import (
	"context"

	"github.com/salescoach/backend/internal/models"
)

const scriptsCollection = "scripts"

const (
	keyScriptTitle    = "제목"
	keyScriptCategory = "카테고리"
	keyScriptContent  = "내용"
	keyScriptKeywords = "키워드"
	keyScriptUseCount = "사용횟수"
	keyScriptActive   = "활성화"
)

const (
	scriptsActiveFilter = `properties->'활성화'->>'checked' = 'true'`
	scriptsOrder        = `COALESCE((properties->'사용횟수'->>'number')::numeric, 0) DESC`
)

func decodeScript(rec record) models.Script {
	return models.Script{
		ID:       rec.ID,
		Title:    rec.Props.Title(keyScriptTitle),
		Category: rec.Props.Select(keyScriptCategory, models.DefaultScriptCategory),
		Content:  rec.Props.RichText(keyScriptContent),
		Keywords: rec.Props.MultiSelect(keyScriptKeywords),
		UseCount: rec.Props.Number(keyScriptUseCount),
		IsActive: rec.Props.Checkbox(keyScriptActive),
	}
}

// ListScripts returns active scripts only, most used first.
func (s *Store) ListScripts(ctx context.Context) ([]models.Script, error) {
	recs, err := s.listRecords(ctx, scriptsCollection, scriptsActiveFilter, scriptsOrder)
	if err != nil {
		return nil, err
	}
	out := make([]models.Script, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeScript(rec))
	}
	return out, nil
}

func (s *Store) CreateScript(ctx context.Context, sc models.Script) (string, error) {
	return s.createRecord(ctx, scriptsCollection, Props{
		keyScriptTitle:    TitleProp(sc.Title),
		keyScriptCategory: SelectProp(sc.Category),
		keyScriptContent:  RichTextProp(sc.Content),
		keyScriptKeywords: MultiSelectProp(sc.Keywords),
		keyScriptUseCount: NumberProp(sc.UseCount),
		keyScriptActive:   CheckboxProp(sc.IsActive),
	})
}

func (s *Store) UpdateScript(ctx context.Context, id string, patch models.ScriptPatch) error {
	props := Props{}
	if patch.Title != nil {
		props[keyScriptTitle] = TitleProp(*patch.Title)
	}
	if patch.Category != nil {
		props[keyScriptCategory] = SelectProp(*patch.Category)
	}
	if patch.Content != nil {
		props[keyScriptContent] = RichTextProp(*patch.Content)
	}
	if patch.Keywords != nil {
		props[keyScriptKeywords] = MultiSelectProp(*patch.Keywords)
	}
	if patch.IsActive != nil {
		props[keyScriptActive] = CheckboxProp(*patch.IsActive)
	}
	return s.patchRecord(ctx, scriptsCollection, id, props)
}

func (s *Store) ArchiveScript(ctx context.Context, id string) error {
	return s.archiveRecord(ctx, scriptsCollection, id)
}

func (s *Store) IncrementScriptUseCount(ctx context.Context, id string) error {
	return s.incrementNumber(ctx, scriptsCollection, id, keyScriptUseCount)
}

package store

import (
	"context"

	"github.com/salescoach/backend/internal/models"
)

const materialsCollection = "materials"

const (
	keyMaterialTitle       = "자료명"
	keyMaterialType        = "유형"
	keyMaterialURL         = "URL"
	keyMaterialDescription = "설명"
	keyMaterialKeywords    = "키워드"
	keyMaterialUseCount    = "사용횟수"
)

const materialsOrder = `COALESCE((properties->'사용횟수'->>'number')::numeric, 0) DESC`

func decodeMaterial(rec record) models.Material {
	return models.Material{
		ID:          rec.ID,
		Title:       rec.Props.Title(keyMaterialTitle),
		Type:        rec.Props.Select(keyMaterialType, models.DefaultMaterialType),
		URL:         rec.Props.Link(keyMaterialURL),
		Description: rec.Props.RichText(keyMaterialDescription),
		Keywords:    rec.Props.MultiSelect(keyMaterialKeywords),
		UseCount:    rec.Props.Number(keyMaterialUseCount),
	}
}

func (s *Store) ListMaterials(ctx context.Context) ([]models.Material, error) {
	recs, err := s.listRecords(ctx, materialsCollection, "", materialsOrder)
	if err != nil {
		return nil, err
	}
	out := make([]models.Material, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeMaterial(rec))
	}
	return out, nil
}

func (s *Store) CreateMaterial(ctx context.Context, m models.Material) (string, error) {
	return s.createRecord(ctx, materialsCollection, Props{
		keyMaterialTitle:       TitleProp(m.Title),
		keyMaterialType:        SelectProp(m.Type),
		keyMaterialURL:         URLProp(m.URL),
		keyMaterialDescription: RichTextProp(m.Description),
		keyMaterialKeywords:    MultiSelectProp(m.Keywords),
		keyMaterialUseCount:    NumberProp(m.UseCount),
	})
}

func (s *Store) UpdateMaterial(ctx context.Context, id string, patch models.MaterialPatch) error {
	props := Props{}
	if patch.Title != nil {
		props[keyMaterialTitle] = TitleProp(*patch.Title)
	}
	if patch.Type != nil {
		props[keyMaterialType] = SelectProp(*patch.Type)
	}
	if patch.URL != nil {
		props[keyMaterialURL] = URLProp(*patch.URL)
	}
	if patch.Description != nil {
		props[keyMaterialDescription] = RichTextProp(*patch.Description)
	}
	if patch.Keywords != nil {
		props[keyMaterialKeywords] = MultiSelectProp(*patch.Keywords)
	}
	return s.patchRecord(ctx, materialsCollection, id, props)
}

func (s *Store) ArchiveMaterial(ctx context.Context, id string) error {
	return s.archiveRecord(ctx, materialsCollection, id)
}

func (s *Store) IncrementMaterialUseCount(ctx context.Context, id string) error {
	return s.incrementNumber(ctx, materialsCollection, id, keyMaterialUseCount)
}

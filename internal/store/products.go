package store

import (
	"context"

	"github.com/salescoach/backend/internal/models"
)

const productsCollection = "products"

const (
	keyProductName      = "상품명"
	keyProductShortDesc = "한줄설명"
	keyProductFullDesc  = "상세설명"
	keyProductBenefits  = "핵심혜택"
	keyProductPrice     = "가격대"
	keyProductTarget    = "타겟고객"
	keyProductActive    = "활성화"
)

const (
	productsActiveFilter = `properties->'활성화'->>'checked' = 'true'`
	productsOrder        = `(properties->'상품명'->>'text') ASC`
)

func decodeProduct(rec record) models.Product {
	return models.Product{
		ID:               rec.ID,
		Name:             rec.Props.Title(keyProductName),
		ShortDescription: rec.Props.RichText(keyProductShortDesc),
		FullDescription:  rec.Props.RichText(keyProductFullDesc),
		Benefits:         rec.Props.MultiSelect(keyProductBenefits),
		PriceRange:       rec.Props.RichText(keyProductPrice),
		TargetCustomer:   rec.Props.RichText(keyProductTarget),
		IsActive:         rec.Props.Checkbox(keyProductActive),
	}
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	recs, err := s.listRecords(ctx, productsCollection, productsActiveFilter, productsOrder)
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeProduct(rec))
	}
	return out, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	rec, err := s.getRecord(ctx, productsCollection, id)
	if err != nil {
		return nil, err
	}
	p := decodeProduct(rec)
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) (string, error) {
	return s.createRecord(ctx, productsCollection, Props{
		keyProductName:      TitleProp(p.Name),
		keyProductShortDesc: RichTextProp(p.ShortDescription),
		keyProductFullDesc:  RichTextProp(p.FullDescription),
		keyProductBenefits:  MultiSelectProp(p.Benefits),
		keyProductPrice:     RichTextProp(p.PriceRange),
		keyProductTarget:    RichTextProp(p.TargetCustomer),
		keyProductActive:    CheckboxProp(p.IsActive),
	})
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) error {
	props := Props{}
	if patch.Name != nil {
		props[keyProductName] = TitleProp(*patch.Name)
	}
	if patch.ShortDescription != nil {
		props[keyProductShortDesc] = RichTextProp(*patch.ShortDescription)
	}
	if patch.FullDescription != nil {
		props[keyProductFullDesc] = RichTextProp(*patch.FullDescription)
	}
	if patch.Benefits != nil {
		props[keyProductBenefits] = MultiSelectProp(*patch.Benefits)
	}
	if patch.PriceRange != nil {
		props[keyProductPrice] = RichTextProp(*patch.PriceRange)
	}
	if patch.TargetCustomer != nil {
		props[keyProductTarget] = RichTextProp(*patch.TargetCustomer)
	}
	if patch.IsActive != nil {
		props[keyProductActive] = CheckboxProp(*patch.IsActive)
	}
	return s.patchRecord(ctx, productsCollection, id, props)
}

func (s *Store) ArchiveProduct(ctx context.Context, id string) error {
	return s.archiveRecord(ctx, productsCollection, id)
}

package store

import (
	"context"

	"github.com/salescoach/backend/internal/models"
)

const customersCollection = "customers"

// Property keys match the hosted store's customer database schema.
const (
	keyCustomerName    = "고객명"
	keyCustomerCompany = "회사명"
	keyCustomerStatus  = "상태"
	keyCustomerNotes   = "메모"
	keyCustomerCreated = "등록일"
	keyCustomerContact = "최종연락일"
)

const customersOrder = `(properties->'최종연락일'->>'start') DESC NULLS LAST`

func decodeCustomer(rec record) models.Customer {
	return models.Customer{
		ID:          rec.ID,
		Name:        rec.Props.Title(keyCustomerName),
		Company:     rec.Props.RichText(keyCustomerCompany),
		Status:      rec.Props.Select(keyCustomerStatus, models.StatusLead),
		Notes:       rec.Props.RichText(keyCustomerNotes),
		CreatedAt:   rec.Props.Date(keyCustomerCreated),
		LastContact: rec.Props.Date(keyCustomerContact),
	}
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	recs, err := s.listRecords(ctx, customersCollection, "", customersOrder)
	if err != nil {
		return nil, err
	}
	out := make([]models.Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeCustomer(rec))
	}
	return out, nil
}

func (s *Store) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	rec, err := s.getRecord(ctx, customersCollection, id)
	if err != nil {
		return nil, err
	}
	c := decodeCustomer(rec)
	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c models.Customer) (string, error) {
	return s.createRecord(ctx, customersCollection, Props{
		keyCustomerName:    TitleProp(c.Name),
		keyCustomerCompany: RichTextProp(c.Company),
		keyCustomerStatus:  SelectProp(c.Status),
		keyCustomerNotes:   RichTextProp(c.Notes),
		keyCustomerCreated: DateProp(c.CreatedAt),
		keyCustomerContact: DateProp(c.LastContact),
	})
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) error {
	props := Props{}
	if patch.Name != nil {
		props[keyCustomerName] = TitleProp(*patch.Name)
	}
	if patch.Company != nil {
		props[keyCustomerCompany] = RichTextProp(*patch.Company)
	}
	if patch.Status != nil {
		props[keyCustomerStatus] = SelectProp(*patch.Status)
	}
	if patch.Notes != nil {
		props[keyCustomerNotes] = RichTextProp(*patch.Notes)
	}
	if patch.LastContact != nil {
		props[keyCustomerContact] = DateProp(*patch.LastContact)
	}
	return s.patchRecord(ctx, customersCollection, id, props)
}

func (s *Store) ArchiveCustomer(ctx context.Context, id string) error {
	return s.archiveRecord(ctx, customersCollection, id)
}

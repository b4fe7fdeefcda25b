package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by Get* when the id does not resolve to a
// non-archived record in the collection.
var ErrNotFound = errors.New("record not found")

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

// EnsureSchema creates the records table. Called by the setup CLI, safe to
// call repeatedly.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS records (
			id         uuid PRIMARY KEY,
			collection text NOT NULL,
			properties jsonb NOT NULL DEFAULT '{}'::jsonb,
			archived   boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_records_collection
			ON records (collection) WHERE NOT archived;
	`)
	return err
}

type record struct {
	ID    string
	Props Props
}

// listRecords fetches every non-archived record of a collection in one call.
// orderBy and filter are trusted SQL fragments owned by the entity mappers.
func (s *Store) listRecords(ctx context.Context, collection, filter, orderBy string) ([]record, error) {
	query := `SELECT id, properties FROM records WHERE collection = $1 AND NOT archived`
	if filter != "" {
		query += " AND " + filter
	}
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}

	rows, err := s.Pool.Query(ctx, query, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []record
	for rows.Next() {
		var (
			id    string
			props []byte
		)
		if err := rows.Scan(&id, &props); err != nil {
			return nil, err
		}
		rec := record{ID: id, Props: Props{}}
		if err := json.Unmarshal(props, &rec.Props); err != nil {
			return nil, fmt.Errorf("decode properties of %s: %w", id, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) getRecord(ctx context.Context, collection, id string) (record, error) {
	var props []byte
	err := s.Pool.QueryRow(ctx,
		`SELECT properties FROM records WHERE collection = $1 AND id = $2 AND NOT archived`,
		collection, id,
	).Scan(&props)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record{}, ErrNotFound
		}
		return record{}, err
	}
	rec := record{ID: id, Props: Props{}}
	if err := json.Unmarshal(props, &rec.Props); err != nil {
		return record{}, fmt.Errorf("decode properties of %s: %w", id, err)
	}
	return rec, nil
}

func (s *Store) createRecord(ctx context.Context, collection string, props Props) (string, error) {
	b, err := json.Marshal(props)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = s.Pool.Exec(ctx,
		`INSERT INTO records (id, collection, properties) VALUES ($1, $2, $3)`,
		id, collection, b,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// patchRecord merges the given properties into the stored document. Keys not
// present in the patch are left untouched; this is the conditional-write
// contract every update endpoint relies on.
func (s *Store) patchRecord(ctx context.Context, collection, id string, props Props) error {
	if len(props) == 0 {
		return nil
	}
	b, err := json.Marshal(props)
	if err != nil {
		return err
	}
	tag, err := s.Pool.Exec(ctx,
		`UPDATE records SET properties = properties || $3::jsonb
		 WHERE collection = $1 AND id = $2 AND NOT archived`,
		collection, id, b,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) archiveRecord(ctx context.Context, collection, id string) error {
	tag, err := s.Pool.Exec(ctx,
		`UPDATE records SET archived = true
		 WHERE collection = $1 AND id = $2 AND NOT archived`,
		collection, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// incrementNumber bumps a number property by one in a single UPDATE, so
// concurrent increments against the same record cannot lose updates.
func (s *Store) incrementNumber(ctx context.Context, collection, id, key string) error {
	tag, err := s.Pool.Exec(ctx,
		`UPDATE records SET properties = jsonb_set(
			properties,
			ARRAY[$3],
			jsonb_build_object(
				'type', 'number',
				'number', COALESCE((properties->$3->>'number')::numeric, 0) + 1
			)
		 )
		 WHERE collection = $1 AND id = $2 AND NOT archived`,
		collection, id, key,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectOfferColumns = `
	id, url, title, category, classified, manufacturer, model, classifier_name, created_at, classified_at
`

// scanOffer reads a row in selectOfferColumns order.
func scanOffer(s scanner) (*offer.Offer, error) {
	var o offer.Offer

	var url sql.NullString

	var category string

	if err := s.Scan(
		&o.ID, &url, &o.Title, &category, &o.Classified,
		&o.Manufacturer, &o.Model, &o.ClassifierName,
		&o.CreatedAt, &o.ClassifiedAt,
	); err != nil {
		return nil, err
	}

	o.URL = url.String
	o.Category = catalog.Category(category)

	return &o, nil
}

func (s *Store) GetOffer(ctx context.Context, id string) (*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + ` FROM offers WHERE id = $1`

	o, err := scanOffer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, offer.ErrNotFound
		}

		return nil, fmt.Errorf("getting offer: %w", err)
	}

	return o, nil
}

func (s *Store) ListOffers(ctx context.Context, filter offer.ListFilter) ([]*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + ` FROM offers WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Classified != nil {
		query += fmt.Sprintf(" AND classified = $%d", argIdx)

		args = append(args, *filter.Classified)
		argIdx++
	}

	query += " ORDER BY created_at DESC, id"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing offers: %w", err)
	}
	defer rows.Close()

	var offers []*offer.Offer

	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning offer: %w", err)
		}

		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing offers: %w", err)
	}

	return offers, nil
}

// UpsertOffers inserts offers or refreshes stored ones. A stored offer keeps its
// classification unless its title changed, and keeps its category when the feed
// has none.
func (s *Store) UpsertOffers(ctx context.Context, offers []*offer.Offer) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO offers (id, url, title, category, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			url = EXCLUDED.url,
			title = EXCLUDED.title,
			category = COALESCE(NULLIF(EXCLUDED.category, ''), offers.category),
			classified = offers.classified AND offers.title = EXCLUDED.title,
			manufacturer = CASE WHEN offers.title = EXCLUDED.title THEN offers.manufacturer END,
			model = CASE WHEN offers.title = EXCLUDED.title THEN offers.model END,
			classifier_name = CASE WHEN offers.title = EXCLUDED.title THEN offers.classifier_name END,
			classified_at = CASE WHEN offers.title = EXCLUDED.title THEN offers.classified_at END
		RETURNING created_at
	`

	for _, o := range offers {
		if err := dbTx.QueryRowContext(ctx, query, o.ID, o.URL, o.Title, string(o.Category)).Scan(&o.CreatedAt); err != nil {
			return fmt.Errorf("upserting offer %s: %w", o.ID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListUnclassified(ctx context.Context, limit int) ([]offer.UnclassifiedOffer, error) {
	query := `
		SELECT id, title, category
		FROM offers
		WHERE NOT classified
		ORDER BY created_at, id
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing unclassified offers: %w", err)
	}
	defer rows.Close()

	var offers []offer.UnclassifiedOffer

	for rows.Next() {
		var o offer.UnclassifiedOffer

		var category string

		if err := rows.Scan(&o.ID, &o.Title, &category); err != nil {
			return nil, fmt.Errorf("scanning unclassified offer: %w", err)
		}

		o.Category = catalog.Category(category)
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing unclassified offers: %w", err)
	}

	return offers, nil
}

// SaveClassification stores result and marks the offer classified. An unknown
// result is stored as NULL manufacturer and model; the offer's category is only
// overwritten when the result carries one.
func (s *Store) SaveClassification(ctx context.Context, id, classifierName string, result offer.ClassificationResult) error {
	query := `
		UPDATE offers
		SET classified = TRUE,
			manufacturer = NULLIF($1, ''),
			model = NULLIF($2, ''),
			category = COALESCE(NULLIF($3, ''), category),
			classifier_name = $4,
			classified_at = NOW()
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query,
		result.Manufacturer,
		result.Model,
		string(result.Category),
		classifierName,
		id,
	)
	if err != nil {
		return fmt.Errorf("saving classification: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving classification: %w", err)
	}

	if n == 0 {
		return offer.ErrNotFound
	}

	return nil
}

// ResetFailed marks up to limit classified offers lacking a manufacturer or model
// as unclassified. A limit of 0 or less resets all of them.
func (s *Store) ResetFailed(ctx context.Context, limit int) (int64, error) {
	query := `
		UPDATE offers
		SET classified = FALSE, classifier_name = NULL, classified_at = NULL
		WHERE id IN (
			SELECT id FROM offers
			WHERE classified AND (manufacturer IS NULL OR model IS NULL)
			ORDER BY created_at, id
			LIMIT $1
		)
	`

	// LIMIT NULL means no limit.
	var lim sql.NullInt64
	if limit > 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, query, lim)
	if err != nil {
		return 0, fmt.Errorf("resetting failed classifications: %w", err)
	}

	return res.RowsAffected()
}

func (s *Store) ResetAll(ctx context.Context) (int64, error) {
	query := `
		UPDATE offers
		SET classified = FALSE, manufacturer = NULL, model = NULL,
			classifier_name = NULL, classified_at = NULL
	`

	res, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("resetting classifications: %w", err)
	}

	return res.RowsAffected()
}

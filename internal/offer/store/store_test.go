package store_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer/store"
)

var offerColumns = []string{
	"id", "url", "title", "category", "classified",
	"manufacturer", "model", "classifier_name", "created_at", "classified_at",
}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return store.New(db), mock
}

func TestStore_GetOffer(t *testing.T) {
	s, mock := newStore(t)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	classified := created.Add(time.Hour)

	mock.ExpectQuery(`SELECT .* FROM offers WHERE id = \$1`).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(offerColumns).AddRow(
			"a", "https://example.com/a", "Stemme S6-RT", "tmg", true,
			"Stemme", "S6-RT", "rule_based", created, classified,
		))

	got, err := s.GetOffer(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, "Stemme S6-RT", got.Title)
	assert.Equal(t, catalog.CategoryTMG, got.Category)
	assert.True(t, got.Classified)
	require.NotNil(t, got.Manufacturer)
	assert.Equal(t, "Stemme", *got.Manufacturer)
	require.NotNil(t, got.ClassifiedAt)
	assert.Equal(t, classified, *got.ClassifiedAt)
}

func TestStore_GetOffer_NotFound(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(`SELECT .* FROM offers WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(offerColumns))

	_, err := s.GetOffer(context.Background(), "missing")
	assert.ErrorIs(t, err, offer.ErrNotFound)
}

func TestStore_ListOffers(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(`FROM offers WHERE TRUE AND classified = \$1 ORDER BY created_at DESC, id LIMIT \$2`).
		WithArgs(false, 20).
		WillReturnRows(sqlmock.NewRows(offerColumns).AddRow(
			"b", nil, "Zlin Z-9999 Fantasy", "", false,
			nil, nil, nil, time.Now(), nil,
		))

	got, err := s.ListOffers(context.Background(), offer.ListFilter{Classified: new(false), Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Empty(t, got[0].URL)
	assert.Nil(t, got[0].Manufacturer)
	assert.Nil(t, got[0].ClassifiedAt)
}

func TestStore_ListUnclassified(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(`SELECT id, title, category\s+FROM offers\s+WHERE NOT classified`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category"}).
			AddRow("a", "Stemme S6-RT", "tmg").
			AddRow("b", "Unknown thing", ""))

	got, err := s.ListUnclassified(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, []offer.UnclassifiedOffer{
		{ID: "a", Title: "Stemme S6-RT", Category: catalog.CategoryTMG},
		{ID: "b", Title: "Unknown thing"},
	}, got)
}

func TestStore_SaveClassification(t *testing.T) {
	type testCase struct {
		name     string
		result   offer.ClassificationResult
		affected int64
		wantArgs []driver.Value
		wantErr  error
	}

	tests := []testCase{
		{
			name:     "Match",
			result:   offer.ClassificationResult{Category: catalog.CategoryGlider, Manufacturer: "DG Flugzeugbau", Model: "DG-800B"},
			affected: 1,
			wantArgs: []driver.Value{"DG Flugzeugbau", "DG-800B", "glider", "rule_based", "a"},
		},
		{
			name:     "Unknown",
			result:   offer.Unknown(),
			affected: 1,
			wantArgs: []driver.Value{"", "", "", "rule_based", "a"},
		},
		{
			name:     "Missing offer",
			result:   offer.Unknown(),
			affected: 0,
			wantArgs: []driver.Value{"", "", "", "rule_based", "a"},
			wantErr:  offer.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			mock.ExpectExec(`UPDATE offers\s+SET classified = TRUE`).
				WithArgs(tt.wantArgs...).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := s.SaveClassification(context.Background(), "a", "rule_based", tt.result)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestStore_ResetFailed(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectExec(`UPDATE offers\s+SET classified = FALSE, classifier_name = NULL`).
		WithArgs(int64(50)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE offers\s+SET classified = FALSE, classifier_name = NULL`).
		WithArgs(nil).
		WillReturnResult(sqlmock.NewResult(0, 9))

	n, err := s.ResetFailed(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = s.ResetFailed(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
}

func TestStore_ResetAll(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectExec(`UPDATE offers\s+SET classified = FALSE, manufacturer = NULL`).
		WillReturnError(errors.New("db error"))

	_, err := s.ResetAll(context.Background())
	assert.Error(t, err)
}

func TestStore_UpsertOffers(t *testing.T) {
	s, mock := newStore(t)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO offers`).
		WithArgs("a", "https://example.com/a", "Stemme S6-RT", "tmg").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectQuery(`INSERT INTO offers`).
		WithArgs("b", "", "LS8", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectCommit()

	offers := []*offer.Offer{
		{ID: "a", URL: "https://example.com/a", Title: "Stemme S6-RT", Category: catalog.CategoryTMG},
		{ID: "b", Title: "LS8"},
	}

	require.NoError(t, s.UpsertOffers(context.Background(), offers))
	assert.Equal(t, created, offers[0].CreatedAt)
	assert.Equal(t, created, offers[1].CreatedAt)
}

func TestStore_UpsertOffers_TitleChangeClearsClassification(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)` + regexp.QuoteMeta(`category = COALESCE(NULLIF(EXCLUDED.category, ''), offers.category)`) +
		`.*` + regexp.QuoteMeta(`manufacturer = CASE WHEN offers.title = EXCLUDED.title THEN offers.manufacturer END`) +
		`.*` + regexp.QuoteMeta(`model = CASE WHEN offers.title = EXCLUDED.title THEN offers.model END`) +
		`.*` + regexp.QuoteMeta(`classifier_name = CASE WHEN offers.title = EXCLUDED.title THEN offers.classifier_name END`)).
		WithArgs("a", "", "LS8-18", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	require.NoError(t, s.UpsertOffers(context.Background(), []*offer.Offer{{ID: "a", Title: "LS8-18"}}))
}

func TestStore_UpsertOffers_RollsBack(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO offers`).
		WithArgs("a", "", "LS8", "").
		WillReturnError(errors.New("db error"))
	mock.ExpectRollback()

	err := s.UpsertOffers(context.Background(), []*offer.Offer{{ID: "a", Title: "LS8"}})
	assert.Error(t, err)
}

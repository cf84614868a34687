package offer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

func TestService_ClassifyPending(t *testing.T) {
	first := []offer.UnclassifiedOffer{
		{ID: "a", Title: "Stemme S6-RT", Category: catalog.CategoryTMG},
		{ID: "b", Title: "Zlin Z-9999 Fantasy", Category: catalog.CategoryAirplane},
	}
	second := []offer.UnclassifiedOffer{
		{ID: "c", Title: "DG 800 B", Category: catalog.CategoryGlider},
	}

	stemme := offer.ClassificationResult{Category: catalog.CategoryTMG, Manufacturer: "Stemme", Model: "S6-RT"}
	dg := offer.ClassificationResult{Category: catalog.CategoryGlider, Manufacturer: "DG Flugzeugbau", Model: "DG-800B"}

	type testCase struct {
		name      string
		setupMock func(repo *offer.MockRepository, cls *offer.MockClassifier)
		want      int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Two batches",
			setupMock: func(repo *offer.MockRepository, cls *offer.MockClassifier) {
				cls.EXPECT().Name().Return("rule_based").AnyTimes()

				gomock.InOrder(
					repo.EXPECT().ListUnclassified(gomock.Any(), 2).Return(first, nil),
					cls.EXPECT().ClassifyMany(first).Return(map[string]offer.ClassificationResult{
						"a": stemme,
						"b": offer.Unknown(),
					}),
					repo.EXPECT().SaveClassification(gomock.Any(), "a", "rule_based", stemme).Return(nil),
					repo.EXPECT().SaveClassification(gomock.Any(), "b", "rule_based", offer.Unknown()).Return(nil),
					repo.EXPECT().ListUnclassified(gomock.Any(), 2).Return(second, nil),
					cls.EXPECT().ClassifyMany(second).Return(map[string]offer.ClassificationResult{"c": dg}),
					repo.EXPECT().SaveClassification(gomock.Any(), "c", "rule_based", dg).Return(nil),
					repo.EXPECT().ListUnclassified(gomock.Any(), 2).Return(nil, nil),
				)
			},
			want: 3,
		},
		{
			name: "Nothing pending",
			setupMock: func(repo *offer.MockRepository, _ *offer.MockClassifier) {
				repo.EXPECT().ListUnclassified(gomock.Any(), 2).Return(nil, nil)
			},
			want: 0,
		},
		{
			name: "ListError",
			setupMock: func(repo *offer.MockRepository, _ *offer.MockClassifier) {
				repo.EXPECT().ListUnclassified(gomock.Any(), 2).Return(nil, errors.New("db error"))
			},
			want:    0,
			wantErr: true,
		},
		{
			name: "SaveError keeps earlier results",
			setupMock: func(repo *offer.MockRepository, cls *offer.MockClassifier) {
				cls.EXPECT().Name().Return("rule_based").AnyTimes()

				gomock.InOrder(
					repo.EXPECT().ListUnclassified(gomock.Any(), 2).Return(first, nil),
					cls.EXPECT().ClassifyMany(first).Return(map[string]offer.ClassificationResult{
						"a": stemme,
						"b": offer.Unknown(),
					}),
					repo.EXPECT().SaveClassification(gomock.Any(), "a", "rule_based", stemme).Return(nil),
					repo.EXPECT().SaveClassification(gomock.Any(), "b", "rule_based", offer.Unknown()).
						Return(errors.New("db error")),
				)
			},
			want:    1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := offer.NewMockRepository(ctrl)
			cls := offer.NewMockClassifier(ctrl)
			tt.setupMock(repo, cls)

			svc := offer.NewService(repo, cls, 2)
			got, err := svc.ClassifyPending(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ClassifyPending_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := offer.NewService(offer.NewMockRepository(ctrl), offer.NewMockClassifier(ctrl), 0)

	n, err := svc.ClassifyPending(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestService_ClassifyPending_RuleBased(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cat, err := catalog.Default()
	require.NoError(t, err)

	pending := []offer.UnclassifiedOffer{
		{ID: "1", Title: "ASK 21 D-6854", Category: catalog.CategoryGlider},
		{ID: "2", Title: "Robinson R44 Raven II", Category: catalog.CategoryHelicopter},
	}

	saved := map[string]offer.ClassificationResult{}

	repo := offer.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().ListUnclassified(gomock.Any(), offer.DefaultBatchSize).Return(pending, nil),
		repo.EXPECT().ListUnclassified(gomock.Any(), offer.DefaultBatchSize).Return(nil, nil),
	)
	repo.EXPECT().
		SaveClassification(gomock.Any(), gomock.Any(), classifier.Name, gomock.Any()).
		DoAndReturn(func(_ context.Context, id, _ string, result offer.ClassificationResult) error {
			saved[id] = result
			return nil
		}).
		Times(2)

	svc := offer.NewService(repo, classifier.New(cat), 0)

	n, err := svc.ClassifyPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "ASK 21", saved["1"].Model)
	assert.Equal(t, "Robinson", saved["2"].Manufacturer)
	assert.Equal(t, "R44", saved["2"].Model)
}

func TestService_ResetFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := offer.NewMockRepository(ctrl)
	repo.EXPECT().ResetFailed(gomock.Any(), 50).Return(int64(7), nil)
	repo.EXPECT().ResetFailed(gomock.Any(), 0).Return(int64(0), errors.New("db error"))

	svc := offer.NewService(repo, offer.NewMockClassifier(ctrl), 0)

	n, err := svc.ResetFailed(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = svc.ResetFailed(context.Background(), 0)
	assert.Error(t, err)
}

func TestService_ResetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := offer.NewMockRepository(ctrl)
	repo.EXPECT().ResetAll(gomock.Any()).Return(int64(12), nil)

	svc := offer.NewService(repo, offer.NewMockClassifier(ctrl), 0)

	n, err := svc.ResetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := offer.NewMockRepository(ctrl)
	repo.EXPECT().GetOffer(gomock.Any(), "missing").Return(nil, offer.ErrNotFound)

	svc := offer.NewService(repo, offer.NewMockClassifier(ctrl), 0)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, offer.ErrNotFound)
}

func TestService_Import(t *testing.T) {
	type testCase struct {
		name      string
		offers    []*offer.Offer
		setupMock func(m *offer.MockRepository)
		want      int
		wantErr   bool
	}

	url := "https://example.com/offers/42"

	tests := []testCase{
		{
			name: "ID derived from URL",
			offers: []*offer.Offer{
				{URL: url, Title: " Stemme S6-RT "},
				{ID: "x", Title: "LS8"},
			},
			setupMock: func(m *offer.MockRepository) {
				m.EXPECT().
					UpsertOffers(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, offers []*offer.Offer) error {
						require.Len(t, offers, 2)
						assert.Equal(t, offer.IDFromURL(url), offers[0].ID)
						assert.Equal(t, "Stemme S6-RT", offers[0].Title)
						assert.Equal(t, "x", offers[1].ID)
						return nil
					})
			},
			want: 2,
		},
		{
			name: "Invalid offers skipped",
			offers: []*offer.Offer{
				{Title: "No id and no url"},
				{ID: "y", Title: "   "},
			},
			want: 0,
		},
		{
			name: "Wanted and charter ads dropped",
			offers: []*offer.Offer{
				{ID: "w", Title: "Suche LS4 oder Discus"},
				{ID: "c", Title: "C172 for rent in Egelsbach"},
				{ID: "s", Title: "ASK 21 zu verkaufen"},
			},
			setupMock: func(m *offer.MockRepository) {
				m.EXPECT().
					UpsertOffers(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, offers []*offer.Offer) error {
						require.Len(t, offers, 1)
						assert.Equal(t, "s", offers[0].ID)
						return nil
					})
			},
			want: 1,
		},
		{
			name:   "RepoError",
			offers: []*offer.Offer{{ID: "z", Title: "DG 300"}},
			setupMock: func(m *offer.MockRepository) {
				m.EXPECT().UpsertOffers(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := offer.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := offer.NewService(repo, offer.NewMockClassifier(ctrl), 0)
			got, err := svc.Import(context.Background(), tt.offers)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

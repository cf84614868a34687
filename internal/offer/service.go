package offer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultBatchSize is the number of offers the classification job loads at a time.
const DefaultBatchSize = 10

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=offer
type Repository interface {
	GetOffer(ctx context.Context, id string) (*Offer, error)
	ListOffers(ctx context.Context, filter ListFilter) ([]*Offer, error)
	UpsertOffers(ctx context.Context, offers []*Offer) error

	ListUnclassified(ctx context.Context, limit int) ([]UnclassifiedOffer, error)
	SaveClassification(ctx context.Context, id, classifierName string, result ClassificationResult) error
	ResetFailed(ctx context.Context, limit int) (int64, error)
	ResetAll(ctx context.Context) (int64, error)
}

// Classifier assigns manufacturer and model to a batch of offers.
type Classifier interface {
	Name() string
	ClassifyMany(offers []UnclassifiedOffer) map[string]ClassificationResult
}

type Service struct {
	repo       Repository
	classifier Classifier
	batchSize  int
}

func NewService(repo Repository, classifier Classifier, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Service{
		repo:       repo,
		classifier: classifier,
		batchSize:  batchSize,
	}
}

type ListFilter struct {
	Classified *bool
	Limit      int
}

func (s *Service) Get(ctx context.Context, id string) (*Offer, error) {
	return s.repo.GetOffer(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Offer, error) {
	return s.repo.ListOffers(ctx, filter)
}

// ClassifyPending classifies unclassified offers batch by batch until none are
// left and returns how many were processed. Every batch is stored before the
// next one is loaded, so a failed run can be resumed by calling it again.
func (s *Service) ClassifyPending(ctx context.Context) (int, error) {
	processed := 0

	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		batch, err := s.repo.ListUnclassified(ctx, s.batchSize)
		if err != nil {
			return processed, fmt.Errorf("listing unclassified offers: %w", err)
		}

		if len(batch) == 0 {
			return processed, nil
		}

		results := s.classifier.ClassifyMany(batch)

		for _, o := range batch {
			result := results[o.ID]

			if err := s.repo.SaveClassification(ctx, o.ID, s.classifier.Name(), result); err != nil {
				return processed, fmt.Errorf("saving classification of offer %s: %w", o.ID, err)
			}

			processed++

			if result.IsUnknown() {
				slog.Warn("no manufacturer and model found", "id", o.ID, "title", o.Title)
				continue
			}

			slog.Info("offer classified",
				"id", o.ID,
				"title", o.Title,
				"manufacturer", result.Manufacturer,
				"model", result.Model,
			)
		}
	}
}

// ResetFailed marks up to limit classified offers without a manufacturer or
// model as unclassified again. A limit of 0 resets all of them.
func (s *Service) ResetFailed(ctx context.Context, limit int) (int64, error) {
	n, err := s.repo.ResetFailed(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("resetting failed classifications: %w", err)
	}

	return n, nil
}

// ResetAll marks every offer as unclassified.
func (s *Service) ResetAll(ctx context.Context) (int64, error) {
	n, err := s.repo.ResetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("resetting classifications: %w", err)
	}

	return n, nil
}

// Import stores offers from a feed. Offers without an id get one derived from
// their URL; offers without a title or without both id and URL are skipped, as
// are wanted and charter ads. Already stored offers keep their classification.
func (s *Service) Import(ctx context.Context, offers []*Offer) (int, error) {
	valid := make([]*Offer, 0, len(offers))

	for _, o := range offers {
		o.Title = strings.TrimSpace(o.Title)

		if o.ID == "" && o.URL != "" {
			o.ID = IDFromURL(o.URL)
		}

		if o.ID == "" || o.Title == "" {
			slog.Warn("skipping offer", "id", o.ID, "url", o.URL, "title", o.Title)
			continue
		}

		if IsWanted(o.Title) || IsCharter(o.Title) {
			slog.Debug("dropping wanted or charter offer", "id", o.ID, "title", o.Title)
			continue
		}

		valid = append(valid, o)
	}

	if len(valid) == 0 {
		return 0, nil
	}

	if err := s.repo.UpsertOffers(ctx, valid); err != nil {
		return 0, fmt.Errorf("storing offers: %w", err)
	}

	return len(valid), nil
}

package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/zvrva/flightlog/internal/domain"
	"github.com/zvrva/flightlog/internal/kafka"
	"github.com/zvrva/flightlog/internal/repository"
	"github.com/zvrva/flightlog/pkg/logger"
)

type UseCase interface {
	Import(ctx context.Context, ownerID string, r io.Reader) (*domain.ImportReport, error)
}

type Cache interface {
	InvalidateOwner(ctx context.Context, ownerID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type Service struct {
	repo     repository.FlightRepository
	cache    Cache
	producer Producer
	topic    string
	log      logger.Logger
}

type ServiceOption func(*Service)

func WithProducer(producer Producer, topic string) ServiceOption {
	return func(s *Service) {
		s.producer = producer
		s.topic = topic
	}
}

func NewService(repo repository.FlightRepository, cache Cache, log logger.Logger, opts ...ServiceOption) *Service {
	service := &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Import streams the upload row by row, in file order. Each valid row is
// persisted immediately; there is no batch transaction, so a failure partway
// through leaves the earlier rows visible. Skipped rows are collected in the
// report and never abort the batch.
func (s *Service) Import(ctx context.Context, ownerID string, r io.Reader) (*domain.ImportReport, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty file", domain.ErrBadHeader)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrBadHeader, err)
	}
	if missing := missingHeaders(dec.Header()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", domain.ErrBadHeader, strings.Join(missing, ", "))
	}

	report := &domain.ImportReport{}
	line := 1 // header
	for {
		if err := ctx.Err(); err != nil {
			s.invalidate(ownerID, report.Imported)
			return nil, err
		}

		var row csvRow
		err := dec.Decode(&row)
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowErr := domain.RowError{Row: line, Reason: err.Error()}
				report.Skipped = append(report.Skipped, rowErr)
				s.log.Warn("row skipped", "owner_id", ownerID, "row", line, "reason", rowErr.Reason)
				continue
			}
			s.invalidate(ownerID, report.Imported)
			return nil, fmt.Errorf("read csv: %w", err)
		}

		flight, rowErr := normalizeRow(row, line, ownerID)
		if rowErr != nil {
			report.Skipped = append(report.Skipped, *rowErr)
			s.log.Warn("row skipped", "owner_id", ownerID, "row", rowErr.Row, "reason", rowErr.Reason)
			continue
		}

		if err := s.repo.Create(ctx, flight); err != nil {
			s.invalidate(ownerID, report.Imported)
			return nil, fmt.Errorf("persist row %d: %w", line, err)
		}
		report.Imported++
	}

	s.invalidate(ownerID, report.Imported)
	s.publish(ctx, ownerID, report)

	s.log.Info("import finished", "owner_id", ownerID, "imported", report.Imported, "skipped", len(report.Skipped))
	return report, nil
}

func missingHeaders(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, h := range requiredHeaders {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	return missing
}

// invalidate drops the owner's cached flight list once rows were written, so
// a stats call right after the import reads the fresh collection.
func (s *Service) invalidate(ownerID string, imported int) {
	if s.cache == nil || imported == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.cache.InvalidateOwner(ctx, ownerID); err != nil {
		s.log.Warn("cache invalidation failed", "owner_id", ownerID, "error", err)
	}
}

func (s *Service) publish(ctx context.Context, ownerID string, report *domain.ImportReport) {
	if s.producer == nil {
		return
	}
	event := kafka.ImportEvent{
		OwnerID:  ownerID,
		Imported: report.Imported,
		Skipped:  len(report.Skipped),
		At:       time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.topic, ownerID, event); err != nil {
		s.log.Warn("publish import event failed", "owner_id", ownerID, "error", err)
	}
}

var _ UseCase = (*Service)(nil)

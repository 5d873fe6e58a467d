package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/zvrva/flightlog/internal/domain"
	"github.com/zvrva/flightlog/internal/repository"
)

const (
	topAirlinesLimit   = 10
	recentFlightsLimit = 5
)

type UseCase interface {
	Compute(ctx context.Context, ownerID string) (*domain.Stats, error)
}

type Cache interface {
	GetFlights(ctx context.Context, ownerID string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, ownerID string, flights []domain.Flight) error
}

type Service struct {
	repo  repository.FlightRepository
	cache Cache
	now   func() time.Time
}

type ServiceOption func(*Service)

// WithClock pins "now" for the current-year histogram. Tests use it; the
// default is time.Now.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.FlightRepository, cache Cache, opts ...ServiceOption) *Service {
	service := &Service{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Compute reads the owner's full collection once and derives every
// sub-aggregate from that single snapshot, so the counts, ranking and
// histogram are always mutually consistent. The result is never cached.
func (s *Service) Compute(ctx context.Context, ownerID string) (*domain.Stats, error) {
	flights, err := s.listFlights(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	return aggregate(flights, s.now()), nil
}

func (s *Service) listFlights(ctx context.Context, ownerID string) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, ownerID); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, ownerID, flights)
	}
	return flights, nil
}

func aggregate(flights []domain.Flight, now time.Time) *domain.Stats {
	stats := &domain.Stats{
		TotalFlights:    len(flights),
		TopAirlines:     []domain.AirlineCount{},
		RecentFlights:   []domain.Flight{},
		MonthlyActivity: []domain.MonthCount{},
	}

	airports := make(map[string]struct{})
	airlines := make(map[string]int)
	var airlineOrder []string
	for _, f := range flights {
		if f.FromCode != "" {
			airports[f.FromCode] = struct{}{}
		}
		if f.ToCode != "" {
			airports[f.ToCode] = struct{}{}
		}
		if _, seen := airlines[f.Airline]; !seen {
			airlineOrder = append(airlineOrder, f.Airline)
		}
		airlines[f.Airline]++
	}
	stats.AirportsVisited = len(airports)
	stats.AirlinesFlown = len(airlines)

	stats.TopAirlines = topAirlines(airlines, airlineOrder, len(flights))
	stats.RecentFlights = recentFlights(flights)
	stats.MonthlyActivity = monthlyActivity(flights, now.Year())

	return stats
}

// topAirlines ranks by count descending; ties keep first-encountered order,
// which a stable sort over the encounter-ordered slice guarantees.
func topAirlines(counts map[string]int, order []string, total int) []domain.AirlineCount {
	if total == 0 {
		return []domain.AirlineCount{}
	}

	top := make([]domain.AirlineCount, 0, len(order))
	for _, airline := range order {
		count := counts[airline]
		top = append(top, domain.AirlineCount{
			Airline:    airline,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > topAirlinesLimit {
		top = top[:topAirlinesLimit]
	}
	return top
}

func recentFlights(flights []domain.Flight) []domain.Flight {
	recent := make([]domain.Flight, len(flights))
	copy(recent, flights)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentFlightsLimit {
		recent = recent[:recentFlightsLimit]
	}
	return recent
}

// monthlyActivity buckets the current year's flights per calendar month,
// month-ascending. Months without flights are omitted, not emitted as zero.
func monthlyActivity(flights []domain.Flight, year int) []domain.MonthCount {
	var buckets [13]int
	for _, f := range flights {
		if f.Date.Year() == year {
			buckets[f.Date.Month()]++
		}
	}

	activity := []domain.MonthCount{}
	for m := time.January; m <= time.December; m++ {
		if buckets[m] > 0 {
			activity = append(activity, domain.MonthCount{
				Month: m.String()[:3],
				Count: buckets[m],
			})
		}
	}
	return activity
}

var _ UseCase = (*Service)(nil)

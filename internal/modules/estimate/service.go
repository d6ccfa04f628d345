// README: Estimate service joins airports, airline and calculator output into one result.
package estimate

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ecofly/internal/modules/airline"
	"ecofly/internal/modules/ecotips"
	"ecofly/internal/modules/flight"
)

// ErrHistoryDisabled is returned by Recent when no store is configured.
var ErrHistoryDisabled = errors.New("estimate history disabled")

// History is satisfied by *Store.
type History interface {
	Append(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, callerID string, limit int) ([]Entry, error)
}

type Service struct {
	cfg     flight.CalculationConfig
	history History
}

// NewService expects a validated cfg. history may be nil.
func NewService(cfg flight.CalculationConfig, history History) *Service {
	return &Service{cfg: cfg, history: history}
}

// Estimate computes metrics for req. Coordinate errors wrap flight.ErrInvalidCoordinate and
// unknown airlines return airline.ErrNotFound. A failed history write is logged only.
func (s *Service) Estimate(ctx context.Context, callerID string, req Request) (Result, error) {
	al, err := airline.Get(req.AirlineID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", err, req.AirlineID)
	}

	metrics, err := flight.ComputeMetrics(req.From.Point(), req.To.Point(), s.cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		From:       req.From,
		To:         req.To,
		Airline:    AirlineView{Airline: al, LogoURL: airline.LogoURL(al.ID, 0)},
		Metrics:    metrics,
		Display:    display(metrics),
		Tips:       ecotips.Tips(),
		Comparison: ecotips.CompareModes(metrics.DistanceKm),
	}

	if s.history != nil {
		entry := &Entry{
			CallerID:        callerID,
			FromIATA:        req.From.IATA,
			ToIATA:          req.To.IATA,
			AirlineID:       al.ID,
			DistanceKm:      metrics.DistanceKm,
			CO2EmissionsKg:  metrics.CO2EmissionsKg,
			DurationMinutes: metrics.DurationMinutes,
		}
		if err := s.history.Append(ctx, entry); err != nil {
			log.Printf("estimate: append history caller=%s err=%v", callerID, err)
		}
	}
	return res, nil
}

// Recent lists callerID's latest stored estimates. Other callers' history is never returned.
func (s *Service) Recent(ctx context.Context, callerID string, limit int) ([]Entry, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Recent(ctx, callerID, limit)
}

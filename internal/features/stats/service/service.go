package service

import (
	"context"
	"fmt"

	"loadharbour/internal/features/stats/domain"

	driversdomain "loadharbour/internal/features/drivers/domain"
	driversports "loadharbour/internal/features/drivers/ports"
	loadsports "loadharbour/internal/features/loads/ports"
	receivablesdomain "loadharbour/internal/features/receivables/domain"
	receivablesports "loadharbour/internal/features/receivables/ports"
	trailersdomain "loadharbour/internal/features/trailers/domain"
	trailersports "loadharbour/internal/features/trailers/ports"
	trucksdomain "loadharbour/internal/features/trucks/domain"
	trucksports "loadharbour/internal/features/trucks/ports"
)

// StatsService aggregates the dashboard numbers across every
// collection. Read-only; all counting happens on snapshots.
type StatsService struct {
	loads       loadsports.LoadRepository
	drivers     driversports.DriverRepository
	trucks      trucksports.TruckRepository
	trailers    trailersports.TrailerRepository
	receivables receivablesports.ReceivableRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	loads loadsports.LoadRepository,
	drivers driversports.DriverRepository,
	trucks trucksports.TruckRepository,
	trailers trailersports.TrailerRepository,
	receivables receivablesports.ReceivableRepository,
) *StatsService {
	return &StatsService{
		loads:       loads,
		drivers:     drivers,
		trucks:      trucks,
		trailers:    trailers,
		receivables: receivables,
	}
}

// Collect computes the full dashboard aggregate.
func (s *StatsService) Collect(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats

	loads, err := s.loads.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service: failed to list loads: %w", err)
	}
	stats.Loads = map[string]int{}
	for _, l := range loads {
		stats.Loads[string(l.Status)]++
	}

	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service: failed to list drivers: %w", err)
	}
	for _, d := range drivers {
		stats.Drivers.Total++
		switch d.Status {
		case driversdomain.DriverStatusActive:
			stats.Drivers.Available++
		case driversdomain.DriverStatusOnTrip:
			stats.Drivers.InUse++
		default:
			stats.Drivers.Down++
		}
	}

	trucks, err := s.trucks.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service: failed to list trucks: %w", err)
	}
	for _, tr := range trucks {
		stats.Trucks.Total++
		switch tr.Status {
		case trucksdomain.TruckStatusActive:
			stats.Trucks.Available++
		case trucksdomain.TruckStatusInUse:
			stats.Trucks.InUse++
		default:
			stats.Trucks.Down++
		}
	}

	trailers, err := s.trailers.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service: failed to list trailers: %w", err)
	}
	for _, tr := range trailers {
		stats.Trailers.Total++
		switch tr.Status {
		case trailersdomain.TrailerStatusActive:
			stats.Trailers.Available++
		default:
			stats.Trailers.Down++
		}
	}

	receivables, err := s.receivables.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service: failed to list receivables: %w", err)
	}
	stats.Revenue.ByStatus = map[string]float64{}
	for _, ar := range receivables {
		stats.Revenue.Total += ar.TotalAmount
		stats.Revenue.ByStatus[string(ar.Status.Status)] += ar.TotalAmount
		if ar.Status.Status != receivablesdomain.InvoiceStatusPaid {
			stats.Revenue.Outstanding += ar.TotalAmount
		}
	}

	return stats, nil
}

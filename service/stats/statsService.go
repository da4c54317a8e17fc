package stats

import (
	"context"
	"errors"
	"sort"
	"time"

	"carrental/model"
	rrepo "carrental/repository/rental"
	"carrental/util/dates"
)

type ErrCode string

const ErrBadPeriod ErrCode = "BAD_PERIOD"

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	ListStartedBetween(ctx context.Context, from, to time.Time) ([]rrepo.StatRow, error)
}

type Service interface {
	// Statistics aggregates the rentals that started in the given YYYY-MM
	// period: totals, revenue and per-model utilization.
	Statistics(ctx context.Context, period string) (*model.RentalStatistics, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Statistics(ctx context.Context, period string) (*model.RentalStatistics, error) {
	start, err := dates.ParseMonth(period)
	if err != nil {
		return nil, codedError{code: ErrBadPeriod}
	}
	end := start.AddDate(0, 1, 0)

	rows, err := s.r.ListStartedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := &model.RentalStatistics{
		Period:      period,
		PopularCars: []model.PopularCar{},
	}
	periodDays := dates.Span(start, end)

	type group struct {
		count      int
		rentedDays int
	}
	groups := make(map[string]*group)
	var order []string

	for _, row := range rows {
		out.TotalRentals++
		out.Revenue += row.TotalCost

		g, ok := groups[row.Model]
		if !ok {
			g = &group{}
			groups[row.Model] = g
			order = append(order, row.Model)
		}
		g.count++
		// Full stay length, even the part outside the period window; a
		// rental spanning the boundary can push utilization past 100.
		g.rentedDays += dates.Inclusive(row.StartDate, row.EndDate)
	}

	for _, m := range order {
		g := groups[m]
		var util float64
		if periodDays > 0 {
			util = float64(g.rentedDays) / float64(periodDays) * 100
		}
		out.PopularCars = append(out.PopularCars, model.PopularCar{
			Model:       m,
			RentalCount: g.count,
			Utilization: util,
		})
	}
	sort.SliceStable(out.PopularCars, func(i, j int) bool {
		return out.PopularCars[i].RentalCount > out.PopularCars[j].RentalCount
	})
	return out, nil
}

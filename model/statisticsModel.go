// model/statistics.go
package model

type PopularCar struct {
	Model       string  `json:"model"`
	RentalCount int     `json:"rentalCount"`
	Utilization float64 `json:"utilization"`
}

// RentalStatistics aggregates the rentals that started inside one calendar
// month. Utilization counts a rental's full stay even when it crosses the
// month boundary, so values above 100 are possible.
type RentalStatistics struct {
	Period       string       `json:"period"`
	TotalRentals int          `json:"totalRentals"`
	Revenue      float64      `json:"revenue"`
	PopularCars  []PopularCar `json:"popularCars"`
}

// model/car.go
package model

// Car is a rentable vehicle in the fleet. IsAvailable is informational only;
// booking conflicts are decided by rental date overlap, not this flag.
type Car struct {
	ID          int64    `json:"id"`
	Model       string   `json:"model"`
	Type        string   `json:"type"`
	DailyRate   float64  `json:"dailyRate"`
	IsAvailable bool     `json:"isAvailable"`
	Features    []string `json:"features"`
}

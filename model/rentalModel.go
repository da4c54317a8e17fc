// model/rental.go
package model

import "time"

// Rental is one booking of a car for an inclusive [StartDate,EndDate] range.
// Return fields stay nil until the car comes back; TotalCost grows by the
// late fee when the return is processed after EndDate.
type Rental struct {
	ID              int64      `json:"id"`
	CarID           int64      `json:"carId"`
	CustomerName    string     `json:"customerName"`
	DrivingLicense  string     `json:"drivingLicense"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	ReturnDate      *time.Time `json:"returnDate,omitempty"`
	ReturnFuelLevel *float64   `json:"returnFuelLevel,omitempty"`
	ReturnMileage   *int64     `json:"returnMileage,omitempty"`
	TotalCost       float64    `json:"totalCost"`
}

// Returned reports whether return processing already ran for this rental.
func (r *Rental) Returned() bool { return r.ReturnDate != nil }

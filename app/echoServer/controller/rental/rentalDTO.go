package rental

type CreateRentalReq struct {
	CarID          int64  `json:"carId" validate:"required,gt=0"`
	CustomerName   string `json:"customerName" validate:"required"`
	DrivingLicense string `json:"drivingLicense" validate:"required"`
	StartDate      string `json:"startDate" validate:"required"`
	EndDate        string `json:"endDate" validate:"required"`
}

type ReturnReq struct {
	ReturnDate       string  `json:"returnDate" validate:"required"`
	CurrentFuelLevel float64 `json:"currentFuelLevel" validate:"gte=0,lte=100"`
	Mileage          int64   `json:"mileage" validate:"gte=0"`
}

package car

type CreateCarReq struct {
	Model     string   `json:"model" validate:"required"`
	Type      string   `json:"type" validate:"required"`
	DailyRate float64  `json:"dailyRate" validate:"gte=0"`
	Features  []string `json:"features"`
}

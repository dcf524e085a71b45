package booking

type CreateBookingRequest struct {
	EquipmentID int64  `json:"equipment_id" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed active completed cancelled"`
}

// PriceBreakdown is the full quote for a date range: what the days cost, the
// flat damage deposit and the tax on top.
type PriceBreakdown struct {
	DailyRate     float64  `json:"daily_rate"`
	WeeklyRate    *float64 `json:"weekly_rate,omitempty"`
	TotalDays     int      `json:"total_days"`
	Subtotal      float64  `json:"subtotal"`
	DamageDeposit float64  `json:"damage_deposit"`
	Tax           float64  `json:"tax"`
	TotalAmount   float64  `json:"total_amount"`
}

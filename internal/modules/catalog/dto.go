package catalog

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

type CreateEquipmentRequest struct {
	CategoryID        int64    `json:"category_id" validate:"required"`
	Name              string   `json:"name" validate:"required,min=2"`
	Description       string   `json:"description"`
	Brand             string   `json:"brand"`
	Model             string   `json:"model"`
	DailyRate         float64  `json:"daily_rate" validate:"required,gt=0"`
	WeeklyRate        *float64 `json:"weekly_rate,omitempty"`
	DamageDeposit     float64  `json:"damage_deposit" validate:"gte=0"`
	QuantityAvailable int      `json:"quantity_available" validate:"gte=0"`
	PhotoURL          string   `json:"photo_url"`
}

type UpdateEquipmentRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Brand             *string  `json:"brand,omitempty"`
	Model             *string  `json:"model,omitempty"`
	DailyRate         *float64 `json:"daily_rate,omitempty"`
	WeeklyRate        *float64 `json:"weekly_rate,omitempty"`
	DamageDeposit     *float64 `json:"damage_deposit,omitempty"`
	QuantityAvailable *int     `json:"quantity_available,omitempty"`
	PhotoURL          *string  `json:"photo_url,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

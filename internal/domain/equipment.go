package domain

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Equipment struct {
	ID                int64     `json:"id"`
	CategoryID        int64     `json:"category_id"`
	OwnerID           int64     `json:"owner_id"`
	Name              string    `json:"name" validate:"required"`
	Description       string    `json:"description,omitempty"`
	Brand             string    `json:"brand,omitempty"`
	Model             string    `json:"model,omitempty"`
	DailyRate         float64   `json:"daily_rate" validate:"required,gt=0"`
	WeeklyRate        *float64  `json:"weekly_rate,omitempty"`
	DamageDeposit     float64   `json:"damage_deposit" validate:"gte=0"`
	QuantityAvailable int       `json:"quantity_available" validate:"gte=0"`
	PhotoURL          string    `json:"photo_url,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

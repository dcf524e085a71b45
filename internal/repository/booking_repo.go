package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"rentgear/internal/domain"
	"rentgear/internal/modules/booking"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	Reference     string     `gorm:"column:reference"`
	UserID        int64      `gorm:"column:user_id"`
	EquipmentID   int64      `gorm:"column:equipment_id"`
	StartDate     time.Time  `gorm:"column:start_date"`
	EndDate       time.Time  `gorm:"column:end_date"`
	Status        string     `gorm:"column:status"`
	Subtotal      float64    `gorm:"column:subtotal"`
	Tax           float64    `gorm:"column:tax"`
	DamageDeposit float64    `gorm:"column:damage_deposit"`
	TotalAmount   float64    `gorm:"column:total_amount"`
	Notes         *string    `gorm:"column:notes"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return domain.Booking{
		ID:            m.ID,
		Reference:     m.Reference,
		UserID:        m.UserID,
		EquipmentID:   m.EquipmentID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Status:        domain.BookingStatus(m.Status),
		Subtotal:      m.Subtotal,
		Tax:           m.Tax,
		DamageDeposit: m.DamageDeposit,
		TotalAmount:   m.TotalAmount,
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:            b.ID,
		Reference:     b.Reference,
		UserID:        b.UserID,
		EquipmentID:   b.EquipmentID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        string(b.Status),
		Subtotal:      b.Subtotal,
		Tax:           b.Tax,
		DamageDeposit: b.DamageDeposit,
		TotalAmount:   b.TotalAmount,
		Notes:         notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

// FindOverlapping returns bookings whose inclusive [start_date, end_date]
// interval touches [start, end] for the given equipment, skipping statuses
// that no longer hold their dates.
func (r *BookingRepository) FindOverlapping(ctx context.Context, equipmentID int64, start, end time.Time, excludeStatuses []domain.BookingStatus) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("equipment_id = ?", equipmentID).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if len(excludeStatuses) > 0 {
		q = q.Where("status NOT IN ?", excludeStatuses)
	}

	var models []bookingModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, toDomainBooking(m))
	}
	return bookings, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*b = toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, mapNotFound(tx.Error)
	}
	b := toDomainBooking(m)
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, toDomainBooking(m))
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	updates := map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	if status == domain.BookingCancelled {
		now := time.Now().UTC()
		updates["cancelled_at"] = &now
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// InTransaction runs fn against a repository bound to a serializable
// transaction. Serializable isolation makes the availability check and the
// insert inside fn behave as one atomic step even without the PostgreSQL
// exclusion constraint.
func (r *BookingRepository) InTransaction(ctx context.Context, fn func(tx booking.BookingStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

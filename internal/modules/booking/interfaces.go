package booking

import (
	"context"
	"time"

	"rentgear/internal/domain"
)

// EquipmentStore is the read-only equipment lookup the engine depends on.
// Implementations return domain.ErrNotFound when the id does not resolve.
type EquipmentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// BookingStore persists bookings. FindOverlapping returns every booking for
// the equipment whose inclusive [start_date, end_date] interval overlaps
// [start, end] and whose status is not in excludeStatuses. Calls made
// through the store passed to an InTransaction closure share one isolated
// transactional scope with the closing Create.
type BookingStore interface {
	FindOverlapping(ctx context.Context, equipmentID int64, start, end time.Time, excludeStatuses []domain.BookingStatus) ([]domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	InTransaction(ctx context.Context, fn func(tx BookingStore) error) error
}

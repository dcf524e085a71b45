package booking

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"rentgear/internal/domain"
)

// Service is the availability and pricing engine. It is a pure function of
// the data its two stores return; the only state it carries is the tax rate.
type Service struct {
	equipment EquipmentStore
	bookings  BookingStore
	taxRate   float64
}

func NewService(equipment EquipmentStore, bookings BookingStore, taxRate float64) *Service {
	return &Service{
		equipment: equipment,
		bookings:  bookings,
		taxRate:   taxRate,
	}
}

// IsAvailable reports whether the equipment can be booked for the inclusive
// date range. Inactive or out-of-stock equipment is unavailable, not an
// error; a missing equipment id is ErrNotFound.
func (s *Service) IsAvailable(ctx context.Context, equipmentID int64, start, end time.Time) (bool, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return false, err
	}

	eq, err := s.getEquipment(ctx, equipmentID)
	if err != nil {
		return false, err
	}
	if !eq.IsActive || eq.QuantityAvailable <= 0 {
		return false, nil
	}

	return s.rangeFree(ctx, s.bookings, equipmentID, start, end)
}

// CalculatePrice quotes the given range without touching booking state. Two
// calls with identical inputs and unchanged equipment yield identical output.
func (s *Service) CalculatePrice(ctx context.Context, equipmentID int64, start, end time.Time) (*PriceBreakdown, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	eq, err := s.getEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	p := s.price(eq, start, end)
	return &p, nil
}

// CreateBooking re-checks availability and prices the range at creation
// time, then inserts the booking within the same serializable transaction as
// the overlap check. An earlier IsAvailable result is never trusted.
func (s *Service) CreateBooking(ctx context.Context, userID, equipmentID int64, start, end time.Time, notes string) (*domain.Booking, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	// Resolved before any availability logic so a missing equipment id
	// surfaces as ErrNotFound, never ErrConflict.
	eq, err := s.getEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	var created *domain.Booking
	txErr := s.bookings.InTransaction(ctx, func(tx BookingStore) error {
		if !eq.IsActive || eq.QuantityAvailable <= 0 {
			return ErrConflict
		}

		free, err := s.rangeFree(ctx, tx, equipmentID, start, end)
		if err != nil {
			return err
		}
		if !free {
			return ErrConflict
		}

		p := s.price(eq, start, end)
		b := &domain.Booking{
			Reference:     uuid.NewString(),
			UserID:        userID,
			EquipmentID:   equipmentID,
			StartDate:     start,
			EndDate:       end,
			Status:        domain.BookingPending,
			Subtotal:      p.Subtotal,
			Tax:           p.Tax,
			DamageDeposit: p.DamageDeposit,
			TotalAmount:   p.TotalAmount,
			Notes:         notes,
		}
		if err := tx.Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if txErr != nil {
		// The database-level exclusion constraint is the backstop for
		// writers racing past the in-transaction check.
		if isOverlapViolation(txErr) {
			return nil, ErrConflict
		}
		return nil, txErr
	}

	return created, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:   {domain.BookingConfirmed, domain.BookingCancelled},
	domain.BookingConfirmed: {domain.BookingActive, domain.BookingCancelled},
	domain.BookingActive:    {domain.BookingCompleted},
}

// UpdateStatus applies a lifecycle transition. Transitions are driven by
// payment and administrative events outside the engine; the engine only
// guards the ordering.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, next domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	ok := false
	for _, allowed := range allowedTransitions[b.Status] {
		if next == allowed {
			ok = true
			break
		}
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, next); err != nil {
		return nil, err
	}
	return s.GetBooking(ctx, bookingID)
}

func (s *Service) getEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return eq, nil
}

func (s *Service) rangeFree(ctx context.Context, store BookingStore, equipmentID int64, start, end time.Time) (bool, error) {
	existing, err := store.FindOverlapping(ctx, equipmentID, start, end, domain.NonBlockingStatuses)
	if err != nil {
		return false, err
	}
	return len(existing) == 0, nil
}

// price implements the greedy tiered rule: bill as many whole weeks as fit,
// then the remainder at the daily rate. Not a cost-minimizing partition; it
// assumes the weekly rate does not exceed seven daily rates.
func (s *Service) price(eq *domain.Equipment, start, end time.Time) PriceBreakdown {
	days := domain.DaysInclusive(start, end)

	var subtotal float64
	if eq.WeeklyRate != nil && days >= 7 {
		weeks := days / 7
		remaining := days % 7
		subtotal = float64(weeks)*(*eq.WeeklyRate) + float64(remaining)*eq.DailyRate
	} else {
		subtotal = float64(days) * eq.DailyRate
	}
	subtotal = roundCents(subtotal)

	tax := roundCents(subtotal * s.taxRate)
	total := roundCents(subtotal + tax + eq.DamageDeposit)

	return PriceBreakdown{
		DailyRate:     eq.DailyRate,
		WeeklyRate:    eq.WeeklyRate,
		TotalDays:     days,
		Subtotal:      subtotal,
		DamageDeposit: eq.DamageDeposit,
		Tax:           tax,
		TotalAmount:   total,
	}
}

func normalizeRange(start, end time.Time) (time.Time, time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, ErrInvalidInput
	}
	start, end = domain.Day(start), domain.Day(end)
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidInput
	}
	return start, end, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 23P01 exclusion_violation, 23505 unique_violation
	if pgErr.Code != "23P01" && pgErr.Code != "23505" {
		return false
	}
	return strings.Contains(pgErr.ConstraintName, "bookings_no_overlap")
}

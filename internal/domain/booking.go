package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// NonBlockingStatuses are the statuses that release an equipment's dates.
// Every other status blocks the [StartDate, EndDate] interval.
var NonBlockingStatuses = []BookingStatus{BookingCancelled, BookingCompleted}

type Booking struct {
	ID            int64         `json:"id"`
	Reference     string        `json:"reference"`
	UserID        int64         `json:"user_id"`
	EquipmentID   int64         `json:"equipment_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        BookingStatus `json:"status"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	DamageDeposit float64       `json:"damage_deposit"`
	TotalAmount   float64       `json:"total_amount"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
}

// Blocks reports whether the booking still holds its dates.
func (b *Booking) Blocks() bool {
	for _, s := range NonBlockingStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// Overlaps reports whether two inclusive date intervals conflict. A booking
// ending on day D and another starting on day D overlap: a date stands for
// the whole day, not a point in time.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return !start1.After(end2) && !start2.After(end1)
}

// Day normalizes t to midnight UTC. Bookings reason in calendar days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts billable days between two normalized dates. Both the
// start day and the end day are billed, so a same-day rental is one day.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

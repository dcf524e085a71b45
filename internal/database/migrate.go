package database

import (
	"gorm.io/gorm"

	"rentgear/internal/domain"
)

// Migrate creates tables for all models and, on PostgreSQL, installs the
// exclusion constraint that rejects overlapping blocking bookings for the
// same equipment at the database level. The constraint holds under any
// number of concurrent writers; SQLite deployments fall back to the
// serializable check-then-insert transaction in the booking repository.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Equipment{},
		&domain.Booking{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`)
	return db.Exec(`
		ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
		EXCLUDE USING gist (
			equipment_id WITH =,
			daterange(start_date::date, end_date::date, '[]') WITH &&
		) WHERE (status NOT IN ('cancelled', 'completed'))
	`).Error
}

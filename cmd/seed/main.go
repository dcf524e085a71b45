package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rentgear/internal/database"
	"rentgear/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rentgear.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@rentgear.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	db.Create(&admin)

	customers := []domain.User{}
	for i, email := range []string{"alice@example.com", "bob@example.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Name:         fmt.Sprintf("Customer %d", i+1),
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		Email:        "owner@rentgear.io",
		PasswordHash: string(ownerHash),
		Role:         domain.RoleOwner,
		Name:         "Gear Owner",
		Phone:        "+1 555 010 0100",
	}
	db.Create(&owner)

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")
	cameras := domain.Category{Name: "Cameras", Description: "DSLR and mirrorless bodies"}
	lenses := domain.Category{Name: "Lenses", Description: "Prime and zoom lenses"}
	lighting := domain.Category{Name: "Lighting", Description: "Strobes, LEDs and modifiers"}
	db.Create(&cameras)
	db.Create(&lenses)
	db.Create(&lighting)

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")
	weekly := func(v float64) *float64 { return &v }

	items := []domain.Equipment{
		{
			CategoryID:        cameras.ID,
			OwnerID:           owner.ID,
			Name:              "Canon EOS R6 Mark II",
			Brand:             "Canon",
			Model:             "EOS R6 II",
			DailyRate:         55,
			WeeklyRate:        weekly(320),
			DamageDeposit:     300,
			QuantityAvailable: 2,
			IsActive:          true,
		},
		{
			CategoryID:        lenses.ID,
			OwnerID:           owner.ID,
			Name:              "Sony FE 24-70mm f/2.8 GM",
			Brand:             "Sony",
			Model:             "SEL2470GM",
			DailyRate:         30,
			WeeklyRate:        weekly(180),
			DamageDeposit:     200,
			QuantityAvailable: 1,
			IsActive:          true,
		},
		{
			CategoryID:        lighting.ID,
			OwnerID:           owner.ID,
			Name:              "Aputure 600d Pro",
			Brand:             "Aputure",
			Model:             "LS 600d Pro",
			DailyRate:         45,
			DamageDeposit:     250,
			QuantityAvailable: 3,
			IsActive:          true,
		},
	}
	for i := range items {
		db.Create(&items[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	start := domain.Day(time.Now().AddDate(0, 0, 7))
	end := start.AddDate(0, 0, 3)
	db.Create(&domain.Booking{
		Reference:     "seed-demo-booking",
		UserID:        customers[0].ID,
		EquipmentID:   items[0].ID,
		StartDate:     start,
		EndDate:       end,
		Status:        domain.BookingConfirmed,
		Subtotal:      220,
		Tax:           17.6,
		DamageDeposit: 300,
		TotalAmount:   537.6,
		Notes:         "Weekend shoot",
	})

	log.Println("Seed completed.")
	log.Println("Admin: admin@rentgear.io / admin123")
	log.Println("Owner: owner@rentgear.io / owner123")
	log.Println("Customers: alice@example.com, bob@example.com / customer123")
}

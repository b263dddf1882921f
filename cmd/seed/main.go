package main

import (
	"context"
	"log"
	"os"
	"time"

	"belleza/internal/database"
	"belleza/internal/domain"
	"belleza/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "belleza.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db, repository.Models()...); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM appointment_requests")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM profiles")

	ctx := context.Background()
	profiles := repository.NewProfileRepository(db)
	services := repository.NewServiceRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	requests := repository.NewRequestRepository(db)

	log.Println("Creating profiles...")
	admin := seedProfile(ctx, profiles, "Admin", "admin@belleza.local", "", domain.RoleAdmin, "admin123")
	log.Println("Admin created:", admin.Email, "/ admin123")

	staffA := seedProfile(ctx, profiles, "Ana Morales", "ana@belleza.local", "+50688880001", domain.RoleStaff, "staff123")
	staffB := seedProfile(ctx, profiles, "Lucía Herrera", "lucia@belleza.local", "+50688880002", domain.RoleStaff, "staff123")

	clientA := seedProfile(ctx, profiles, "Carla Jiménez", "carla@example.com", "+50687770001", domain.RoleClient, "client123")
	clientB := seedProfile(ctx, profiles, "María Solano", "maria@example.com", "+50687770002", domain.RoleClient, "client123")

	log.Println("Creating services...")
	corte := seedService(ctx, services, "Corte", "Haircut and styling", 12000, 45, "Hair")
	tinte := seedService(ctx, services, "Tinte", "Full colour treatment", 35000, 120, "Hair")
	manicure := seedService(ctx, services, "Manicure", "Classic manicure", 8000, 40, "Nails")

	log.Println("Creating appointments...")
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)

	confirmed := &domain.Appointment{
		ClientID:    &clientA.ID,
		StaffID:     staffA.ID,
		ServiceID:   &corte.ID,
		ScheduledAt: tomorrow.Add(10 * time.Hour),
		Status:      domain.AppointmentConfirmed,
		Payment:     domain.PaymentUnpaid,
	}
	must(appointments.Create(ctx, confirmed))

	// Walk-in client, recorded by name and phone only.
	walkIn := &domain.Appointment{
		ClientName:  "Rosa (walk-in)",
		ClientPhone: "+50687779999",
		StaffID:     staffB.ID,
		ServiceID:   &manicure.ID,
		ScheduledAt: tomorrow.Add(14 * time.Hour),
		Status:      domain.AppointmentPending,
		Payment:     domain.PaymentUnpaid,
	}
	must(appointments.Create(ctx, walkIn))

	// Staff event with no service attached.
	event := &domain.Appointment{
		StaffID:     staffA.ID,
		Title:       "Supplier visit",
		ScheduledAt: tomorrow.Add(16 * time.Hour),
		Status:      domain.AppointmentConfirmed,
		Payment:     domain.PaymentPaid,
	}
	must(appointments.Create(ctx, event))

	log.Println("Creating a pending booking request...")
	must(requests.Create(ctx, &domain.AppointmentRequest{
		ClientID:      clientB.ID,
		ServiceID:     tinte.ID,
		PreferredDate: tomorrow.Truncate(24 * time.Hour),
		PreferredTime: "14:00",
		Notes:         "Prefers afternoon slots",
		Status:        domain.RequestPending,
	}))

	log.Println("Seed finished.")
}

func seedProfile(ctx context.Context, repo *repository.ProfileRepository, name, email, phone string, role domain.Role, password string) *domain.Profile {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	p := &domain.Profile{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	must(repo.Create(ctx, p))
	return p
}

func seedService(ctx context.Context, repo *repository.ServiceRepository, name, desc string, price float64, minutes int, category string) *domain.Service {
	s := &domain.Service{
		Name:            name,
		Description:     desc,
		Price:           price,
		DurationMinutes: minutes,
		Category:        category,
		IsActive:        true,
	}
	must(repo.Create(ctx, s))
	return s
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

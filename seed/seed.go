// Package seed populates an empty store with fixed sample data for demos and
// tests.
package seed

import (
	"log"

	"github.com/itsiftikar02/Hospital-Management-System/models"
	"github.com/itsiftikar02/Hospital-Management-System/repository"
)

// SampleData inserts the sample rows through the repository. Each failure is
// logged and skipped so a re-run against an already-seeded store leaves the
// earlier rows committed instead of aborting the whole load.
func SampleData(repo *repository.Repository) {
	log.Println("Seeding database with initial data...")

	doctorID, err := repo.CreateUser("Alice Smith", "asmith@example.com", "pass123",
		models.RoleDoctor, repository.RoleAttrs{Specialization: "Cardiology"})
	if err != nil {
		log.Printf("Seed: skipping doctor: %v", err)
	}

	patientID, err := repo.CreateUser("Bob Johnson", "bjohnson@example.com", "pass123",
		models.RolePatient, repository.RoleAttrs{Address: "123 Main St", Phone: "555-1212"})
	if err != nil {
		log.Printf("Seed: skipping patient: %v", err)
	}

	if _, err := repo.CreateUser("Admin User", "admin@example.com", "adminpass",
		models.RoleAdmin, repository.RoleAttrs{}); err != nil {
		log.Printf("Seed: skipping admin: %v", err)
	}

	if patientID != 0 {
		if err := repo.CreateRegistration("2023-01-01", "Mild pollen allergy", patientID); err != nil {
			log.Printf("Seed: skipping registration: %v", err)
		}
	}

	if doctorID != 0 && patientID != 0 {
		if err := repo.CreateAppointment("2024-05-10", doctorID, patientID); err != nil {
			log.Printf("Seed: skipping appointment: %v", err)
		}
	}

	if patientID != 0 {
		if _, err := repo.CreateBilling(150.00, "2024-05-10", patientID, "Initial Consultation"); err != nil {
			log.Printf("Seed: skipping bill: %v", err)
		}
	}

	log.Println("Seed data load finished.")
}

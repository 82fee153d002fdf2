package menus

import (
	"errors"

	"github.com/itsiftikar02/Hospital-Management-System/auth"
	"github.com/itsiftikar02/Hospital-Management-System/models"
	"github.com/itsiftikar02/Hospital-Management-System/repository"
)

func (s *Shell) adminMenu(identity *auth.Identity) {
	s.p.Say("\n--- Welcome %s (Admin) ---", identity.Name)
	for {
		s.p.Say("\n[Admin Menu]")
		s.p.Say("1. Register New User")
		s.p.Say("2. Create Bill for Patient")
		s.p.Say("3. View All Patients")
		s.p.Say("4. View All Doctors")
		s.p.Say("5. Logout")
		choice := s.p.Int("Enter choice: ")
		if s.p.EOF() {
			return
		}

		switch choice {
		case 1:
			s.registerUser()
		case 2:
			s.createBill()
		case 3:
			s.listPatients()
		case 4:
			s.listDoctors()
		case 5:
			s.p.Say("Logging out...")
			return
		default:
			s.p.Say("Invalid choice. Try again.")
		}
	}
}

func (s *Shell) registerUser() {
	s.p.Say("\n-- Register New User --")
	form := registrationForm{
		Name:     s.p.Line("Enter user's name: "),
		Email:    s.p.Line("Enter user's email: "),
		Password: s.p.Line("Enter user's password (min 6 characters): "),
	}
	if err := validate.Struct(form); err != nil {
		s.p.Say("Invalid input: please provide a name, a valid email and a password of at least 6 characters.")
		return
	}

	s.p.Say("Select role: (1) Doctor, (2) Patient, (3) Admin")
	var role models.UserRole
	var attrs repository.RoleAttrs
	switch s.p.Int("Role: ") {
	case 1:
		role = models.RoleDoctor
		attrs.Specialization = s.p.Line("Enter doctor's specialization: ")
	case 2:
		role = models.RolePatient
		attrs.Address = s.p.Line("Enter patient's address: ")
		attrs.Phone = s.p.Line("Enter patient's phone: ")
	case 3:
		role = models.RoleAdmin
	default:
		s.p.Say("Invalid role choice.")
		return
	}

	userID, err := s.repo.CreateUser(form.Name, form.Email, form.Password, role, attrs)
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		s.p.Say("Error: Email '%s' already exists.", form.Email)
	case err != nil:
		s.p.Say("Could not create user: %v", err)
	default:
		s.p.Say("User '%s' (%s) created with ID: %d", form.Name, role, userID)
	}
}

func (s *Shell) createBill() {
	s.p.Say("\n-- Create Bill --")
	patientID := uint(s.p.Int("Enter Patient ID to bill: "))
	amount := s.p.Float("Enter bill amount: $")
	date := s.p.Date("Enter Bill Date (YYYY-MM-DD): ")
	details := s.p.Line("Enter bill details (e.g., 'Consultation Fee'): ")

	billID, err := s.repo.CreateBilling(amount, date, patientID, details)
	switch {
	case repository.IsNotFound(err):
		s.p.Say("Error: Patient ID %d does not exist.", patientID)
	case err != nil:
		s.p.Say("Could not create bill: %v", err)
	default:
		s.p.Say("Bill #%d created for patient ID %d for $%.2f.", billID, patientID, amount)
	}
}

func (s *Shell) listPatients() {
	s.p.Say("\n-- All Patients --")
	patients, err := s.repo.ListPatients()
	if err != nil {
		s.p.Say("Could not load patients: %v", err)
		return
	}
	if len(patients) == 0 {
		s.p.Say("No patients found.")
		return
	}
	for _, p := range patients {
		s.p.Say("ID: %d | Name: %s | Phone: %s | Address: %s", p.ID, p.Name, p.Phone, p.Address)
	}
}

func (s *Shell) listDoctors() {
	s.p.Say("\n-- All Doctors --")
	doctors, err := s.repo.ListDoctors()
	if err != nil {
		s.p.Say("Could not load doctors: %v", err)
		return
	}
	if len(doctors) == 0 {
		s.p.Say("No doctors found.")
		return
	}
	for _, d := range doctors {
		s.p.Say("ID: %d | Name: Dr. %s | Specialization: %s", d.ID, d.Name, d.Specialization)
	}
}

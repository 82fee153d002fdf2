// Package menus is the interactive shell: a thin synchronous consumer that
// collects validated input and renders repository results. Domain rules live
// entirely behind the repository boundary; this layer never touches the
// schema directly.
package menus

import (
	"errors"
	"io"
	"time"

	"github.com/itsiftikar02/Hospital-Management-System/auth"
	"github.com/itsiftikar02/Hospital-Management-System/models"
	"github.com/itsiftikar02/Hospital-Management-System/repository"

	"gorm.io/gorm"
)

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registrationForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Shell drives the role-gated menu loops over one database handle.
type Shell struct {
	p    *Prompter
	db   *gorm.DB
	repo *repository.Repository
}

func New(db *gorm.DB, repo *repository.Repository, in io.Reader, out io.Writer) *Shell {
	return &Shell{p: NewPrompter(in, out), db: db, repo: repo}
}

// Confirm asks a yes/no question.
func (s *Shell) Confirm(question string) bool {
	return s.p.YesNo(question)
}

// Loop is the main menu: login, self-service patient registration, exit.
func (s *Shell) Loop() {
	s.p.Say("\n--- Hospital Management System ---")
	for {
		s.p.Say("\n[Main Menu]")
		s.p.Say("1. Login")
		s.p.Say("2. New Patient Registration")
		s.p.Say("3. Exit")
		choice := s.p.Int("Enter choice: ")
		if s.p.EOF() {
			return
		}

		switch choice {
		case 1:
			s.login()
		case 2:
			s.registerPatient()
		case 3:
			s.p.Say("Goodbye!")
			return
		default:
			s.p.Say("Invalid choice. Try again.")
		}
	}
}

func (s *Shell) login() {
	creds := credentials{
		Email:    s.p.Line("Email: "),
		Password: s.p.Line("Password: "),
	}
	if err := validate.Struct(creds); err != nil {
		s.p.Say("Invalid email or password. Try again.")
		return
	}

	identity, err := auth.Authenticate(s.db, creds.Email, creds.Password)
	if err != nil {
		s.p.Say("Invalid email or password. Try again.")
		return
	}

	s.p.Say("\nLogin successful! Welcome, %s.", identity.Name)
	switch identity.Role {
	case models.RoleDoctor:
		s.doctorMenu(identity)
	case models.RolePatient:
		s.patientMenu(identity)
	case models.RoleAdmin:
		s.adminMenu(identity)
	}
}

// registerPatient is the self-service sign-up flow: user + patient rows plus
// the write-once registration record, dated today.
func (s *Shell) registerPatient() {
	s.p.Say("\n--- New Patient Registration ---")
	form := registrationForm{
		Name:     s.p.Line("Enter your name: "),
		Email:    s.p.Line("Enter your email: "),
		Password: s.p.Line("Create a password (min 6 characters): "),
	}
	if err := validate.Struct(form); err != nil {
		s.p.Say("Registration failed: please provide a name, a valid email and a password of at least 6 characters.")
		return
	}

	address := s.p.Line("Enter your address: ")
	phone := s.p.Line("Enter your phone number: ")
	history := s.p.Line("Enter any brief medical history (or 'None'): ")

	patientID, err := s.repo.CreateUser(form.Name, form.Email, form.Password,
		models.RolePatient, repository.RoleAttrs{Address: address, Phone: phone})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.p.Say("Error: Email '%s' already exists.", form.Email)
		} else {
			s.p.Say("Registration failed: %v", err)
		}
		return
	}

	regDate := time.Now().Format(dateLayout)
	if err := s.repo.CreateRegistration(regDate, history, patientID); err != nil {
		s.p.Say("Registration record could not be saved: %v", err)
		return
	}

	s.p.Say("Registration successful! Your Patient ID is: %d", patientID)
}

package menus

import (
	"errors"

	"github.com/itsiftikar02/Hospital-Management-System/auth"
	"github.com/itsiftikar02/Hospital-Management-System/repository"
)

func (s *Shell) patientMenu(identity *auth.Identity) {
	s.p.Say("\n--- Welcome %s (Patient) ---", identity.Name)
	for {
		s.p.Say("\n[Patient Menu]")
		s.p.Say("1. Book Appointment")
		s.p.Say("2. View My Appointments")
		s.p.Say("3. View My Medical Reports")
		s.p.Say("4. View My Bills")
		s.p.Say("5. Pay Bill")
		s.p.Say("6. Update My Profile")
		s.p.Say("7. Logout")
		choice := s.p.Int("Enter choice: ")
		if s.p.EOF() {
			return
		}

		switch choice {
		case 1:
			s.bookAppointment(identity)
		case 2:
			s.viewAppointments(identity)
		case 3:
			s.viewReports(identity)
		case 4:
			s.viewBills(identity)
		case 5:
			s.payBill(identity)
		case 6:
			s.updateProfile(identity)
		case 7:
			s.p.Say("Logging out...")
			return
		default:
			s.p.Say("Invalid choice. Try again.")
		}
	}
}

func (s *Shell) bookAppointment(identity *auth.Identity) {
	s.p.Say("\n-- Book Appointment --")
	s.p.Say("Available Doctors:")
	doctors, err := s.repo.ListDoctors()
	if err != nil {
		s.p.Say("Could not load doctors: %v", err)
		return
	}
	for _, d := range doctors {
		s.p.Say("ID: %d | Name: Dr. %s | Specialization: %s", d.ID, d.Name, d.Specialization)
	}

	doctorID := uint(s.p.Int("Enter Doctor ID: "))
	date := s.p.Date("Enter Desired Date (YYYY-MM-DD): ")

	err = s.repo.CreateAppointment(date, doctorID, identity.ID)
	switch {
	case repository.IsNotFound(err):
		s.p.Say("Error: Doctor ID %d does not exist.", doctorID)
	case err != nil:
		s.p.Say("Could not book appointment: %v", err)
	default:
		s.p.Say("Appointment added successfully.")
	}
}

func (s *Shell) viewAppointments(identity *auth.Identity) {
	s.p.Say("\n-- My Appointments --")
	appts, err := s.repo.AppointmentsForPatient(identity.ID)
	if err != nil {
		s.p.Say("Could not load appointments: %v", err)
		return
	}
	if len(appts) == 0 {
		s.p.Say("You have no appointments.")
		return
	}
	for _, a := range appts {
		s.p.Say("ID: %d | Date: %s | Doctor: Dr. %s (%s)", a.ID, a.Date, a.DoctorName, a.Specialization)
	}
}

func (s *Shell) viewReports(identity *auth.Identity) {
	s.p.Say("\n-- My Medical Reports --")
	reports, err := s.repo.ReportsForPatient(identity.ID)
	if err != nil {
		s.p.Say("Could not load reports: %v", err)
		return
	}
	if len(reports) == 0 {
		s.p.Say("You have no medical reports.")
		return
	}
	for _, r := range reports {
		s.p.Say("ID: %d | Date: %s | Doctor: Dr. %s\nDetails: %s\n---", r.ID, r.Date, r.DoctorName, r.Details)
	}
}

func (s *Shell) viewBills(identity *auth.Identity) {
	s.p.Say("\n-- My Bills --")
	bills, err := s.repo.BillsForPatient(identity.ID, false)
	if err != nil {
		s.p.Say("Could not load bills: %v", err)
		return
	}
	if len(bills) == 0 {
		s.p.Say("You have no bills on file.")
		return
	}
	for _, b := range bills {
		s.p.Say("ID: %d | Date: %s | Amount: $%.2f | Status: %s\nDetails: %s\n---", b.ID, b.Date, b.Amount, b.Status, b.Details)
	}
}

func (s *Shell) payBill(identity *auth.Identity) {
	s.p.Say("\n-- Pay Bill --")
	bills, err := s.repo.BillsForPatient(identity.ID, true)
	if err != nil {
		s.p.Say("Could not load bills: %v", err)
		return
	}
	if len(bills) == 0 {
		s.p.Say("You have no outstanding bills to pay.")
		return
	}

	s.p.Say("Your unpaid bills:")
	unpaid := make(map[uint]bool, len(bills))
	for _, b := range bills {
		unpaid[b.ID] = true
		s.p.Say("ID: %d | Date: %s | Details: %s | Amount: $%.2f", b.ID, b.Date, b.Details, b.Amount)
	}

	billID := uint(s.p.Int("Enter Bill ID to pay: "))
	if !unpaid[billID] {
		s.p.Say("Invalid Bill ID.")
		return
	}

	payDate := s.p.Date("Enter Payment Date (YYYY-MM-DD): ")
	method := s.p.Line("Enter Payment Method (e.g., Credit Card, Cash): ")

	err = s.repo.CreateReceipt(payDate, billID, method)
	switch {
	case errors.Is(err, repository.ErrAlreadyPaid):
		s.p.Say("Error: Bill #%d has already been paid.", billID)
	case repository.IsNotFound(err):
		s.p.Say("Error: Bill #%d does not exist.", billID)
	case err != nil:
		s.p.Say("Payment failed: %v", err)
	default:
		s.p.Say("Bill #%d paid successfully.", billID)
	}
}

func (s *Shell) updateProfile(identity *auth.Identity) {
	s.p.Say("\n-- Update My Profile --")
	address := s.p.Line("Enter new address: ")
	phone := s.p.Line("Enter new phone number: ")
	if err := s.repo.UpdatePatientContact(identity.ID, address, phone); err != nil {
		s.p.Say("Update failed: %v", err)
		return
	}
	s.p.Say("Patient details updated.")
}

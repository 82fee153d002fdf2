package menus

import (
	"github.com/itsiftikar02/Hospital-Management-System/auth"
	"github.com/itsiftikar02/Hospital-Management-System/repository"
)

func (s *Shell) doctorMenu(identity *auth.Identity) {
	s.p.Say("\n--- Welcome Dr. %s (Doctor) ---", identity.Name)
	for {
		s.p.Say("\n[Doctor Menu]")
		s.p.Say("1. View My Appointments")
		s.p.Say("2. Add Medical Report for Patient")
		s.p.Say("3. Logout")
		choice := s.p.Int("Enter choice: ")
		if s.p.EOF() {
			return
		}

		switch choice {
		case 1:
			s.p.Say("\n-- My Appointments --")
			appts, err := s.repo.AppointmentsForDoctor(identity.ID)
			if err != nil {
				s.p.Say("Could not load appointments: %v", err)
				continue
			}
			if len(appts) == 0 {
				s.p.Say("You have no upcoming appointments.")
				continue
			}
			for _, a := range appts {
				s.p.Say("ID: %d | Date: %s | Patient: %s (Phone: %s)", a.ID, a.Date, a.PatientName, a.PatientPhone)
			}

		case 2:
			s.p.Say("\n-- Add Medical Report --")
			patientID := uint(s.p.Int("Enter Patient ID: "))
			date := s.p.Date("Enter Report Date (YYYY-MM-DD): ")
			details := s.p.Line("Enter Report Details: ")

			err := s.repo.CreateMedicalReport(details, date, patientID, identity.ID)
			switch {
			case repository.IsNotFound(err):
				s.p.Say("Error: Patient ID %d does not exist.", patientID)
			case err != nil:
				s.p.Say("Could not add report: %v", err)
			default:
				s.p.Say("Medical report added successfully.")
			}

		case 3:
			s.p.Say("Logging out...")
			return

		default:
			s.p.Say("Invalid choice. Try again.")
		}
	}
}

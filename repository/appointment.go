package repository

import (
	"github.com/itsiftikar02/Hospital-Management-System/models"

	"gorm.io/gorm"
)

// CreateAppointment books a doctor for a patient on a date. Either id failing
// to reference an existing row yields NotFoundError and no insert. There is
// no overlap or double-booking check.
func (r *Repository) CreateAppointment(date string, doctorID, patientID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireDoctor(tx, doctorID); err != nil {
			return err
		}
		if err := requirePatient(tx, patientID); err != nil {
			return err
		}
		return tx.Create(&models.Appointment{
			Date:      date,
			DoctorID:  doctorID,
			PatientID: patientID,
		}).Error
	})
}

// DoctorAppointmentRow is an appointment as seen from the doctor's side.
type DoctorAppointmentRow struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	PatientID    uint   `json:"patient_id"`
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`
}

// AppointmentsForDoctor returns all appointments for a doctor with the
// patient's name and phone joined in.
func (r *Repository) AppointmentsForDoctor(doctorID uint) ([]DoctorAppointmentRow, error) {
	var rows []DoctorAppointmentRow
	err := r.db.Table("appointments").
		Select(`appointments.id AS id, appointments.date AS date,
			patients.user_id AS patient_id, users.name AS patient_name, patients.phone AS patient_phone`).
		Joins("JOIN patients ON patients.user_id = appointments.patient_id").
		Joins("JOIN users ON users.id = patients.user_id").
		Where("appointments.doctor_id = ?", doctorID).
		Scan(&rows).Error
	return rows, err
}

// PatientAppointmentRow is an appointment as seen from the patient's side.
type PatientAppointmentRow struct {
	ID             uint   `json:"id"`
	Date           string `json:"date"`
	DoctorID       uint   `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
}

// AppointmentsForPatient returns all appointments for a patient with the
// doctor's name and specialization joined in.
func (r *Repository) AppointmentsForPatient(patientID uint) ([]PatientAppointmentRow, error) {
	var rows []PatientAppointmentRow
	err := r.db.Table("appointments").
		Select(`appointments.id AS id, appointments.date AS date,
			doctors.user_id AS doctor_id, users.name AS doctor_name, doctors.specialization AS specialization`).
		Joins("JOIN doctors ON doctors.user_id = appointments.doctor_id").
		Joins("JOIN users ON users.id = doctors.user_id").
		Where("appointments.patient_id = ?", patientID).
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"github.com/itsiftikar02/Hospital-Management-System/models"

	"gorm.io/gorm"
)

// CreateMedicalReport files a report authored by a doctor for a patient.
// Either id failing to reference an existing row yields NotFoundError and no
// insert.
func (r *Repository) CreateMedicalReport(details, date string, patientID, doctorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePatient(tx, patientID); err != nil {
			return err
		}
		if err := requireDoctor(tx, doctorID); err != nil {
			return err
		}
		return tx.Create(&models.MedicalReport{
			Details:   details,
			Date:      date,
			PatientID: patientID,
			DoctorID:  doctorID,
		}).Error
	})
}

// ReportRow is a medical report with the authoring doctor's name joined in.
type ReportRow struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	Details    string `json:"details"`
	DoctorName string `json:"doctor_name"`
}

// ReportsForPatient returns all medical reports for a patient.
func (r *Repository) ReportsForPatient(patientID uint) ([]ReportRow, error) {
	var rows []ReportRow
	err := r.db.Table("medical_reports").
		Select(`medical_reports.id AS id, medical_reports.date AS date,
			medical_reports.details AS details, users.name AS doctor_name`).
		Joins("JOIN users ON users.id = medical_reports.doctor_id").
		Where("medical_reports.patient_id = ?", patientID).
		Scan(&rows).Error
	return rows, err
}

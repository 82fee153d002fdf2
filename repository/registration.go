package repository

import (
	"github.com/itsiftikar02/Hospital-Management-System/models"

	"gorm.io/gorm"
)

// CreateRegistration files the write-once sign-up record for a patient.
// Returns NotFoundError if the patient does not exist and
// ErrDuplicateRegistration if the patient already has one.
func (r *Repository) CreateRegistration(date, history string, patientID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePatient(tx, patientID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.PatientRegistration{}).Where("patient_id = ?", patientID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateRegistration
		}
		return tx.Create(&models.PatientRegistration{
			Date:      date,
			History:   history,
			PatientID: patientID,
		}).Error
	})
}

package models

import "time"

// MedicalReport is an append-only note written by a doctor for a patient.
type MedicalReport struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Details   string    `json:"details" gorm:"type:text;not null"`
	Date      string    `json:"date" gorm:"not null"`
	PatientID uint      `json:"patient_id" gorm:"not null;index"`
	Patient   Patient   `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:UserID"`
	DoctorID  uint      `json:"doctor_id" gorm:"not null;index"`
	Doctor    Doctor    `json:"doctor,omitempty" gorm:"foreignKey:DoctorID;references:UserID"`
	CreatedAt time.Time `json:"created_at"`
}

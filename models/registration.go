package models

import "time"

// PatientRegistration is the write-once sign-up record; the unique index on
// PatientID allows at most one per patient.
type PatientRegistration struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      string    `json:"date" gorm:"not null"`
	History   string    `json:"history" gorm:"type:text"`
	PatientID uint      `json:"patient_id" gorm:"uniqueIndex;not null"`
	Patient   Patient   `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:UserID"`
	CreatedAt time.Time `json:"created_at"`
}

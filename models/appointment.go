package models

import "time"

// Appointment links a doctor and a patient on a calendar date. Dates are
// stored as YYYY-MM-DD TEXT so they round-trip exactly; a DATE column would
// come back from the driver as a timestamp. Double-booking is permitted:
// there is no uniqueness constraint on (doctor, date) or (patient, date).
type Appointment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      string    `json:"date" gorm:"not null"`
	DoctorID  uint      `json:"doctor_id" gorm:"not null;index"`
	Doctor    Doctor    `json:"doctor,omitempty" gorm:"foreignKey:DoctorID;references:UserID"`
	PatientID uint      `json:"patient_id" gorm:"not null;index"`
	Patient   Patient   `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:UserID"`
	CreatedAt time.Time `json:"created_at"`
}

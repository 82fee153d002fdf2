package models

import "time"

// BillStatus is derived, never stored: a bill is Paid exactly when a receipt
// references it, and the transition happens at most once.
type BillStatus string

const (
	BillUnpaid BillStatus = "Unpaid"
	BillPaid   BillStatus = "Paid"
)

// Billing is an append-only charge against a patient.
type Billing struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"`
	PatientID uint      `json:"patient_id" gorm:"not null;index"`
	Patient   Patient   `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:UserID"`
	Details   string    `json:"details"`
	Receipt   *Receipt  `json:"receipt,omitempty" gorm:"foreignKey:BillID"`
	CreatedAt time.Time `json:"created_at"`
}

// Receipt records the single payment of a bill. The unique index on BillID
// enforces the at-most-one-payment invariant at the storage level.
type Receipt struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Date          string    `json:"date" gorm:"not null"`
	BillID        uint      `json:"bill_id" gorm:"uniqueIndex;not null"`
	PaymentMethod string    `json:"payment_method" gorm:"not null;default:'Cash'"`
	CreatedAt     time.Time `json:"created_at"`
}

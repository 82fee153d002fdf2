package repository

import (
	"github.com/itsiftikar02/Hospital-Management-System/models"

	"gorm.io/gorm"
)

// CreateBilling raises a bill against a patient and returns the bill id.
// The amount is accepted as given; there is no positivity check.
func (r *Repository) CreateBilling(amount float64, date string, patientID uint, details string) (uint, error) {
	var id uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePatient(tx, patientID); err != nil {
			return err
		}
		bill := models.Billing{
			Amount:    amount,
			Date:      date,
			PatientID: patientID,
			Details:   details,
		}
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}
		id = bill.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateReceipt pays a bill. A bill is payable exactly once: a second receipt
// for the same bill yields ErrAlreadyPaid. An empty payment method defaults
// to Cash.
func (r *Repository) CreateReceipt(date string, billID uint, paymentMethod string) error {
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireBill(tx, billID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.Receipt{}).Where("bill_id = ?", billID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyPaid
		}
		return tx.Create(&models.Receipt{
			Date:          date,
			BillID:        billID,
			PaymentMethod: paymentMethod,
		}).Error
	})
}

// BillRow is a bill with its payment status derived from the receipts join.
type BillRow struct {
	ID      uint              `json:"id"`
	Date    string            `json:"date"`
	Details string            `json:"details"`
	Amount  float64           `json:"amount"`
	Status  models.BillStatus `json:"status"`
}

// BillsForPatient returns a patient's bills. Status is Paid exactly when a
// receipt exists for the bill; with unpaidOnly set, paid bills are filtered
// out entirely.
func (r *Repository) BillsForPatient(patientID uint, unpaidOnly bool) ([]BillRow, error) {
	query := r.db.Table("billings").
		Select(`billings.id AS id, billings.date AS date, billings.details AS details,
			billings.amount AS amount,
			CASE WHEN receipts.id IS NOT NULL THEN 'Paid' ELSE 'Unpaid' END AS status`).
		Joins("LEFT JOIN receipts ON receipts.bill_id = billings.id").
		Where("billings.patient_id = ?", patientID)
	if unpaidOnly {
		query = query.Where("receipts.id IS NULL")
	}

	var rows []BillRow
	err := query.Scan(&rows).Error
	return rows, err
}

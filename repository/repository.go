// Package repository is the data-access core: every mutation runs as a single
// transaction and enforces the schema's invariants (referential integrity,
// email uniqueness, at-most-one-payment) at the boundary.
package repository

import (
	"github.com/itsiftikar02/Hospital-Management-System/models"

	"gorm.io/gorm"
)

// Repository wraps an injected database handle. Callers own the handle's
// lifecycle; the repository never opens or closes connections itself.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository over an already-migrated database.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// requireRow surfaces a missing foreign reference as NotFoundError rather
// than a raw constraint failure from the storage engine.
func requireRow(tx *gorm.DB, model interface{}, entity, column string, id uint) error {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

func requireDoctor(tx *gorm.DB, id uint) error {
	return requireRow(tx, &models.Doctor{}, "doctor", "user_id", id)
}

func requirePatient(tx *gorm.DB, id uint) error {
	return requireRow(tx, &models.Patient{}, "patient", "user_id", id)
}

func requireBill(tx *gorm.DB, id uint) error {
	return requireRow(tx, &models.Billing{}, "bill", "id", id)
}

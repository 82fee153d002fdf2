package repository

import (
	"fmt"

	"github.com/itsiftikar02/Hospital-Management-System/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Defaults applied when role attributes are missing.
const (
	DefaultSpecialization = "General"
	DefaultContact        = "N/A"
)

// RoleAttrs carries the role-specific attributes for CreateUser. Fields that
// do not apply to the chosen role are ignored; empty applicable fields fall
// back to the documented defaults.
type RoleAttrs struct {
	Specialization string // doctor
	Address        string // patient
	Phone          string // patient
}

// CreateUser inserts the User row and its role-extension row with the same
// generated id, atomically. The password is stored as a bcrypt hash.
// Returns ErrDuplicateEmail if the email is already registered; in that case
// nothing is persisted, not even a partial User row.
func (r *Repository) CreateUser(name, email, password string, role models.UserRole, attrs RoleAttrs) (uint, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	var id uint
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}

		user := models.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		switch role {
		case models.RoleDoctor:
			spec := attrs.Specialization
			if spec == "" {
				spec = DefaultSpecialization
			}
			if err := tx.Create(&models.Doctor{UserID: user.ID, Specialization: spec}).Error; err != nil {
				return err
			}
		case models.RolePatient:
			addr, phone := attrs.Address, attrs.Phone
			if addr == "" {
				addr = DefaultContact
			}
			if phone == "" {
				phone = DefaultContact
			}
			if err := tx.Create(&models.Patient{UserID: user.ID, Address: addr, Phone: phone}).Error; err != nil {
				return err
			}
		case models.RoleAdmin:
			if err := tx.Create(&models.Administrator{UserID: user.ID}).Error; err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid role %q", role)
		}

		id = user.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdatePatientContact overwrites a patient's address and phone. A patient id
// with no row is not an error: zero rows are affected and the call succeeds.
func (r *Repository) UpdatePatientContact(patientID uint, address, phone string) error {
	return r.db.Model(&models.Patient{}).
		Where("user_id = ?", patientID).
		Updates(map[string]interface{}{"address": address, "phone": phone}).Error
}

// DoctorRow is a doctor joined with its user identity.
type DoctorRow struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// ListDoctors returns all doctors. Order is unspecified.
func (r *Repository) ListDoctors() ([]DoctorRow, error) {
	var rows []DoctorRow
	err := r.db.Table("users").
		Select("users.id AS id, users.name AS name, doctors.specialization AS specialization").
		Joins("JOIN doctors ON doctors.user_id = users.id").
		Scan(&rows).Error
	return rows, err
}

// PatientRow is a patient joined with its user identity.
type PatientRow struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ListPatients returns all patients. Order is unspecified.
func (r *Repository) ListPatients() ([]PatientRow, error) {
	var rows []PatientRow
	err := r.db.Table("users").
		Select("users.id AS id, users.name AS name, patients.phone AS phone, patients.address AS address").
		Joins("JOIN patients ON patients.user_id = users.id").
		Scan(&rows).Error
	return rows, err
}

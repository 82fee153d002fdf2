// Package auth maps credentials to a role-tagged identity for the menu shell.
package auth

import (
	"errors"

	"github.com/itsiftikar02/Hospital-Management-System/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is the single failure for both an unknown email and a
// wrong password: callers must not be able to tell which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Identity is the logged-in user handed to the menu shell.
type Identity struct {
	ID   uint
	Name string
	Role models.UserRole
}

// dummyHash is compared against when the email is unknown, so both failure
// paths do comparable work. It must never be nil or the dummy compare would
// short-circuit.
var dummyHash []byte

func init() {
	h, err := bcrypt.GenerateFromPassword([]byte("hospital-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic("auth: generating dummy hash: " + err.Error())
	}
	dummyHash = h
}

// Authenticate looks up the user by email and verifies the password against
// the stored bcrypt hash.
func Authenticate(db *gorm.DB, email, password string) (*Identity, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

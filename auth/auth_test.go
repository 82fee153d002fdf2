package auth

import (
	"path/filepath"
	"testing"

	"github.com/itsiftikar02/Hospital-Management-System/config"
	"github.com/itsiftikar02/Hospital-Management-System/models"
	"github.com/itsiftikar02/Hospital-Management-System/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open(filepath.Join(t.TempDir(), "hospital.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestAuthenticateSuccess(t *testing.T) {
	db := newTestDB(t)
	repo := repository.New(db)

	id, err := repo.CreateUser("Alice Smith", "asmith@example.com", "pass123",
		models.RoleDoctor, repository.RoleAttrs{Specialization: "Cardiology"})
	require.NoError(t, err)

	identity, err := Authenticate(db, "asmith@example.com", "pass123")
	require.NoError(t, err)
	require.Equal(t, id, identity.ID)
	require.Equal(t, "Alice Smith", identity.Name)
	require.Equal(t, models.RoleDoctor, identity.Role)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	repo := repository.New(db)

	_, err := repo.CreateUser("Alice Smith", "asmith@example.com", "pass123",
		models.RoleDoctor, repository.RoleAttrs{})
	require.NoError(t, err)

	// wrong password and unknown email must yield the same failure
	_, wrongPass := Authenticate(db, "asmith@example.com", "wrong")
	require.ErrorIs(t, wrongPass, ErrInvalidCredentials)

	_, unknownEmail := Authenticate(db, "nobody@example.com", "pass123")
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)

	require.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestDummyHashIsUsableForCompares(t *testing.T) {
	require.NotEmpty(t, dummyHash)
	// a parseable bcrypt hash: compare succeeds for the right input and
	// merely mismatches, rather than erroring on format, for a wrong one
	require.NoError(t, bcrypt.CompareHashAndPassword(dummyHash, []byte("hospital-dummy-password")))
	require.ErrorIs(t, bcrypt.CompareHashAndPassword(dummyHash, []byte("wrong")),
		bcrypt.ErrMismatchedHashAndPassword)
}

func TestPasswordsAreNotStoredInPlaintext(t *testing.T) {
	db := newTestDB(t)
	repo := repository.New(db)

	_, err := repo.CreateUser("Alice Smith", "asmith@example.com", "pass123",
		models.RoleDoctor, repository.RoleAttrs{})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "asmith@example.com").First(&user).Error)
	require.NotEqual(t, "pass123", user.PasswordHash)
	require.NotEmpty(t, user.PasswordHash)
}

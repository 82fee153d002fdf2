package seed

import (
	"path/filepath"
	"testing"

	"github.com/itsiftikar02/Hospital-Management-System/config"
	"github.com/itsiftikar02/Hospital-Management-System/models"
	"github.com/itsiftikar02/Hospital-Management-System/repository"

	"github.com/stretchr/testify/require"
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

func TestSampleDataPopulatesEmptyStore(t *testing.T) {
	db := newTestDB(t)
	SampleData(repository.New(db))

	assertCounts(t, db)
}

func TestSampleDataIsSafeToRerun(t *testing.T) {
	db := newTestDB(t)
	repo := repository.New(db)

	SampleData(repo)
	// second run hits duplicate emails, logs, and leaves the first run's
	// rows committed without adding anything
	SampleData(repo)

	assertCounts(t, db)
}

func assertCounts(t *testing.T, db *gorm.DB) {
	t.Helper()
	for model, want := range map[interface{}]int64{
		&models.User{}:                3,
		&models.Doctor{}:              1,
		&models.Patient{}:             1,
		&models.Administrator{}:       1,
		&models.PatientRegistration{}: 1,
		&models.Appointment{}:         1,
		&models.Billing{}:             1,
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		require.Equal(t, want, n)
	}
}

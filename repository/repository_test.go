package repository

import (
	"path/filepath"
	"testing"

	"github.com/itsiftikar02/Hospital-Management-System/config"
	"github.com/itsiftikar02/Hospital-Management-System/models"

	"github.com/stretchr/testify/require"
)

// newTestRepo opens a fresh store in a temp dir so every test starts empty.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := config.Open(filepath.Join(t.TempDir(), "hospital.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

func createDoctor(t *testing.T, r *Repository, name, email string) uint {
	t.Helper()
	id, err := r.CreateUser(name, email, "pass123", models.RoleDoctor,
		RoleAttrs{Specialization: "Cardiology"})
	require.NoError(t, err)
	return id
}

func createPatient(t *testing.T, r *Repository, name, email string) uint {
	t.Helper()
	id, err := r.CreateUser(name, email, "pass123", models.RolePatient,
		RoleAttrs{Address: "123 Main St", Phone: "555-1212"})
	require.NoError(t, err)
	return id
}

func count(t *testing.T, r *Repository, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, r.db.Model(model).Count(&n).Error)
	return n
}

func TestCreateUserCreatesRoleExtension(t *testing.T) {
	repo := newTestRepo(t)

	docID := createDoctor(t, repo, "Alice Smith", "asmith@example.com")
	patID := createPatient(t, repo, "Bob Johnson", "bjohnson@example.com")
	admID, err := repo.CreateUser("Admin User", "admin@example.com", "adminpass",
		models.RoleAdmin, RoleAttrs{})
	require.NoError(t, err)

	var doc models.Doctor
	require.NoError(t, repo.db.First(&doc, "user_id = ?", docID).Error)
	require.Equal(t, "Cardiology", doc.Specialization)

	var pat models.Patient
	require.NoError(t, repo.db.First(&pat, "user_id = ?", patID).Error)
	require.Equal(t, "123 Main St", pat.Address)
	require.Equal(t, "555-1212", pat.Phone)

	var adm models.Administrator
	require.NoError(t, repo.db.First(&adm, "user_id = ?", admID).Error)

	// every extension row shares its id with a user of the matching role
	for id, role := range map[uint]models.UserRole{
		docID: models.RoleDoctor,
		patID: models.RolePatient,
		admID: models.RoleAdmin,
	} {
		var user models.User
		require.NoError(t, repo.db.First(&user, id).Error)
		require.Equal(t, role, user.Role)
	}
}

func TestCreateUserAppliesDefaults(t *testing.T) {
	repo := newTestRepo(t)

	docID, err := repo.CreateUser("Dana", "dana@example.com", "pass123",
		models.RoleDoctor, RoleAttrs{})
	require.NoError(t, err)
	patID, err := repo.CreateUser("Paul", "paul@example.com", "pass123",
		models.RolePatient, RoleAttrs{})
	require.NoError(t, err)

	var doc models.Doctor
	require.NoError(t, repo.db.First(&doc, "user_id = ?", docID).Error)
	require.Equal(t, DefaultSpecialization, doc.Specialization)

	var pat models.Patient
	require.NoError(t, repo.db.First(&pat, "user_id = ?", patID).Error)
	require.Equal(t, DefaultContact, pat.Address)
	require.Equal(t, DefaultContact, pat.Phone)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)

	createDoctor(t, repo, "Alice Smith", "asmith@example.com")
	_, err := repo.CreateUser("Alice Clone", "asmith@example.com", "other",
		models.RoleDoctor, RoleAttrs{})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	var n int64
	require.NoError(t, repo.db.Model(&models.User{}).Where("email = ?", "asmith@example.com").Count(&n).Error)
	require.EqualValues(t, 1, n)
	require.EqualValues(t, 1, count(t, repo, &models.Doctor{}))
}

func TestCreateUserInvalidRoleRollsBack(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.CreateUser("Nina", "nina@example.com", "pass123",
		models.UserRole("nurse"), RoleAttrs{})
	require.Error(t, err)

	// no orphaned user row survives the failed extension insert
	require.EqualValues(t, 0, count(t, repo, &models.User{}))
}

func TestUpdatePatientContact(t *testing.T) {
	repo := newTestRepo(t)
	patID := createPatient(t, repo, "Bob Johnson", "bjohnson@example.com")

	require.NoError(t, repo.UpdatePatientContact(patID, "456 Oak Ave", "555-9999"))

	var pat models.Patient
	require.NoError(t, repo.db.First(&pat, "user_id = ?", patID).Error)
	require.Equal(t, "456 Oak Ave", pat.Address)
	require.Equal(t, "555-9999", pat.Phone)
}

func TestUpdatePatientContactMissingPatientIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	// zero rows affected is documented as success, not an error
	require.NoError(t, repo.UpdatePatientContact(9999, "nowhere", "none"))
}

func TestDatesRoundTripAsEnteredStrings(t *testing.T) {
	repo := newTestRepo(t)
	docID := createDoctor(t, repo, "Alice Smith", "asmith@example.com")
	patID := createPatient(t, repo, "Bob Johnson", "bjohnson@example.com")

	// stored dates must come back byte-identical, not as timestamps
	const day = "2024-05-10"
	require.NoError(t, repo.CreateAppointment(day, docID, patID))
	require.NoError(t, repo.CreateMedicalReport("Checkup fine", day, patID, docID))
	billID, err := repo.CreateBilling(150.00, day, patID, "Consult")
	require.NoError(t, err)
	require.NoError(t, repo.CreateReceipt(day, billID, "Cash"))
	require.NoError(t, repo.CreateRegistration(day, "None", patID))

	appts, err := repo.AppointmentsForDoctor(docID)
	require.NoError(t, err)
	require.Equal(t, day, appts[0].Date)

	reports, err := repo.ReportsForPatient(patID)
	require.NoError(t, err)
	require.Equal(t, day, reports[0].Date)

	bills, err := repo.BillsForPatient(patID, false)
	require.NoError(t, err)
	require.Equal(t, day, bills[0].Date)

	var receipt models.Receipt
	require.NoError(t, repo.db.First(&receipt, "bill_id = ?", billID).Error)
	require.Equal(t, day, receipt.Date)

	var reg models.PatientRegistration
	require.NoError(t, repo.db.First(&reg, "patient_id = ?", patID).Error)
	require.Equal(t, day, reg.Date)
}

func TestListDoctorsAndPatients(t *testing.T) {
	repo := newTestRepo(t)
	createDoctor(t, repo, "Alice Smith", "asmith@example.com")
	createDoctor(t, repo, "Carol White", "cwhite@example.com")
	createPatient(t, repo, "Bob Johnson", "bjohnson@example.com")

	doctors, err := repo.ListDoctors()
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	names := []string{doctors[0].Name, doctors[1].Name}
	require.ElementsMatch(t, []string{"Alice Smith", "Carol White"}, names)
	require.Equal(t, "Cardiology", doctors[0].Specialization)

	patients, err := repo.ListPatients()
	require.NoError(t, err)
	require.Len(t, patients, 1)
	require.Equal(t, "Bob Johnson", patients[0].Name)
	require.Equal(t, "555-1212", patients[0].Phone)
	require.Equal(t, "123 Main St", patients[0].Address)
}

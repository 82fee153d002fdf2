package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleDoctor  UserRole = "doctor"
	RolePatient UserRole = "patient"
	RoleAdmin   UserRole = "admin"
)

// User is the central identity record; every role-specific table shares its id.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// Doctor extends a User with role=doctor. UserID is both primary key and
// foreign key: a doctor row can never outlive or precede its user.
type Doctor struct {
	UserID         uint   `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	User           User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Specialization string `json:"specialization" gorm:"not null;default:'General'"`
}

// Patient extends a User with role=patient. Address and phone are the only
// mutable fields in the whole schema.
type Patient struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Address   string    `json:"address" gorm:"not null;default:'N/A'"`
	Phone     string    `json:"phone" gorm:"not null;default:'N/A'"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Administrator extends a User with role=admin; no extra attributes.
type Administrator struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	User   User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

package models

import "time"

// Gender of a registered user
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// User is a registered account. Admin accounts are only created by seeding.
type User struct {
	BaseModel
	FirstName      string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Gender         Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	BirthDate      time.Time `gorm:"type:date;not null" json:"birth_date"`
	Phone          string    `gorm:"type:varchar(50);not null" json:"phone"`
	Email          string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"type:varchar(60);not null" json:"-"` // bcrypt hash, never exposed
	IsAdmin        bool      `gorm:"not null;default:false" json:"is_admin"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

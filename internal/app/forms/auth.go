package forms

import (
	"strings"
	"time"

	"pharmacy-admin-service/internal/domain/models"
	"pharmacy-admin-service/internal/domain/services"
)

// DateLayout is the wire format of birth dates
const DateLayout = "2006-01-02"

// RegisterForm is the account registration form
type RegisterForm struct {
	FirstName       string `form:"first_name" json:"first_name" binding:"required,notblank,min=3,max=20"`
	LastName        string `form:"last_name" json:"last_name" binding:"required,notblank,min=3,max=20"`
	Gender          string `form:"gender" json:"gender" binding:"required,oneof=Male Female"`
	BirthDate       string `form:"birth_date" json:"birth_date" binding:"required,datetime=2006-01-02"`
	Phone           string `form:"phone" json:"phone" binding:"required,len=10"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"-" binding:"required,min=8,max=20"`
	ConfirmPassword string `form:"confirm_password" json:"-" binding:"required,eqfield=Password"`
}

// Input converts the validated form for the user service
func (f *RegisterForm) Input() (services.RegisterInput, error) {
	birthDate, err := time.Parse(DateLayout, f.BirthDate)
	if err != nil {
		return services.RegisterInput{}, err
	}
	return services.RegisterInput{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Gender:    models.Gender(f.Gender),
		BirthDate: birthDate,
		Phone:     f.Phone,
		Email:     strings.TrimSpace(f.Email),
		Password:  f.Password,
	}, nil
}

// LoginForm is the login form. Credential errors are reported on the whole form.
type LoginForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"-" binding:"required"`
}

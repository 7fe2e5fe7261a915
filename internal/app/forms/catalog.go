package forms

import "strconv"

// CityForm adds or renames a city
type CityForm struct {
	Name string `form:"name" json:"name" binding:"required,notblank,min=3,max=20"`
}

// AreaForm adds or edits an area
type AreaForm struct {
	Name   string `form:"name" json:"name" binding:"required,notblank,min=3,max=20"`
	CityID string `form:"city_id" json:"city_id" binding:"required,number"`
}

// City returns the selected city id
func (f *AreaForm) City() (uint, error) {
	id, err := strconv.ParseUint(f.CityID, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Field describes one input of a rendered form
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Choices  []string `json:"choices,omitempty"`
}

// Descriptor tells a client how to render and submit a form
type Descriptor struct {
	Action string  `json:"action"`
	Method string  `json:"method"`
	Submit string  `json:"submit"`
	Fields []Field `json:"fields"`
}

// RegisterDescriptor describes the registration form
func RegisterDescriptor(action string) Descriptor {
	return Descriptor{
		Action: action,
		Method: "POST",
		Submit: "Register your account",
		Fields: []Field{
			{Name: "first_name", Label: "First Name", Type: "text", Required: true, Min: 3, Max: 20},
			{Name: "last_name", Label: "Last Name", Type: "text", Required: true, Min: 3, Max: 20},
			{Name: "gender", Label: "Gender", Type: "radio", Required: true, Choices: []string{"Male", "Female"}},
			{Name: "birth_date", Label: "Birth Date", Type: "date", Required: true},
			{Name: "phone", Label: "Phone Number", Type: "text", Required: true, Min: 10, Max: 10},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true, Min: 8, Max: 20},
			{Name: "confirm_password", Label: "Confirm Password", Type: "password", Required: true},
		},
	}
}

// LoginDescriptor describes the login form
func LoginDescriptor(action string) Descriptor {
	return Descriptor{
		Action: action,
		Method: "POST",
		Submit: "Login",
		Fields: []Field{
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
	}
}

// CityDescriptor describes an add or edit city form
func CityDescriptor(action, submit string) Descriptor {
	return Descriptor{
		Action: action,
		Method: "POST",
		Submit: submit,
		Fields: []Field{
			{Name: "name", Label: "City", Type: "text", Required: true, Min: 3, Max: 20},
		},
	}
}

// AreaDescriptor describes an add or edit area form
func AreaDescriptor(action, submit string) Descriptor {
	return Descriptor{
		Action: action,
		Method: "POST",
		Submit: submit,
		Fields: []Field{
			{Name: "name", Label: "Area", Type: "text", Required: true, Min: 3, Max: 20},
			{Name: "city_id", Label: "City", Type: "select", Required: true},
		},
	}
}

// DeleteDescriptor describes a confirmation-only delete form
func DeleteDescriptor(action string) Descriptor {
	return Descriptor{Action: action, Method: "POST", Submit: "Delete", Fields: []Field{}}
}

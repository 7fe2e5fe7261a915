// Package forms declares the input of every page form and turns validator
// failures into per-field messages.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FormErrorKey collects errors that belong to the whole form
const FormErrorKey = "form"

// Errors maps a field name to its messages
type Errors map[string][]string

// Add appends a message for field
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Any reports whether at least one error was recorded
func (e Errors) Any() bool {
	return len(e) > 0
}

// First returns the first message of field, or ""
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// messages that replace the generic text for one field and rule
var fieldMessages = map[string]string{
	"confirm_password.eqfield": "Passwords must match",
	"city_id.required":         "Please choose a city.",
	"city_id.number":           "Please choose a city.",
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(formTagName)
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

// reports fields by their form name instead of the Go field name
func formTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Bind parses the request into form and returns the validation errors, or nil
func Bind(c *gin.Context, form interface{}) Errors {
	err := c.ShouldBind(form)
	if err == nil {
		return nil
	}
	return Translate(err)
}

// Translate converts a binding error into field messages
func Translate(err error) Errors {
	errs := Errors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add(FormErrorKey, "Invalid form submission.")
		return errs
	}

	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "len":
		return fmt.Sprintf("Field must be exactly %s characters long.", fe.Param())
	case "email":
		return "Invalid email address."
	case "oneof":
		return "Not a valid choice."
	case "datetime":
		return "Not a valid date value."
	case "eqfield":
		return fmt.Sprintf("Field must be equal to %s.", fe.Param())
	case "number":
		return "Not a valid number."
	default:
		return "Invalid value."
	}
}

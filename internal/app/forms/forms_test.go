package forms

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postContext(values url.Values) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func validRegistration() url.Values {
	return url.Values{
		"first_name":       {"Alice"},
		"last_name":        {"Liddell"},
		"gender":           {"Female"},
		"birth_date":       {"1990-05-04"},
		"phone":            {"0123456789"},
		"email":            {"alice@example.com"},
		"password":         {"abcdefgh"},
		"confirm_password": {"abcdefgh"},
	}
}

func TestRegisterFormValid(t *testing.T) {
	var form RegisterForm
	errs := Bind(postContext(validRegistration()), &form)
	require.Nil(t, errs)

	input, err := form.Input()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", input.Email)
	assert.Equal(t, 1990, input.BirthDate.Year())
}

func TestRegisterFormErrors(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{name: "password mismatch", field: "confirm_password", value: "abcdefgX", message: "Passwords must match"},
		{name: "short first name", field: "first_name", value: "Al", message: "Field must be at least 3 characters long."},
		{name: "long last name", field: "last_name", value: strings.Repeat("z", 21), message: "Field cannot be longer than 20 characters."},
		{name: "bad gender", field: "gender", value: "Other", message: "Not a valid choice."},
		{name: "bad date", field: "birth_date", value: "04/05/1990", message: "Not a valid date value."},
		{name: "short phone", field: "phone", value: "12345", message: "Field must be exactly 10 characters long."},
		{name: "bad email", field: "email", value: "alice", message: "Invalid email address."},
		{name: "short password", field: "password", value: "abc", message: "Field must be at least 8 characters long."},
		{name: "missing email", field: "email", value: "", message: "This field is required."},
		{name: "blank first name", field: "first_name", value: "    ", message: "This field is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validRegistration()
			values.Set(tt.field, tt.value)

			var form RegisterForm
			errs := Bind(postContext(values), &form)
			require.True(t, errs.Any())
			assert.Equal(t, tt.message, errs.First(tt.field))
		})
	}
}

func TestLoginForm(t *testing.T) {
	var form LoginForm
	errs := Bind(postContext(url.Values{"email": {"alice@example.com"}, "password": {"x"}}), &form)
	assert.Nil(t, errs)

	var missing LoginForm
	errs = Bind(postContext(url.Values{"email": {"alice@example.com"}}), &missing)
	assert.Equal(t, "This field is required.", errs.First("password"))
}

func TestCityFormBounds(t *testing.T) {
	for name, ok := range map[string]bool{
		"ab":                    false,
		"abc":                   true,
		strings.Repeat("a", 20): true,
		strings.Repeat("a", 21): false,
	} {
		var form CityForm
		errs := Bind(postContext(url.Values{"name": {name}}), &form)
		assert.Equal(t, !ok, errs.Any(), "name %q", name)
	}
}

func TestAreaFormCity(t *testing.T) {
	var form AreaForm
	errs := Bind(postContext(url.Values{"name": {"Downtown"}, "city_id": {"3"}}), &form)
	require.Nil(t, errs)
	id, err := form.City()
	require.NoError(t, err)
	assert.Equal(t, uint(3), id)

	errs = Bind(postContext(url.Values{"name": {"Downtown"}, "city_id": {"abc"}}), &form)
	assert.Equal(t, "Please choose a city.", errs.First("city_id"))

	errs = Bind(postContext(url.Values{"name": {"Downtown"}}), &form)
	assert.Equal(t, "Please choose a city.", errs.First("city_id"))
}

func TestTranslateNonValidationError(t *testing.T) {
	errs := Translate(errors.New("boom"))
	assert.Equal(t, "Invalid form submission.", errs.First(FormErrorKey))
}

func TestErrors(t *testing.T) {
	errs := Errors{}
	assert.False(t, errs.Any())
	errs.Add(FormErrorKey, "Incorrect email or password")
	assert.True(t, errs.Any())
	assert.Equal(t, "", errs.First("email"))
}

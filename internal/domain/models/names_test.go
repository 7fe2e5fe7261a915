package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"too short", "Ab", false},
		{"lower bound", "Abc", true},
		{"upper bound", strings.Repeat("x", 20), true},
		{"too long", strings.Repeat("x", 21), false},
		{"blank padded", "  a ", false},
		{"multibyte counted as runes", "Αθήνα", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidName(tc.input))
		})
	}
}

func TestBeforeSaveRejectsInvalidNames(t *testing.T) {
	assert.ErrorIs(t, (&City{Name: "Xy"}).BeforeSave(nil), ErrInvalidName)
	assert.NoError(t, (&City{Name: "Gotham"}).BeforeSave(nil))
	assert.ErrorIs(t, (&Area{Name: ""}).BeforeSave(nil), ErrInvalidName)
	assert.NoError(t, (&Area{Name: "Downtown", CityID: 1}).BeforeSave(nil))
}

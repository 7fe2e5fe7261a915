package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

// Length bounds for city and area names.
const (
	NameMinLength = 3
	NameMaxLength = 20
)

// ErrInvalidName is returned when a city or area name is out of bounds.
var ErrInvalidName = errors.New("name must be between 3 and 20 characters")

// ValidName reports whether name fits the city/area naming rule.
func ValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= NameMinLength && n <= NameMaxLength
}

// BeforeSave rejects out-of-bounds names regardless of the caller.
func (c *City) BeforeSave(tx *gorm.DB) error {
	if !ValidName(c.Name) {
		return ErrInvalidName
	}
	return nil
}

// BeforeSave rejects out-of-bounds names regardless of the caller.
func (a *Area) BeforeSave(tx *gorm.DB) error {
	if !ValidName(a.Name) {
		return ErrInvalidName
	}
	return nil
}

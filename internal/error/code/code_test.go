package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCodeHasMessageAndStatus(t *testing.T) {
	for c := range codeMessageMap {
		_, ok := codeStatusMap[c]
		assert.True(t, ok, "code %d has no status", c)
	}
	for c := range codeStatusMap {
		_, ok := codeMessageMap[c]
		assert.True(t, ok, "code %d has no message", c)
	}
}

func TestUnknownCode(t *testing.T) {
	assert.Equal(t, "unknown error", GetMessage(1))
	assert.Equal(t, StatusInternalServerError, GetStatus(1))
	assert.Equal(t, "Incorrect email or password", GetMessage(ErrInvalidCredentials))
}

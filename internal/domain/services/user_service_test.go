package services

import (
	"context"
	"testing"
	"time"

	"pharmacy-admin-service/internal/domain/models"
	"pharmacy-admin-service/internal/test/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliceInput() RegisterInput {
	return RegisterInput{
		FirstName: "Alice",
		LastName:  "Liddell",
		Gender:    models.GenderFemale,
		BirthDate: time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC),
		Phone:     "0123456789",
		Email:     "alice@example.com",
		Password:  "abcdefgh",
	}
}

func TestRegisterCreatesNonAdmin(t *testing.T) {
	svc := NewUserService(testdb.New(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, aliceInput())
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "abcdefgh", user.HashedPassword)
	assert.True(t, CheckPassword("abcdefgh", user.HashedPassword))

	stored, err := svc.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
	assert.Equal(t, "Alice Liddell", stored.FullName())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testdb.New(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, aliceInput())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Register(ctx, aliceInput())
		assert.ErrorIs(t, err, ErrEmailTaken)
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	exists, err := svc.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAuthenticateSameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc := NewUserService(testdb.New(t))
	ctx := context.Background()
	_, err := svc.Register(ctx, aliceInput())
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "alice@example.com", "wrong-password")
	_, unknownEmail := svc.Authenticate(ctx, "bob@example.com", "abcdefgh")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

	user, err := svc.Authenticate(ctx, "alice@example.com", "abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := NewUserService(testdb.New(t))

	_, err := svc.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	svc := NewUserService(db)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin@example.com", "admin-password")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "other@example.com", "admin-password")
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := svc.Authenticate(ctx, "admin@example.com", "admin-password")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureAdminRequiresCredentials(t *testing.T) {
	svc := NewUserService(testdb.New(t))

	_, err := svc.EnsureAdmin(context.Background(), "", "")
	assert.Error(t, err)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("abcdefgh", "not-a-hash"))
}

func TestEmailsAreCaseInsensitive(t *testing.T) {
	svc := NewUserService(testdb.New(t))
	ctx := context.Background()

	input := aliceInput()
	input.Email = "  Alice@Example.COM "
	user, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	exists, err := svc.EmailExists(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	again := aliceInput()
	again.Email = "ALICE@EXAMPLE.COM"
	_, err = svc.Register(ctx, again)
	assert.ErrorIs(t, err, ErrEmailTaken)

	found, err := svc.Authenticate(ctx, "aLiCe@example.com", "abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

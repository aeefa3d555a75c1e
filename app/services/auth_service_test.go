package services_test

import (
	"testing"

	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/app/services"
	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"github.com/shashiranjanraj/vyapar/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	userID, err := svc.Register("a@x.com", "p1secret")
	require.NoError(t, err)
	require.NotZero(t, userID)

	token, err := svc.Login("a@x.com", "p1secret")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID, "token must decode to the registered user")
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register("a@x.com", "p1secret")
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&user).Error)
	assert.NotEqual(t, "p1secret", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "p1secret"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register("a@x.com", "p1secret")
	require.NoError(t, err)

	_, err = svc.Register("a@x.com", "other-pass")
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count, "duplicate registration must not create a second record")
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register("a@x.com", "p1secret")
	require.NoError(t, err)

	var before models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&before).Error)

	_, err = svc.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	var after models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&after).Error)
	assert.Equal(t, before.Password, after.Password, "a failed login must not touch the stored hash")
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Login("nobody@x.com", "whatever")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

package authtoken_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/authtoken"
)

func TestGenerateAndValidate(t *testing.T) {
	m := authtoken.NewManager("test-secret", time.Hour)

	token, err := m.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := authtoken.NewManager("secret-a", time.Hour).Generate(42)
	require.NoError(t, err)

	_, err = authtoken.NewManager("secret-b", time.Hour).Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, authtoken.ErrInvalidToken)
}

func TestValidate_ExpiredToken(t *testing.T) {
	m := authtoken.NewManager("test-secret", -time.Minute)

	token, err := m.Generate(42)
	require.NoError(t, err)

	_, err = m.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, authtoken.ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	m := authtoken.NewManager("test-secret", time.Hour)

	_, err := m.Validate("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, authtoken.ErrInvalidToken)
}

func TestNoSecret(t *testing.T) {
	m := authtoken.NewManager("", time.Hour)

	_, err := m.Generate(42)
	assert.ErrorIs(t, err, authtoken.ErrNoSecret)

	_, err = m.Validate("whatever")
	assert.ErrorIs(t, err, authtoken.ErrNoSecret)
}

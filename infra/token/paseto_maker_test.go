package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "12345678901234567890123456789012"

func TestPasetoMaker_RoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	user := User{Name: "Agent Tambua", Email: "agent@tambua.com", Role: RoleAgent, Avatar: "AT", AgentID: "agent-1"}
	tok, issued, err := maker.CreateToken(user, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	payload, err := maker.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, payload.ID)
	assert.Equal(t, user, payload.User)
	assert.WithinDuration(t, issued.ExpiredAt, payload.ExpiredAt, time.Second)
}

func TestPasetoMaker_Expired(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	tok, _, err := maker.CreateToken(User{Role: RoleSupervisor}, -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoMaker_Invalid(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	_, err = maker.VerifyToken("v2.local.garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewPasetoMaker("abcdefghijklmnopqrstuvwxyzabcdef")
	require.NoError(t, err)
	tok, _, err := other.CreateToken(User{Role: RoleAgent}, time.Minute)
	require.NoError(t, err)
	_, err = maker.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewPasetoMaker_KeySize(t *testing.T) {
	_, err := NewPasetoMaker("short")
	assert.Error(t, err)
}

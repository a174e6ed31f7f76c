package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/freejob-server/internal/model"
)

// Cheap parameters keep the tests fast.
var testParams = Params{Time: 1, MemKiB: 1024, Threads: 1}

func TestArgon2id_Hash(t *testing.T) {
	h := NewArgon2id(testParams)

	t.Run("phc format", func(t *testing.T) {
		hash, err := h.Hash("Passw0rd!")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

		_, err = model.NewPasswordHash(hash)
		assert.NoError(t, err)
	})

	t.Run("salted", func(t *testing.T) {
		a, err := h.Hash("same")
		require.NoError(t, err)
		b, err := h.Hash("same")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := h.Hash("")
		assert.ErrorIs(t, err, model.ErrEmptyPassword)
	})
}

func TestArgon2id_Verify(t *testing.T) {
	h := NewArgon2id(testParams)
	hash, err := h.Hash("Passw0rd!")
	require.NoError(t, err)

	ok, err := h.Verify("Passw0rd!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("passw0rd!", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	// Hashes made with other parameters still verify.
	other := NewArgon2id(Params{Time: 2, MemKiB: 2048, Threads: 2})
	ok, err = other.Verify("Passw0rd!", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2id_Verify_Malformed(t *testing.T) {
	h := NewArgon2id(testParams)

	for name, hash := range map[string]string{
		"empty":       "",
		"bcrypt":      "$2a$10$abcdefghijklmnopqrstuv",
		"bad version": "$argon2id$v=x$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"old version": "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"bad params":  "$argon2id$v=19$m=1024$c2FsdA$aGFzaA",
		"zero time":   "$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$aGFzaA",
		"bad salt":    "$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA",
		"bad key":     "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$!!!",
		"empty key":   "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
	} {
		t.Run(name, func(t *testing.T) {
			ok, err := h.Verify("whatever", hash)
			assert.False(t, ok)
			assert.ErrorIs(t, err, model.ErrInvalidHash)
		})
	}
}

func TestNewArgon2id_Defaults(t *testing.T) {
	h := NewArgon2id(Params{})
	assert.Equal(t, DefaultParams, h.params)
}

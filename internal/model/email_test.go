package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Email
		wantErr bool
	}{
		{name: "minimal", raw: "a@b.c", want: "a@b.c"},
		{name: "normalized", raw: "  Alice@Example.COM \n", want: "alice@example.com"},
		{name: "subdomain", raw: "bob.smith+jobs@mail.example.org", want: "bob.smith+jobs@mail.example.org"},
		{name: "not an email", raw: "not-an-email", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "no tld", raw: "alice@example", wantErr: true},
		{name: "two ats", raw: "a@b@c.d", wantErr: true},
		{name: "inner space", raw: "al ice@example.com", wantErr: true},
		{name: "no local part", raw: "@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEmail(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEmail_CaseAndWhitespaceInsensitive(t *testing.T) {
	for _, raw := range []string{"a@b.c", "Jane.Doe@Example.com", "x_y@sub.domain.io"} {
		lower, err := NewEmail(raw)
		require.NoError(t, err)

		upper, err := NewEmail("\t " + strings.ToUpper(raw) + "  ")
		require.NoError(t, err)

		again, err := NewEmail(lower.String())
		require.NoError(t, err)

		assert.Equal(t, lower, upper)
		assert.Equal(t, lower, again)
	}
}

//go:build unit

package user_test

import (
	"testing"

	"donorhub/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "staff@example.com", want: "staff@example.com"},
		{name: "trims whitespace", input: "  staff@example.com  ", want: "staff@example.com"},
		{name: "subdomain", input: "a.b@mail.example.co.jp", want: "a.b@mail.example.co.jp"},
		{name: "missing at sign", input: "staff.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "staff@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword("longenough")
	assert.NoError(t, err)
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"viewer", "staff", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

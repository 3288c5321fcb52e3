package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authvault/internal/prompt"
)

// Only the override paths are exercised here; the echo-disabled terminal
// paths need a pty and are covered by manual testing.

func TestPasswordOverride(t *testing.T) {
	t.Parallel()

	got, err := prompt.Password("Enter password: ", "from-env")
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestPasswordConfirmedOverride(t *testing.T) {
	t.Parallel()

	got, err := prompt.PasswordConfirmed("Enter password: ", "Confirm password: ", "from-env")
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

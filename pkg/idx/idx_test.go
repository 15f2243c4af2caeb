package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("generates valid IDs", func(t *testing.T) {
		id := New()
		require.False(t, id.IsZero())

		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("IDs are monotonic within a timestamp", func(t *testing.T) {
		a := New()
		b := New()
		require.Less(t, a.String(), b.String())
	})
}

func TestNewAt(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at, id.Time())
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := Parse("")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rejects junk", func(t *testing.T) {
		_, err := Parse("not-a-ulid")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		id := New()
		parsed, err := Parse("  " + id.String() + " ")
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

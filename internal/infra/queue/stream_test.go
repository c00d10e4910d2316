//go:build unit

package queue

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		msg, err := parseMessage(redis.XMessage{
			ID: "1718000000000-0",
			Values: map[string]any{
				"id":        "123456789",
				"userId":    "42",
				"voucherId": "7",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "1718000000000-0", msg.ID)
		assert.Equal(t, int64(123456789), msg.OrderID)
		assert.Equal(t, int64(42), msg.UserID)
		assert.Equal(t, int64(7), msg.VoucherID)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := parseMessage(redis.XMessage{
			ID:     "1718000000000-0",
			Values: map[string]any{"id": "1", "userId": "42"},
		})

		// Undecodable entries surface with the entry id so consumers can
		// acknowledge them instead of retrying forever.
		var malformed *MalformedError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "1718000000000-0", malformed.EntryID)
	})

	t.Run("non-numeric field", func(t *testing.T) {
		_, err := parseMessage(redis.XMessage{
			ID:     "1718000000000-1",
			Values: map[string]any{"id": "abc", "userId": "42", "voucherId": "7"},
		})

		var malformed *MalformedError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "1718000000000-1", malformed.EntryID)
	})
}

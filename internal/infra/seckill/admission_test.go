//go:build unit

package seckill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapResult(t *testing.T) {
	testCases := []struct {
		name     string
		raw      int64
		expected Result
		wantErr  bool
	}{
		{name: "admitted", raw: 0, expected: ResultAdmitted},
		{name: "out of stock", raw: 1, expected: ResultOutOfStock},
		{name: "duplicate order", raw: 2, expected: ResultDuplicate},
		{name: "unknown script result", raw: 3, wantErr: true},
		{name: "negative script result", raw: -1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := mapResult(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2025, 6, 1, 9, 30, 0, 123456789, time.UTC)

	encoded := queries.EncodeAfterCursor(createdAt, id)

	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	// precision is truncated to microseconds on encode
	assert.Equal(t, createdAt.Truncate(time.Microsecond).UnixMicro(), gotTime.UnixMicro())
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "missing version prefix", cursor: base64.URLEncoding.EncodeToString([]byte("1234-" + uuid.NewString()))},
		{name: "unsupported version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:1234-" + uuid.NewString()))},
		{name: "missing uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234-not-a-uuid"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"stayspots/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 6, 1, 12, 30, 45, 123456000, time.UTC)

	cursor := queries.EncodeAfterCursor(at, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)

	assert.Equal(t, at.UnixMicro(), gotTime.UnixMicro())
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor(t *testing.T) {
	encode := func(s string) string {
		return base64.URLEncoding.EncodeToString([]byte(s))
	}

	cases := []struct {
		name    string
		cursor  string
		wantErr string
	}{
		{"empty cursor", "", "cursor cannot be empty"},
		{"not base64", "!!!not-base64!!!", "invalid cursor encoding"},
		{"unknown version", encode("v2:123-" + uuid.New().String()), "unknown cursor version"},
		{"missing separator", encode("v1:12345"), "invalid cursor format"},
		{"bad timestamp", encode("v1:abc-" + uuid.New().String()), "invalid timestamp"},
		{"bad uuid", encode("v1:123-not-a-uuid"), "invalid UUID"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(c.cursor)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantErr)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}

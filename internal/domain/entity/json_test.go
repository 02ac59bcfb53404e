package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonKeys(t *testing.T, v any) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	return keys
}

func TestGeneratedPage_JSONUsesCamelCase(t *testing.T) {
	expiresAt := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	page := GeneratedPage{
		ID:              uuid.New(),
		BusinessID:      uuid.New(),
		FilePath:        "/seattle-wa/joes-pizza/update/menu",
		IntentType:      IntentDirect,
		CompressedData:  []byte(`{"b":{}}`),
		EstimatedSizeKB: 16,
		ExpiresAt:       &expiresAt,
	}

	keys := jsonKeys(t, page)
	assert.Subset(t, keys, []string{"businessId", "updateId", "filePath", "intentType", "pageVariant", "estimatedSizeKB", "batchId", "publishedAt", "expiresAt", "createdAt"})
	assert.NotContains(t, keys, "file_path")
	assert.NotContains(t, keys, "compressedData")
}

func TestTemporalInfo_JSONUsesCamelCase(t *testing.T) {
	expiresAt := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	info := TemporalInfo{ExpiresAt: &expiresAt, EventDates: []string{"2026-09-07"}, Times: []string{"18:00"}}

	assert.ElementsMatch(t, []string{"expiresAt", "eventDates", "times"}, jsonKeys(t, info))
}

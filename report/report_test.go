package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/propdrift/schema"
)

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "drift.json")
	records := []schema.MissingPropertyRecord{
		{
			Module:       "aws-cloudfront",
			Name:         "CfnDistribution",
			MissingProps: []string{"defaultCacheBehavior.viewerProtocolPolicy"},
		},
	}

	require.NoError(t, Write(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []schema.MissingPropertyRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "CfnDistribution", decoded[0].Name)
	assert.Equal(t, records[0].MissingProps, decoded[0].MissingProps)
}

func TestWriteEmptyResultIsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.json")

	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestPreviewPaths(t *testing.T) {
	assert.Equal(t, "a, b", previewPaths([]string{"a", "b"}))
	assert.Equal(t, "a, b, c, d, … +2", previewPaths([]string{"a", "b", "c", "d", "e", "f"}))
}

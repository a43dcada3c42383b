package db

import (
	"path/filepath"
	"testing"

	"github.com/manualdesk/nexon-assist/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	d, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestRecordAndListUploads(t *testing.T) {
	d := newTestDB(t)

	first := &models.UploadRecord{Filename: "manual.pdf", VendorID: "f-1", Status: "Processing"}
	require.NoError(t, d.RecordUpload(first))
	assert.NotZero(t, first.ID)
	assert.NotEmpty(t, first.CreatedAt)

	second := &models.UploadRecord{Filename: "broken.pdf", Status: "failed", Detail: "status 500"}
	require.NoError(t, d.RecordUpload(second))

	records, err := d.RecentUploads(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent first.
	assert.Equal(t, "broken.pdf", records[0].Filename)
	assert.Equal(t, "failed", records[0].Status)
	assert.Equal(t, "status 500", records[0].Detail)
	assert.Equal(t, "manual.pdf", records[1].Filename)
	assert.Equal(t, "f-1", records[1].VendorID)
}

func TestRecentUploadsLimit(t *testing.T) {
	d := newTestDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.RecordUpload(&models.UploadRecord{Filename: "f.pdf", Status: "Processing"}))
	}

	records, err := d.RecentUploads(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestRecentUploadsEmpty(t *testing.T) {
	d := newTestDB(t)

	records, err := d.RecentUploads(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

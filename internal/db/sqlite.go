// Package db keeps a sqlite registry of vendor upload attempts so operators
// can see what was forwarded and whether the vendor accepted it.
package db

import (
	"database/sql"

	"github.com/manualdesk/nexon-assist/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS uploads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    vendor_id TEXT,
    status TEXT NOT NULL,
    detail TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

type Database struct {
	db *sql.DB
}

func New(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Database{db: db}, nil
}

// RecordUpload stores one upload attempt, successful or not.
func (d *Database) RecordUpload(rec *models.UploadRecord) error {
	query := `
        INSERT INTO uploads (filename, vendor_id, status, detail, created_at)
        VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
        RETURNING id, created_at`

	return d.db.QueryRow(query, rec.Filename, rec.VendorID, rec.Status, rec.Detail).
		Scan(&rec.ID, &rec.CreatedAt)
}

// RecentUploads returns the newest upload attempts, most recent first.
func (d *Database) RecentUploads(limit int) ([]models.UploadRecord, error) {
	query := `
        SELECT id, filename, COALESCE(vendor_id, ''), status, COALESCE(detail, ''), created_at
        FROM uploads
        ORDER BY id DESC
        LIMIT ?`

	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.UploadRecord{}
	for rows.Next() {
		var rec models.UploadRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.VendorID, &rec.Status,
			&rec.Detail, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (d *Database) Close() error {
	return d.db.Close()
}

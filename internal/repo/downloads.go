// Package repo provides data access to the program's SQLite store.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"tubegrab/internal/domain/consts"
	"tubegrab/internal/models"
)

// DownloadStore records and queries the download history.
type DownloadStore struct {
	DB *sql.DB
}

// GetDownloadStore returns a download store with injected database.
func GetDownloadStore(db *sql.DB) *DownloadStore {
	return &DownloadStore{DB: db}
}

// InsertDownload appends one history record and returns its row ID.
func (ds *DownloadStore) InsertDownload(ctx context.Context, rec *models.DownloadRecord) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	query := squirrel.
		Insert(consts.DBDownloads).
		Columns(consts.QDLURL, consts.QDLTitle, consts.QDLFormatSpec,
			consts.QDLPath, consts.QDLSizeBytes, consts.QDLStatus, consts.QDLCreatedAt).
		Values(rec.URL, rec.Title, rec.FormatSpec,
			rec.Path, rec.SizeBytes, string(rec.Status), rec.CreatedAt).
		RunWith(ds.DB)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert download record for %q: %w", rec.URL, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted row ID: %w", err)
	}
	rec.ID = id
	return id, nil
}

// RecentDownloads returns up to limit history records, newest first.
func (ds *DownloadStore) RecentDownloads(ctx context.Context, limit uint64) ([]models.DownloadRecord, error) {
	query := squirrel.
		Select(consts.QDLID, consts.QDLURL, consts.QDLTitle, consts.QDLFormatSpec,
			consts.QDLPath, consts.QDLSizeBytes, consts.QDLStatus, consts.QDLCreatedAt).
		From(consts.DBDownloads).
		OrderBy(consts.QDLID + " DESC").
		Limit(limit).
		RunWith(ds.DB)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query download history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.DownloadRecord
	for rows.Next() {
		var rec models.DownloadRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Title, &rec.FormatSpec,
			&rec.Path, &rec.SizeBytes, &status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan download record: %w", err)
		}
		rec.Status = consts.DownloadStatus(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}

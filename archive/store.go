// Package archive keeps rendered plans in a SQLite database.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lvillar/planpdf"
)

// ErrNotFound is returned when no document has the requested ID.
var ErrNotFound = errors.New("archive: document not found")

// Record describes one archived document.
type Record struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Pages     int       `json:"pages"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Store wraps a SQLite database holding rendered PDFs. It implements
// planpdf.Exporter.
type Store struct {
	db *sql.DB
}

var _ planpdf.Exporter = (*Store)(nil)

// Open opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    filename TEXT NOT NULL,
    pages INTEGER NOT NULL,
    size INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    data BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS documents_created ON documents(created_at);
`)
	if err != nil {
		return fmt.Errorf("archive: schema: %w", err)
	}
	return nil
}

// Save validates data as a PDF and stores it under a new ID.
func (s *Store) Save(ctx context.Context, filename string, data []byte) error {
	_, err := s.insert(ctx, uuid.NewString(), filename, data)
	return err
}

// SaveArtifact stores a rendered artifact under its own ID.
func (s *Store) SaveArtifact(ctx context.Context, a *planpdf.Artifact, filename string) (Record, error) {
	if filename == "" {
		filename = planpdf.DefaultFilename
	}
	return s.insert(ctx, a.ID(), filename, a.Bytes())
}

func (s *Store) insert(ctx context.Context, id, filename string, data []byte) (Record, error) {
	pages, err := planpdf.Verify(data)
	if err != nil {
		return Record{}, fmt.Errorf("archive: refusing %s: %w", filename, err)
	}
	rec := Record{
		ID:        id,
		Filename:  filename,
		Pages:     pages,
		Size:      len(data),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (id, filename, pages, size, created_at, data) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Filename, rec.Pages, rec.Size, rec.CreatedAt.Format(time.RFC3339), data)
	if err != nil {
		return Record{}, fmt.Errorf("archive: insert %s: %w", id, err)
	}
	return rec, nil
}

// Get returns a document and its metadata.
func (s *Store) Get(ctx context.Context, id string) (Record, []byte, error) {
	var (
		rec     Record
		created string
		data    []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, filename, pages, size, created_at, data FROM documents WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Filename, &rec.Pages, &rec.Size, &created, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, nil, ErrNotFound
	}
	if err != nil {
		return Record{}, nil, fmt.Errorf("archive: get %s: %w", id, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return rec, data, nil
}

// List returns up to limit records, newest first. A limit of 0 means 50.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, pages, size, created_at FROM documents ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.Pages, &rec.Size, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a document. Deleting an unknown ID returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("archive: delete %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Submission is a stored contact request.
type Submission struct {
	Receipt
	Form
}

// SQLiteSubmitter keeps submissions in a local SQLite inbox.
type SQLiteSubmitter struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the inbox database at path. Use
// ":memory:" for a throwaway inbox.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSubmitter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contact inbox %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writes.
	db.SetMaxOpenConns(1)

	s := &SQLiteSubmitter{db: db, now: time.Now}
	if err := s.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteSubmitter) init(ctx context.Context) error {
	createTable := `
	CREATE TABLE IF NOT EXISTS contact_submissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT,
		project_type TEXT,
		budget TEXT,
		description TEXT NOT NULL,
		submitted_at DATETIME NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create contact_submissions table: %w", err)
	}
	return nil
}

// Submit stores f and returns its receipt.
func (s *SQLiteSubmitter) Submit(ctx context.Context, f Form) (Receipt, error) {
	r := Receipt{ID: uuid.NewString(), SubmittedAt: s.now().UTC()}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, company, project_type, budget, description, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, f.Name, f.Email, f.Company, f.ProjectType, f.Budget, f.Description, r.SubmittedAt)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to store contact submission: %w", err)
	}
	return r, nil
}

// List returns up to limit submissions, newest first.
func (s *SQLiteSubmitter) List(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, COALESCE(company, ''), COALESCE(project_type, ''), COALESCE(budget, ''), description, submitted_at
		FROM contact_submissions
		ORDER BY submitted_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Company, &sub.ProjectType, &sub.Budget, &sub.Description, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteSubmitter) Close() error {
	return s.db.Close()
}

package contact

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manishpatil55/demo-product-page/internal/db"
)

// Store manages persistence of contact submissions.
type Store struct {
	db *db.DB
}

// NewStore creates a new contact store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create saves a new submission.
func (s *Store) Create(ctx context.Context, sub Submission) (*Submission, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.Status == "" {
		sub.Status = StatusNew
	}
	if sub.Fields == nil {
		sub.Fields = map[string]string{}
	}

	fields, err := json.Marshal(sub.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, phone, email, brand, fields, status, source_page, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Phone, sub.Email, sub.Brand, string(fields), sub.Status, sub.SourcePage, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}
	return &sub, nil
}

// GetByID retrieves a submission by its ID. A missing id returns nil, nil.
func (s *Store) GetByID(ctx context.Context, id string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone, email, brand, fields, status, source_page, created_at, updated_at
		 FROM contact_submissions WHERE id = ?`, id)

	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting submission: %w", err)
	}
	return sub, nil
}

// List returns submissions matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Submission, error) {
	query := `SELECT id, name, phone, email, brand, fields, status, source_page, created_at, updated_at
		 FROM contact_submissions WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}

	query += " ORDER BY created_at DESC, id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

// UpdateStatus changes the follow-up status of a submission.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q: must be one of new, contacted, closed", status)
	}
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`UPDATE contact_submissions SET status = ?, updated_at = ? WHERE id = ?`,
		status, now, id,
	)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Count returns the number of submissions with the given status, or all of
// them when status is empty.
func (s *Store) Count(ctx context.Context, status Status) (int, error) {
	var count int
	var err error
	if status == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&count)
	} else {
		err = s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM contact_submissions WHERE status = ?`, status,
		).Scan(&count)
	}
	return count, err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row scanner) (*Submission, error) {
	var sub Submission
	var fields string
	if err := row.Scan(&sub.ID, &sub.Name, &sub.Phone, &sub.Email, &sub.Brand, &fields, &sub.Status, &sub.SourcePage, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(fields), &sub.Fields); err != nil {
		return nil, fmt.Errorf("decoding fields of %s: %w", sub.ID, err)
	}
	return &sub, nil
}

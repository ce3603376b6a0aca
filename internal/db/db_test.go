package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM contact_submissions").Scan(&count); err != nil {
		t.Fatalf("table contact_submissions: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d rows", count)
	}
	if d.Path() != ":memory:" {
		t.Errorf("Path() = %q", d.Path())
	}
}

func TestStatusConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO contact_submissions (id, status) VALUES ('a', 'new')`); err != nil {
		t.Fatalf("valid insert: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO contact_submissions (id, status) VALUES ('b', 'spam')`); err == nil {
		t.Error("expected CHECK constraint failure for unknown status")
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "leads.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO contact_submissions (id) VALUES ('x')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	d.Close()

	// Reopen and check the row survived.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()
	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM contact_submissions").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after reopen, got %d", count)
	}
}

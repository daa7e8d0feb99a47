package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
)

// StoreContractTest is a reusable test suite that verifies an adapter
// complies with ports.Store. The store must be migrated and empty.
func StoreContractTest(t *testing.T, store ports.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("Exec_Insert", func(t *testing.T) {
		affected, err := store.Exec(ctx,
			`INSERT INTO customers (id, first_name, last_name, email, annual_revenue, employee_count)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			"contract-1", "Grace", "Hopper", "grace@navy.example", 1000000.0, 12)
		if err != nil {
			t.Fatalf("unexpected error inserting: %v", err)
		}
		if affected != 1 {
			t.Errorf("affected = %d, want 1", affected)
		}
	})

	t.Run("Query_RoundTrip", func(t *testing.T) {
		rows, err := store.Query(ctx, `SELECT * FROM customers WHERE id = ?`, "contract-1")
		if err != nil {
			t.Fatalf("unexpected error querying: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(rows))
		}

		row := rows[0]
		if row["first_name"] != "Grace" {
			t.Errorf("first_name = %v, want Grace", row["first_name"])
		}
		if row["status"] != "active" {
			t.Errorf("status = %v, want the column default active", row["status"])
		}
		if _, ok := row["annual_revenue"].(float64); !ok {
			t.Errorf("annual_revenue should scan as float64, got %T", row["annual_revenue"])
		}
		if _, ok := row["employee_count"].(int64); !ok {
			t.Errorf("employee_count should scan as int64, got %T", row["employee_count"])
		}
	})

	t.Run("Query_NoRows", func(t *testing.T) {
		rows, err := store.Query(ctx, `SELECT * FROM customers WHERE id = ?`, "absent")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("got %d rows, want 0", len(rows))
		}
	})

	t.Run("Exec_DuplicateKey", func(t *testing.T) {
		_, err := store.Exec(ctx,
			`INSERT INTO customers (id, first_name, last_name, email) VALUES (?, ?, ?, ?)`,
			"contract-2", "Grace", "Again", "grace@navy.example")
		if err == nil {
			t.Fatal("expected error for duplicate email, got nil")
		}

		var derr *domain.Error
		if !errors.As(err, &derr) {
			t.Fatalf("error should be *domain.Error, got %T", err)
		}
		if derr.Kind != domain.KindDuplicateKey {
			t.Errorf("kind = %s, want %s", derr.Kind, domain.KindDuplicateKey)
		}

		rows, err := store.Query(ctx, `SELECT id FROM customers WHERE email = ?`, "grace@navy.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("duplicate insert must leave exactly one row, got %d", len(rows))
		}
	})

	t.Run("Query_BadSQL", func(t *testing.T) {
		_, err := store.Query(ctx, `SELECT * FROM no_such_table`)
		if err == nil {
			t.Fatal("expected error for bad SQL, got nil")
		}
		if kind := domain.KindOf(err); kind != domain.KindBackendFailure {
			t.Errorf("kind = %s, want %s", kind, domain.KindBackendFailure)
		}
	})
}

// FileSystemFixtures names the paths a caller prepared for
// FileSystemContractTest.
type FileSystemFixtures struct {
	TextFile    string // existing file containing TextContent
	TextContent string
	BinaryFile  string // existing file with non-UTF-8 content
	Dir         string // existing directory containing TextFile's base name
	Missing     string // path that does not exist
}

// FileSystemContractTest is a reusable test suite that verifies an
// adapter complies with ports.FileSystem.
func FileSystemContractTest(t *testing.T, fsys ports.FileSystem, fx FileSystemFixtures) {
	t.Helper()

	t.Run("Stat_File", func(t *testing.T) {
		info, err := fsys.Stat(fx.TextFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.IsDir {
			t.Error("IsDir = true for a regular file")
		}
	})

	t.Run("Stat_Dir", func(t *testing.T) {
		info, err := fsys.Stat(fx.Dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.IsDir {
			t.Error("IsDir = false for a directory")
		}
	})

	t.Run("Stat_Missing", func(t *testing.T) {
		_, err := fsys.Stat(fx.Missing)
		if err == nil {
			t.Fatal("expected error for missing path, got nil")
		}
		if kind := domain.KindOf(err); kind != domain.KindNotFound {
			t.Errorf("kind = %s, want %s", kind, domain.KindNotFound)
		}
	})

	t.Run("ReadText", func(t *testing.T) {
		content, err := fsys.ReadText(fx.TextFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != fx.TextContent {
			t.Errorf("content = %q, want %q", content, fx.TextContent)
		}
	})

	t.Run("ReadText_Binary", func(t *testing.T) {
		_, err := fsys.ReadText(fx.BinaryFile)
		if err == nil {
			t.Fatal("expected error for binary content, got nil")
		}
		if kind := domain.KindOf(err); kind != domain.KindDecodeFailure {
			t.Errorf("kind = %s, want %s", kind, domain.KindDecodeFailure)
		}
	})

	t.Run("List_Sorted", func(t *testing.T) {
		entries, err := fsys.List(fx.Dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Name > entries[i].Name {
				t.Errorf("entries out of order: %q before %q", entries[i-1].Name, entries[i].Name)
			}
		}
	})

	t.Run("List_Missing", func(t *testing.T) {
		_, err := fsys.List(fx.Missing)
		if err == nil {
			t.Fatal("expected error for missing directory, got nil")
		}
		if kind := domain.KindOf(err); kind != domain.KindNotFound {
			t.Errorf("kind = %s, want %s", kind, domain.KindNotFound)
		}
	})

	t.Run("Expand_PlainPath", func(t *testing.T) {
		got, err := fsys.Expand(fx.TextFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != fx.TextFile {
			t.Errorf("Expand(%q) = %q, plain paths must pass through", fx.TextFile, got)
		}
	})
}

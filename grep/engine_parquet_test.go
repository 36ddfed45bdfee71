package grep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
)

// NumRow is a single nullable integer column.
type NumRow struct {
	Value *int64 `parquet:"value,optional"`
}

// createNumParquetFile creates a temporary parquet file with one nullable
// integer column and returns its path.
func createNumParquetFile(t *testing.T, rows []NumRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nums.parquet")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[NumRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

func i64(v int64) *int64 { return &v }

func TestSearchFile_ParquetNullAndValue(t *testing.T) {
	// Null at row 3, 42 at row 5.
	path := createNumParquetFile(t, []NumRow{
		{Value: i64(7)},
		{Value: i64(8)},
		{Value: nil},
		{Value: i64(9)},
		{Value: i64(42)},
	})

	t.Run("value match at ordinal 5", func(t *testing.T) {
		engine, out, _ := newTestEngine(t, "42", Options{})
		count, err := engine.SearchFile(path)
		if err != nil {
			t.Fatalf("SearchFile() error = %v", err)
		}
		if count != 1 {
			t.Errorf("match count = %d, want 1", count)
		}
		if !strings.Contains(out.String(), "5: 42") {
			t.Errorf("expected match at ordinal 5, got:\n%s", out.String())
		}
	})

	t.Run("null match at ordinal 3", func(t *testing.T) {
		engine, out, _ := newTestEngine(t, "NULL", Options{})
		count, err := engine.SearchFile(path)
		if err != nil {
			t.Fatalf("SearchFile() error = %v", err)
		}
		if count != 1 {
			t.Errorf("match count = %d, want 1", count)
		}
		if !strings.Contains(out.String(), "3: NULL") {
			t.Errorf("expected match at ordinal 3, got:\n%s", out.String())
		}
	})

	t.Run("null never matches digits", func(t *testing.T) {
		engine, _, _ := newTestEngine(t, "^[0-9]+$", Options{})
		count, err := engine.SearchFile(path)
		if err != nil {
			t.Fatalf("SearchFile() error = %v", err)
		}
		if count != 4 {
			t.Errorf("match count = %d, want 4 (the null row must not match)", count)
		}
	})
}

func TestSearchFile_ParquetMaxCountStopsMidBatch(t *testing.T) {
	rows := make([]NumRow, 10)
	for i := range rows {
		rows[i] = NumRow{Value: i64(int64(i + 1))}
	}
	path := createNumParquetFile(t, rows)

	engine, out, _ := newTestEngine(t, ".", Options{MaxCount: 3})
	count, err := engine.SearchFile(path)
	if err != nil {
		t.Fatalf("SearchFile() error = %v", err)
	}
	if count != 3 {
		t.Errorf("match count = %d, want 3", count)
	}
	if strings.Contains(out.String(), "4:") {
		t.Errorf("rows past the limit leaked into output:\n%s", out.String())
	}
}

func TestSearchFile_ParquetHeaderFromSchema(t *testing.T) {
	path := createNumParquetFile(t, []NumRow{{Value: i64(1)}})

	engine, out, _ := newTestEngine(t, "1", Options{WithHeaders: true})
	if _, err := engine.SearchFile(path); err != nil {
		t.Fatalf("SearchFile() error = %v", err)
	}
	if !strings.Contains(out.String(), "value") {
		t.Errorf("expected schema-derived header 'value', got:\n%s", out.String())
	}
}

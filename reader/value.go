package reader

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/format"
)

// columnInfo carries the per-column schema metadata needed to coerce raw
// parquet values into text.
type columnInfo struct {
	name    string
	logical *format.LogicalType
}

// leafColumns flattens a parquet schema into its leaf columns in
// column-index order.
//
// For nested types, column names use dot notation (e.g. "address.street").
func leafColumns(schema *parquet.Schema) []columnInfo {
	var cols []columnInfo
	for _, field := range schema.Fields() {
		cols = appendLeafColumns(cols, field, "")
	}
	return cols
}

// appendLeafColumns recursively collects leaf columns from a field.
// The prefix parameter is used to build dot-notation names for nested
// fields.
func appendLeafColumns(cols []columnInfo, field parquet.Field, prefix string) []columnInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	children := field.Fields()
	if len(children) > 0 {
		// This is a group/struct - recurse into child fields.
		for _, child := range children {
			cols = appendLeafColumns(cols, child, name)
		}
		return cols
	}

	var logical *format.LogicalType
	if field.Type() != nil {
		logical = field.Type().LogicalType()
	}

	return append(cols, columnInfo{name: name, logical: logical})
}

// cellText converts one parquet value to its textual form for matching
// and display.
//
// It never fails: null values become "NULL", dates and timestamps are
// rendered in calendar form when convertible, and any unsupported kind
// degrades to a <KIND> placeholder so the cell stays visible but
// non-matchable.
func cellText(v parquet.Value, col columnInfo) string {
	if v.IsNull() {
		return "NULL"
	}

	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		if col.logical != nil && col.logical.Date != nil {
			return dateText(v.Int32())
		}
		if isUnsigned(col.logical) {
			return strconv.FormatUint(uint64(uint32(v.Int32())), 10)
		}
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		if col.logical != nil && col.logical.Timestamp != nil {
			return timestampText(v.Int64(), col.logical.Timestamp.Unit)
		}
		if isUnsigned(col.logical) {
			return strconv.FormatUint(uint64(v.Int64()), 10)
		}
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		if b := v.ByteArray(); utf8.Valid(b) {
			return string(b)
		}
		return fmt.Sprintf("<%s>", v.Kind())
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// isUnsigned reports whether the column's logical type marks its integer
// values as unsigned.
func isUnsigned(logical *format.LogicalType) bool {
	return logical != nil && logical.Integer != nil && !logical.Integer.IsSigned
}

// dateText renders a DATE value (days since the Unix epoch) as an ISO
// calendar date.
func dateText(days int32) string {
	return time.Unix(int64(days)*86400, 0).UTC().Format("2006-01-02")
}

// timestampText renders a TIMESTAMP value in calendar form. Timestamps
// with an unrecognized unit fall back to the raw encoded integer.
func timestampText(value int64, unit format.TimeUnit) string {
	var t time.Time
	switch {
	case unit.Millis != nil:
		t = time.UnixMilli(value)
	case unit.Micros != nil:
		t = time.UnixMicro(value)
	case unit.Nanos != nil:
		t = time.Unix(0, value)
	default:
		return strconv.FormatInt(value, 10)
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

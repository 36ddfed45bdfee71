// Package reader provides streaming access to tabular data files.
//
// It hides two structurally different formats behind one contract: a CSV
// file parsed record by record, and a Parquet file decoded batch by batch.
// Both are exposed as a Source that yields a header once and then rows of
// textual cell values, so callers can match and display data without
// knowing which format produced it.
//
// # Basic Usage
//
// Opening a file by extension:
//
//	src, err := reader.Open("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	fmt.Println(src.Header())
//	for {
//	    row, err := src.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(row)
//	}
//
// # Value Coercion
//
// Parquet cells are typed; every cell is coerced to text so the row stream
// is uniform across formats:
//
//   - null values become the literal string "NULL"
//   - booleans, integers and floats use their base-10 form
//   - DATE and TIMESTAMP columns render in calendar form
//   - unsupported kinds degrade to a <KIND> placeholder, never an error
//
// # Resource Management
//
// Always call Close() when done reading to release the file handle:
//
//	src, err := reader.Open("data.csv")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader

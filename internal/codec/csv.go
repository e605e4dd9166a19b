// Package codec reads and writes the 4-column delimited ledger format:
// a fixed header row followed by date, name, category and amount fields.
package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"registro/internal/core"
)

// Header is the fixed first row of the format.
var Header = []string{"Date", "Name", "Category", "Amount"}

// Write encodes records preceded by the header. Amounts carry exactly two
// decimal places; dates are written as stored.
func Write(w io.Writer, records []core.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes records to path, replacing any existing file. The parent
// directory is created when missing.
func Save(path string, records []core.Record) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes records from r. The first row is skipped when it matches the
// header case-insensitively. Malformed rows are skipped, not fatal: anything
// without exactly four fields or with an unparseable amount is dropped. A
// date the normalizer rejects is kept verbatim rather than dropping the row.
func Read(r io.Reader) ([]core.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	records := make([]core.Record, 0, len(rows))
	for i, fields := range rows {
		if i == 0 && isHeader(fields) {
			continue
		}
		if len(fields) != len(Header) {
			continue
		}
		amount, err := core.ParseAmount(fields[3])
		if err != nil {
			continue
		}
		date := fields[0]
		if iso, err := core.NormalizeDate(date); err == nil {
			date = iso
		}
		records = append(records, core.Record{
			Date:     date,
			Name:     fields[1],
			Category: fields[2],
			Amount:   amount,
		})
	}
	return records, nil
}

// Load reads the records stored at path.
func Load(path string) ([]core.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Append adds one record to the end of path, creating the file with a
// header first when it does not exist.
func Append(path string, r core.Record) error {
	if err := EnsureFile(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(row(r)); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EnsureFile creates a header-only file at path when none exists.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return Save(path, nil)
}

func row(r core.Record) []string {
	return []string{r.Date, r.Name, r.Category, core.FormatAmount(r.Amount)}
}

func isHeader(fields []string) bool {
	if len(fields) != len(Header) {
		return false
	}
	for i, f := range fields {
		if !strings.EqualFold(strings.TrimSpace(f), Header[i]) {
			return false
		}
	}
	return true
}

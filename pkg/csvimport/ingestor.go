package csvimport

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"

	"github.com/blumenos/gridadmin/pkg/serrors"
)

// Column describes one expected CSV column. Names are matched
// case-insensitively against the header row.
type Column struct {
	Name     string
	Required bool
	Example  string
}

// Schema is the fixed column layout of one entity's bulk-import file.
type Schema struct {
	Entity  string
	Columns []Column
}

func (s Schema) headerNames() []string {
	out := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, strings.ToLower(c.Name))
	}
	return out
}

func (s Schema) requiredNames() []string {
	out := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		if c.Required {
			out = append(out, strings.ToLower(c.Name))
		}
	}
	return out
}

// Row is one data line mapped by lowercased header name. Index is the
// 1-based data-row number used to tag errors.
type Row struct {
	Index  int
	Fields map[string]string
}

func (r Row) Get(name string) string {
	return strings.TrimSpace(r.Fields[strings.ToLower(name)])
}

// RowError tags a message with the 1-based row it came from. Row 0 marks a
// file-level (header) error.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) String() string {
	if e.Row == 0 {
		return e.Message
	}
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// Result accumulates one pass over the file. The batch may be submitted only
// when Errors is empty and at least one valid row exists.
type Result[T any] struct {
	Valid  []T
	Errors []RowError
}

func (r Result[T]) OK() bool {
	return len(r.Errors) == 0 && len(r.Valid) > 0
}

func (r Result[T]) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.String())
	}
	return out
}

// Binder validates and coerces one row into a typed record. A non-empty
// error map rejects the row.
type Binder[T any] func(row Row) (T, serrors.ValidationErrors)

// Ingest reads the whole file in one bounded pass. Line 1 is the header row:
// each cell is lowercased and trimmed, and every required column must be
// present or the import aborts with a single header-level error and no
// row-level parsing. Data lines are split on commas (no quoting support; a
// fixed limitation of the import format), rejected on column-count mismatch,
// mapped positionally by header name, and handed to bind.
func Ingest[T any](r io.Reader, schema Schema, bind Binder[T]) (Result[T], error) {
	var res Result[T]

	lines, err := readLines(r)
	if err != nil {
		return res, errors.Wrap(err, "read csv")
	}
	if len(lines) == 0 {
		res.Errors = append(res.Errors, RowError{Message: "File is empty"})
		return res, nil
	}

	header := splitLine(lines[0])
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	if missing := missingColumns(header, schema.requiredNames()); len(missing) > 0 {
		res.Errors = append(res.Errors, RowError{
			Message: "Missing required columns: " + strings.Join(missing, ", "),
		})
		return res, nil
	}

	for i, line := range lines[1:] {
		rowNum := i + 1
		cells := splitLine(line)
		if len(cells) != len(header) {
			res.Errors = append(res.Errors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("expected %d columns, got %d", len(header), len(cells)),
			})
			continue
		}

		fields := make(map[string]string, len(header))
		for j, name := range header {
			fields[name] = strings.TrimSpace(cells[j])
		}

		record, fieldErrs := bind(Row{Index: rowNum, Fields: fields})
		if !fieldErrs.Empty() {
			for _, msg := range orderedMessages(fieldErrs) {
				res.Errors = append(res.Errors, RowError{Row: rowNum, Message: msg})
			}
			continue
		}
		res.Valid = append(res.Valid, record)
	}

	return res, nil
}

func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	stripBOM(br)

	var lines []string
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func stripBOM(r *bufio.Reader) {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
}

func splitLine(line string) []string {
	return strings.Split(line, ",")
}

func missingColumns(header, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, req := range required {
		if _, ok := present[req]; !ok {
			missing = append(missing, req)
		}
	}
	return missing
}

// orderedMessages yields field error messages in a stable order so repeated
// imports report identically.
func orderedMessages(errs serrors.ValidationErrors) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, errs[k])
	}
	return out
}

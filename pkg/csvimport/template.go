package csvimport

import (
	"bytes"
	"strings"
)

// Template renders the downloadable import template for a schema: the
// lowercased header row followed by example rows built from column examples.
func Template(schema Schema) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(schema.headerNames(), ","))
	buf.WriteByte('\n')

	examples := make([]string, 0, len(schema.Columns))
	for _, c := range schema.Columns {
		examples = append(examples, c.Example)
	}
	buf.WriteString(strings.Join(examples, ","))
	buf.WriteByte('\n')
	return buf.Bytes()
}

// TemplateFilename is the suggested attachment name for a schema template.
func TemplateFilename(schema Schema) string {
	return strings.ToLower(schema.Entity) + "-import-template.csv"
}

package csvimport

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/pkg/serrors"
)

type meterRow struct {
	Code     string
	Capacity int
}

var meterSchema = Schema{
	Entity: "Meter",
	Columns: []Column{
		{Name: "Code", Required: true, Example: "MTR-001"},
		{Name: "Capacity", Required: true, Example: "500"},
	},
}

func bindMeter(row Row) (meterRow, serrors.ValidationErrors) {
	errs := serrors.ValidationErrors{}
	out := meterRow{Code: row.Get("code")}
	if out.Code == "" {
		errs["Code"] = "Code is required"
	}
	capacity, err := strconv.Atoi(row.Get("capacity"))
	if err != nil {
		errs["Capacity"] = "Capacity must be a number"
	}
	out.Capacity = capacity
	return out, errs
}

func TestIngest_AllRowsValid(t *testing.T) {
	t.Parallel()

	in := "code,capacity\nMTR-1,300\nMTR-2,500\nMTR-3,100\n"
	res, err := Ingest(strings.NewReader(in), meterSchema, bindMeter)
	require.NoError(t, err)

	assert.Len(t, res.Valid, 3, "valid-row count must equal the number of data lines")
	assert.Empty(t, res.Errors)
	assert.True(t, res.OK())
	assert.Equal(t, meterRow{Code: "MTR-2", Capacity: 500}, res.Valid[1])
}

func TestIngest_MissingRequiredHeader(t *testing.T) {
	t.Parallel()

	in := "code\nMTR-1\nMTR-2\n"
	res, err := Ingest(strings.NewReader(in), meterSchema, bindMeter)
	require.NoError(t, err)

	assert.Empty(t, res.Valid, "no row-level parsing after a header failure")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Missing required columns: capacity", res.Errors[0].String())
}

func TestIngest_NonNumericField(t *testing.T) {
	t.Parallel()

	in := "code,capacity\nMTR-1,300\nMTR-2,abc\n"
	res, err := Ingest(strings.NewReader(in), meterSchema, bindMeter)
	require.NoError(t, err)

	assert.Len(t, res.Valid, 1)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 2, res.Errors[0].Row)
	assert.Equal(t, "Row 2: Capacity must be a number", res.Errors[0].String())
	assert.False(t, res.OK())
}

func TestIngest_ColumnCountMismatch(t *testing.T) {
	t.Parallel()

	in := "code,capacity\nMTR-1,300,extra\n"
	res, err := Ingest(strings.NewReader(in), meterSchema, bindMeter)
	require.NoError(t, err)

	assert.Empty(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 1: expected 2 columns, got 3", res.Errors[0].String())
}

func TestIngest_HeaderCaseInsensitiveAndBOM(t *testing.T) {
	t.Parallel()

	in := "\xEF\xBB\xBFCode,CAPACITY\nMTR-1,300\n"
	res, err := Ingest(strings.NewReader(in), meterSchema, bindMeter)
	require.NoError(t, err)

	assert.Empty(t, res.Errors)
	require.Len(t, res.Valid, 1)
	assert.Equal(t, "MTR-1", res.Valid[0].Code)
}

func TestIngest_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	in := "code,capacity\n\nMTR-1,300\n\n\nMTR-2,400\n"
	res, err := Ingest(strings.NewReader(in), meterSchema, bindMeter)
	require.NoError(t, err)

	assert.Len(t, res.Valid, 2)
	assert.Empty(t, res.Errors)
}

func TestIngest_EmptyFile(t *testing.T) {
	t.Parallel()

	res, err := Ingest(strings.NewReader(""), meterSchema, bindMeter)
	require.NoError(t, err)

	assert.Empty(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "File is empty", res.Errors[0].String())
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	got := string(Template(meterSchema))
	assert.Equal(t, "code,capacity\nMTR-001,500\n", got)
	assert.Equal(t, "meter-import-template.csv", TemplateFilename(meterSchema))
}

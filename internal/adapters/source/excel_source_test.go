package source_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mikey/lead-triage/internal/adapters/source"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/utils"
)

func newExcelSource(sheet string) *source.ExcelSource {
	logger := zap.NewNop()
	return source.NewExcelSource(sheet, logger, utils.NewTextProcessor(logger))
}

func workbook(t *testing.T, sheet string, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestExcelSource_Load(t *testing.T) {
	buf := workbook(t, "Leads", [][]any{
		{"Name", "Phone number", "Remarks", "Language", "Name"},
		{"Ann", 5551234, "Call back", "CHI", "dup"},
		{"Bob", nil, nil, "ENG"},
		{"Cat", 2.5, true, nil},
	})

	table, err := newExcelSource("").Load(buf)
	require.NoError(t, err)

	assert.Equal(t, "Leads", table.Source)
	assert.Equal(t, []string{"Name", "Phone number", "Remarks", "Language", "Name.1"}, table.Columns)
	require.Len(t, table.Records, 3)

	ann := table.Records[0]
	assert.Equal(t, 2, ann.Row)
	phone, ok := ann.Phone()
	require.True(t, ok)
	assert.Equal(t, 5551234.0, phone)
	remarks, _ := ann.Remarks()
	assert.Equal(t, "Call back", remarks)
	dup, _ := ann.Text("Name.1")
	assert.Equal(t, "dup", dup)

	bob := table.Records[1]
	_, ok = bob.Phone()
	assert.False(t, ok)
	v, present := bob.Get(core.ColumnRemarks)
	assert.True(t, present)
	assert.Nil(t, v)

	cat := table.Records[2]
	phone, _ = cat.Phone()
	assert.Equal(t, 2.5, phone)
	v, _ = cat.Get(core.ColumnRemarks)
	assert.Equal(t, true, v)
	_, ok = cat.Remarks()
	assert.False(t, ok)
}

func TestExcelSource_NamedSheet(t *testing.T) {
	buf := workbook(t, "Leads", [][]any{{"Name"}, {"Ann"}})

	table, err := newExcelSource("Leads").Load(buf)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)

	buf = workbook(t, "Leads", [][]any{{"Name"}, {"Ann"}})
	_, err = newExcelSource("Missing").Load(buf)
	assert.True(t, errors.Is(err, core.ErrLoadFailed))
}

func TestExcelSource_HeaderOnly(t *testing.T) {
	buf := workbook(t, "Sheet1", [][]any{{"Name", "Remarks"}})

	table, err := newExcelSource("").Load(buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Remarks"}, table.Columns)
	assert.Empty(t, table.Records)
}

func TestExcelSource_NotAWorkbook(t *testing.T) {
	_, err := newExcelSource("").Load(strings.NewReader("Name,Remarks\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrLoadFailed))
}

func TestExcelSource_FormattedNumbers(t *testing.T) {
	assigned := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	buf := workbook(t, "Sheet1", [][]any{
		{"Name", "Remarks", "Assigned on"},
		{"Ann", assigned, assigned},
	})

	table, err := newExcelSource("").Load(buf)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	rec := table.Records[0]

	remarks, _ := rec.Get(core.ColumnRemarks)
	assert.IsType(t, 0.0, remarks)
	assert.Equal(t, core.CategoryUnknown, core.Categorize(remarks, core.DefaultKeywordSets()))

	shown, ok := rec.AssignedOn()
	require.True(t, ok)
	text, isText := shown.(string)
	require.True(t, isText)
	assert.NotEmpty(t, text)
	assert.NotEqual(t, remarks, shown)
}

package source_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/lead-triage/internal/adapters/source"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/utils"
)

func newCSVSource() *source.CSVSource {
	logger := zap.NewNop()
	return source.NewCSVSource(logger, utils.NewTextProcessor(logger))
}

func TestCSVSource_Load(t *testing.T) {
	input := "\ufeffName,Remarks,Language\n" +
		"Ann,\"call back, maybe\",CHI\n" +
		"Bob,,ENG\n" +
		"Cat\n"

	table, err := newCSVSource().Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Remarks", "Language"}, table.Columns)
	require.Len(t, table.Records, 3)

	ann := table.Records[0]
	assert.Equal(t, 2, ann.Row)
	remarks, ok := ann.Remarks()
	assert.True(t, ok)
	assert.Equal(t, "call back, maybe", remarks)

	v, present := table.Records[1].Get(core.ColumnRemarks)
	assert.True(t, present)
	assert.Nil(t, v)

	lang, present := table.Records[2].Get(core.ColumnLanguage)
	assert.True(t, present)
	assert.Nil(t, lang)
}

func TestCSVSource_Empty(t *testing.T) {
	table, err := newCSVSource().Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Records)
}

func TestCSVSource_ReadError(t *testing.T) {
	_, err := newCSVSource().Load(iotest.ErrReader(errors.New("disk gone")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrLoadFailed))
}

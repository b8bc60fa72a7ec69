package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/lead-triage/internal/adapters/cache"
	"github.com/mikey/lead-triage/internal/adapters/export"
	"github.com/mikey/lead-triage/internal/adapters/filter"
	"github.com/mikey/lead-triage/internal/adapters/source"
	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/utils"
)

func newConfig() *config.Config {
	return config.NewFromViper(config.NewEmptyViper())
}

func TestSourceFactory_CreateLeadSource(t *testing.T) {
	logger := zap.NewNop()
	f := NewSourceFactory(newConfig(), logger, utils.NewTextProcessor(logger))

	src, err := f.CreateLeadSource("leads.XLSX")
	require.NoError(t, err)
	assert.IsType(t, &source.ExcelSource{}, src)

	src, err = f.CreateLeadSource("leads.csv")
	require.NoError(t, err)
	assert.IsType(t, &source.CSVSource{}, src)

	_, err = f.CreateLeadSource("leads.xls")
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))

	_, err = f.CreateLeadSource("leads.txt")
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))
}

func TestExportFactory_CreateExporter(t *testing.T) {
	f := NewExportFactory(newConfig(), zap.NewNop())

	e, err := f.CreateExporter("out.xlsx")
	require.NoError(t, err)
	assert.IsType(t, &export.ExcelExporter{}, e)

	e, err = f.CreateExporter("out.json")
	require.NoError(t, err)
	assert.IsType(t, &export.JSONExporter{}, e)

	_, err = f.CreateExporter("out.csv")
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))
}

func TestCacheFactory(t *testing.T) {
	cfg := newConfig()
	f := NewCacheFactory(cfg, zap.NewNop())
	assert.True(t, f.IsCacheEnabled())
	assert.IsType(t, &cache.MemoryCache{}, f.CreateMatchCache())

	cfg.Set("cache.enabled", false)
	assert.False(t, f.IsCacheEnabled())
	assert.Nil(t, f.CreateMatchCache())
}

func TestMatcherFactory(t *testing.T) {
	cfg := newConfig()
	f := NewMatcherFactory(cfg, zap.NewNop())

	_, err := f.CreateMatcherBuilder()
	require.NoError(t, err)

	cfg.Set("matching.engine", "bogus")
	_, err = f.CreateMatcherBuilder()
	assert.Error(t, err)
}

func TestRendererFactory(t *testing.T) {
	logger := zap.NewNop()
	r := NewRendererFactory(newConfig(), logger, utils.NewTextProcessor(logger)).CreateRenderer()
	assert.IsType(t, &filter.CliRenderer{}, r)
}

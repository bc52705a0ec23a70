package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/interfaces"
	"github.com/secmon-lab/indiviz/pkg/utils/safe"
)

// ChartConfig holds configuration for Chart use case
type ChartConfig struct {
	outputDir string
}

// ChartOption is a functional option for configuring Chart
type ChartOption func(*ChartConfig)

// WithOutputDir sets the directory images are written to
func WithOutputDir(dir string) ChartOption {
	return func(c *ChartConfig) {
		c.outputDir = dir
	}
}

// NewChartConfig creates a new ChartConfig with default values and optional settings
func NewChartConfig(opts ...ChartOption) *ChartConfig {
	config := &ChartConfig{
		outputDir: ".",
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Chart loads indicator tables and turns them into chart images
type Chart struct {
	reader   interfaces.SheetReader
	renderer interfaces.ChartRenderer
	store    interfaces.TableStore
	config   *ChartConfig
}

// NewChart creates a new Chart instance
func NewChart(reader interfaces.SheetReader, renderer interfaces.ChartRenderer, store interfaces.TableStore, config *ChartConfig) *Chart {
	if config == nil {
		config = NewChartConfig()
	}
	return &Chart{
		reader:   reader,
		renderer: renderer,
		store:    store,
		config:   config,
	}
}

// save writes one image through draw. A failed or panicking draw leaves no
// file behind.
func (u *Chart) save(ctx context.Context, name string, draw func(w io.Writer) error) (path string, err error) {
	if err := os.MkdirAll(u.config.outputDir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create output directory", goerr.V("dir", u.config.outputDir))
	}

	path = filepath.Join(u.config.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create image file", goerr.V("path", path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = goerr.Wrap(cerr, "failed to close image file", goerr.V("path", path))
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := safe.Call(ctx, func(ctx context.Context) error { return draw(f) }); err != nil {
		return "", goerr.Wrap(err, "failed to render chart", goerr.V("path", path))
	}

	ctxlog.From(ctx).Info("chart saved", "path", path)
	return path, nil
}

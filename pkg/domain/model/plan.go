package model

import (
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/types"
)

// Source is a named indicator spreadsheet
type Source struct {
	Name types.SourceName `yaml:"name"`
	Path string           `yaml:"path"`
}

// Validate validates the source
func (s *Source) Validate() error {
	if s.Name == "" {
		return goerr.New("source name is required")
	}
	if s.Path == "" {
		return goerr.New("source path is required", goerr.V("name", s.Name))
	}
	return nil
}

// IndicatorRef points a heatmap axis at a source
type IndicatorRef struct {
	Source types.SourceName `yaml:"source"`
	Label  string           `yaml:"label"`
}

// ChartJob describes one chart to render
type ChartJob struct {
	Type types.ChartType `yaml:"type"`

	// line and bar
	Source   types.SourceName `yaml:"source,omitempty"`
	Entities []string         `yaml:"entities,omitempty"`
	Labels   AxisLabels       `yaml:"labels,omitempty"`
	// Years is the inclusive [start, end] range of a bar chart. Empty means
	// the full year range of the table.
	Years []int `yaml:"years,omitempty"`

	// heatmap
	Entity     string         `yaml:"entity,omitempty"`
	Indicators []IndicatorRef `yaml:"indicators,omitempty"`
}

// Validate validates the chart job
func (j *ChartJob) Validate() error {
	if !j.Type.IsValid() {
		return goerr.New("invalid chart type", goerr.V("type", j.Type))
	}

	switch j.Type {
	case types.ChartTypeLine, types.ChartTypeBar:
		if j.Source == "" {
			return goerr.New("chart source is required", goerr.V("type", j.Type))
		}
		if len(j.Entities) == 0 {
			return goerr.New("at least one entity is required", goerr.V("type", j.Type))
		}
		if err := j.Labels.Validate(); err != nil {
			return goerr.Wrap(err, "invalid labels", goerr.V("type", j.Type))
		}
		if j.Type == types.ChartTypeBar && len(j.Years) > 0 {
			if len(j.Years) != 2 {
				return goerr.New("year range must have exactly two values", goerr.V("years", j.Years))
			}
			if j.Years[0] > j.Years[1] {
				return goerr.New("year range start is after end", goerr.V("years", j.Years))
			}
		}

	case types.ChartTypeHeatmap:
		if j.Entity == "" {
			return goerr.New("heatmap entity is required")
		}
		if len(j.Indicators) == 0 {
			return goerr.New("heatmap needs at least one indicator",
				goerr.V("entity", j.Entity),
				goerr.V("indicators", len(j.Indicators)))
		}
		for i, ind := range j.Indicators {
			if ind.Source == "" || ind.Label == "" {
				return goerr.New("indicator requires source and label",
					goerr.V("index", i),
					goerr.V("entity", j.Entity))
			}
		}
	}
	return nil
}

// SourceNames returns every source referenced by the job
func (j *ChartJob) SourceNames() []types.SourceName {
	if j.Type == types.ChartTypeHeatmap {
		names := make([]types.SourceName, len(j.Indicators))
		for i, ind := range j.Indicators {
			names[i] = ind.Source
		}
		return names
	}
	return []types.SourceName{j.Source}
}

// Plan is the full rendering configuration: the sources to load and the
// charts to draw from them, in order.
type Plan struct {
	Sources []Source   `yaml:"sources"`
	Charts  []ChartJob `yaml:"charts"`
}

// Validate validates the entire plan
func (p *Plan) Validate() error {
	if len(p.Sources) == 0 {
		return goerr.New("at least one source is required")
	}
	if len(p.Charts) == 0 {
		return goerr.New("at least one chart is required")
	}

	names := make(map[types.SourceName]bool)
	for i, src := range p.Sources {
		if err := src.Validate(); err != nil {
			return goerr.Wrap(err, "invalid source at index", goerr.V("index", i))
		}
		if names[src.Name] {
			return goerr.New("duplicate source name", goerr.V("name", src.Name))
		}
		names[src.Name] = true
	}

	for i, job := range p.Charts {
		if err := job.Validate(); err != nil {
			return goerr.Wrap(err, "invalid chart at index", goerr.V("index", i))
		}
		for _, name := range job.SourceNames() {
			if !names[name] {
				return goerr.New("chart refers to unknown source",
					goerr.V("index", i),
					goerr.V("source", name))
			}
		}
	}
	return nil
}

// FindSource finds a source by its name
func (p *Plan) FindSource(name types.SourceName) *Source {
	for _, src := range p.Sources {
		if src.Name == name {
			result := src
			return &result
		}
	}
	return nil
}

// WithBaseDir returns a copy of the plan whose relative source paths are
// resolved against dir
func (p *Plan) WithBaseDir(dir string) *Plan {
	out := &Plan{
		Sources: make([]Source, len(p.Sources)),
		Charts:  p.Charts,
	}
	for i, src := range p.Sources {
		if dir != "" && !filepath.IsAbs(src.Path) {
			src.Path = filepath.Join(dir, src.Path)
		}
		out.Sources[i] = src
	}
	return out
}

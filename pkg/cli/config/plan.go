package config

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed default_plan.yaml
var defaultPlan []byte

// Plan holds the chart plan configuration
type Plan struct {
	Path    string
	DataDir string
}

// Flags returns CLI flags for Plan configuration
func (p *Plan) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Chart plan YAML file (built-in plan when empty)",
			Category:    "Plan",
			Sources:     cli.EnvVars("INDIVIZ_CONFIG"),
			Destination: &p.Path,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Aliases:     []string{"d"},
			Usage:       "Base directory of relative source paths",
			Category:    "Plan",
			Sources:     cli.EnvVars("INDIVIZ_DATA_DIR"),
			Destination: &p.DataDir,
		},
	}
}

// Configure loads the plan and resolves its source paths against DataDir
func (p *Plan) Configure() (*model.Plan, error) {
	var (
		plan *model.Plan
		err  error
	)
	if p.Path == "" {
		plan, err = ParsePlan(defaultPlan)
	} else {
		plan, err = LoadPlanFromFile(p.Path)
	}
	if err != nil {
		return nil, err
	}
	return plan.WithBaseDir(p.DataDir), nil
}

// LogValue returns structured log value
func (p Plan) LogValue() slog.Value {
	path := p.Path
	if path == "" {
		path = "(built-in)"
	}
	return slog.GroupValue(
		slog.String("path", path),
		slog.String("data_dir", p.DataDir),
	)
}

// LoadPlanFromFile loads a chart plan from YAML file
func LoadPlanFromFile(path string) (*model.Plan, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	plan, err := ParsePlan(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid configuration", goerr.V("path", path))
	}
	return plan, nil
}

// ParsePlan decodes and validates a YAML chart plan
func ParsePlan(data []byte) (*model.Plan, error) {
	var plan model.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration")
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

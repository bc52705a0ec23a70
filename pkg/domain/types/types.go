package types

import (
	"github.com/google/uuid"
)

// RunID identifies a single invocation of the renderer
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID using UUID v7
func NewRunID() (RunID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return RunID(id.String()), nil
}

// SourceName is the name under which an indicator source is registered in a plan
type SourceName string

// String returns the string representation
func (n SourceName) String() string {
	return string(n)
}

// ChartType represents the kind of chart produced by a plan entry
type ChartType string

const (
	ChartTypeLine    ChartType = "line"
	ChartTypeBar     ChartType = "bar"
	ChartTypeHeatmap ChartType = "heatmap"
)

// String returns the string representation of the chart type
func (t ChartType) String() string {
	return string(t)
}

// IsValid checks if the chart type is known
func (t ChartType) IsValid() bool {
	switch t {
	case ChartTypeLine, ChartTypeBar, ChartTypeHeatmap:
		return true
	default:
		return false
	}
}

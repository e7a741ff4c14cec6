// Package charts defines declarative chart descriptors handed off to an
// external plotting facility. The server never renders anything: the only
// contract is the shape of the description (traces of numeric/categorical
// pairs plus a title and color list), so the package is pure data.
package charts

// TraceType identifies the series style of a trace.
type TraceType string

const (
	TraceBar       TraceType = "bar"
	TracePie       TraceType = "pie"
	TraceScatter   TraceType = "scatter"
	TraceHistogram TraceType = "histogram"
	TraceFunnel    TraceType = "funnel"
	TraceIndicator TraceType = "indicator"
)

// Trace is one series of a figure. Which fields are meaningful depends on
// the trace type, mirroring the plotting library's schema.
type Trace struct {
	Type   TraceType `json:"type"`
	Name   string    `json:"name,omitempty"`
	X      []any     `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Colors []string  `json:"colors,omitempty"`

	// Scatter styling.
	Mode      string `json:"mode,omitempty"`
	Fill      string `json:"fill,omitempty"`
	FillColor string `json:"fill_color,omitempty"`
	LineColor string `json:"line_color,omitempty"`
	LineWidth int    `json:"line_width,omitempty"`

	// Pie styling.
	Hole float64 `json:"hole,omitempty"`

	// Histogram styling.
	NBins int `json:"nbins,omitempty"`

	// Indicator (gauge) configuration.
	Gauge *Gauge `json:"gauge,omitempty"`
}

// Gauge configures an indicator trace.
type Gauge struct {
	Value          float64     `json:"value"`
	DeltaReference float64     `json:"delta_reference,omitempty"`
	AxisMax        float64     `json:"axis_max,omitempty"`
	BarColor       string      `json:"bar_color,omitempty"`
	Steps          []GaugeStep `json:"steps,omitempty"`
	Threshold      float64     `json:"threshold,omitempty"`
	ThresholdColor string      `json:"threshold_color,omitempty"`
}

// GaugeStep is one colored band of a gauge axis.
type GaugeStep struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// Figure is a complete declarative chart description. It is created per
// handler invocation and never cached or reused.
type Figure struct {
	Title      string  `json:"title,omitempty"`
	Template   string  `json:"template,omitempty"`
	XAxisTitle string  `json:"xaxis_title,omitempty"`
	YAxisTitle string  `json:"yaxis_title,omitempty"`
	BarMode    string  `json:"bar_mode,omitempty"`
	ShowLegend bool    `json:"show_legend"`
	Height     int     `json:"height,omitempty"`
	Traces     []Trace `json:"traces"`
}

// New creates a figure with the dark template used throughout the demo.
func New(title string) *Figure {
	return &Figure{Title: title, Template: "plotly_dark"}
}

// Add appends a trace and returns the figure for chaining.
func (f *Figure) Add(t Trace) *Figure {
	f.Traces = append(f.Traces, t)
	return f
}

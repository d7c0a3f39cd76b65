package profiles

// NormalizerSpec remaps Input onto Output, [-1, 1] when Output is unset.
type NormalizerSpec struct {
	Input  Float2  `yaml:"input"`
	Output *Float2 `yaml:"output,omitempty"`
}

// AxisSettingsSpec describes a settings.SingleAxis. A nil Deadzone keeps
// the default symmetric deadzone, 0 disables it.
type AxisSettingsSpec struct {
	Sensitivity *float32        `yaml:"sensitivity,omitempty"`
	Inverted    bool            `yaml:"inverted,omitempty"`
	InputLimit  *RangeSpec      `yaml:"input_limit,omitempty"`
	Normalizer  *NormalizerSpec `yaml:"normalizer,omitempty"`
	Deadzone    *float32        `yaml:"deadzone,omitempty"`
	OutputScale *float32        `yaml:"output_scale,omitempty"`
	OutputLimit *RangeSpec      `yaml:"output_limit,omitempty"`
}

// DualDeadzoneSpec selects a settings.DualDeadzone by shape: none, circle,
// square or rounded_square.
type DualDeadzoneSpec struct {
	Shape      string  `yaml:"shape"`
	ThresholdX float32 `yaml:"threshold_x,omitempty"`
	ThresholdY float32 `yaml:"threshold_y,omitempty"`
	RadiusX    float32 `yaml:"radius_x,omitempty"`
	RadiusY    float32 `yaml:"radius_y,omitempty"`
}

const (
	shapeNone          = "none"
	shapeCircle        = "circle"
	shapeSquare        = "square"
	shapeRoundedSquare = "rounded_square"
)

// StickSettingsSpec describes a settings.DualAxis.
type StickSettingsSpec struct {
	RawScales       *Float2           `yaml:"raw_scales,omitempty"`
	InvertX         bool              `yaml:"invert_x,omitempty"`
	InvertY         bool              `yaml:"invert_y,omitempty"`
	RawLimits       *DualRangeSpec    `yaml:"raw_limits,omitempty"`
	NormalizerX     *NormalizerSpec   `yaml:"normalizer_x,omitempty"`
	NormalizerY     *NormalizerSpec   `yaml:"normalizer_y,omitempty"`
	Deadzone        *DualDeadzoneSpec `yaml:"deadzone,omitempty"`
	ProcessedScales *Float2           `yaml:"processed_scales,omitempty"`
	ProcessedLimits *DualRangeSpec    `yaml:"processed_limits,omitempty"`
}

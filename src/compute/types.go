package compute

// Wire types for the remote viscosity computation service. Field names
// follow the service's JSON contract exactly.

// VIRequest carries two reference (viscosity, temperature) pairs.
type VIRequest struct {
	V1 float64 `json:"v1"`
	T1 float64 `json:"t1"`
	V2 float64 `json:"v2"`
	T2 float64 `json:"t2"`
}

// VIResponse returns the viscosities at 40/100 °C and the viscosity index.
type VIResponse struct {
	V40  float64 `json:"v40"`
	V100 float64 `json:"v100"`
	VI   float64 `json:"vi"`
}

// TemperatureRequest asks for the viscosity/temperature table and,
// optionally, the viscosity at a target temperature.
type TemperatureRequest struct {
	V1     float64  `json:"v1"`
	T1     float64  `json:"t1"`
	V2     float64  `json:"v2"`
	T2     float64  `json:"t2"`
	Target *float64 `json:"target,omitempty"`
}

// TablePoint is one (temperature, viscosity) sample of the response table.
type TablePoint struct {
	Temperature float64 `json:"temperature"`
	Viscosity   float64 `json:"viscosity"`
}

// TemperatureResponse carries the Walther parameters, the sampled table
// and the optional target viscosity.
type TemperatureResponse struct {
	Slope           float64      `json:"slope"`
	Intercept       float64      `json:"intercept"`
	Table           []TablePoint `json:"table"`
	TargetViscosity *float64     `json:"targetViscosity,omitempty"`
}

// Component is one mixture or known-component entry.
type Component struct {
	Percent   float64 `json:"percent"`
	Viscosity float64 `json:"viscosity"`
}

// MixtureRequest blends components whose percentages sum to 100.
type MixtureRequest struct {
	Components []Component `json:"components"`
}

// MixtureResponse returns the blended viscosity.
type MixtureResponse struct {
	Viscosity float64 `json:"viscosity"`
}

// Mix2Request solves for the two base proportions reaching a target
// viscosity next to already-known components.
type Mix2Request struct {
	TargetViscosity float64     `json:"targetViscosity"`
	BaseAViscosity  float64     `json:"baseAViscosity"`
	BaseBViscosity  float64     `json:"baseBViscosity"`
	KnownComponents []Component `json:"knownComponents"`
}

// Mix2Response returns the two base percentages.
type Mix2Response struct {
	PercentA float64 `json:"percentA"`
	PercentB float64 `json:"percentB"`
}

// SolverComponent is one constrained component. Value/Min/Max are pointers
// because only the fields relevant to the constraint kind are submitted.
type SolverComponent struct {
	Viscosity float64  `json:"viscosity"`
	Type      string   `json:"type"`
	Value     *float64 `json:"value,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

// SolverConstraint constrains the overall mixture viscosity.
type SolverConstraint struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// SolverRequest is the constrained multi-component design problem.
type SolverRequest struct {
	Components []SolverComponent `json:"components"`
	Mixture    SolverConstraint  `json:"mixture"`
}

// SolverResponse maps component index (as emitted by the service, a string
// key) to its percentage, plus the resulting mixture viscosity.
type SolverResponse struct {
	Fractions map[string]float64 `json:"fractions"`
	Viscosity float64            `json:"viscosity"`
}

// Package forms turns raw field strings and dynamic row tables into
// requests for the computation service, applying the client-side
// validation rules. It is UI-free so the rules are testable without a
// window; the viewer and the CLI both build on it.
package forms

import (
	"errors"
	"math"
	"strconv"

	"github.com/ramorimdias/viscobat/src/compute"
	"github.com/ramorimdias/viscobat/src/rows"
)

// SumEpsilon is the tolerance on the mixture percentage sum.
const SumEpsilon = 1e-6

// Validation sentinels. The viewer maps them to localized messages.
var (
	ErrNoComponents = errors.New("no valid components")
	ErrSumNot100    = errors.New("percentages do not sum to 100")
)

// FieldError marks a single unparsable input field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return "invalid value: " + e.Field }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func parseField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !finite(v) {
		return 0, &FieldError{Field: name}
	}
	return v, nil
}

// Components extracts the valid component rows of a mixture-style table:
// a row counts when its percent parses to a finite value > 0 and its
// viscosity parses to a finite value. Other rows are skipped, matching the
// behaviour of half-filled trailing rows in the UI.
func Components(t *rows.Table) []compute.Component {
	var out []compute.Component
	for _, r := range t.Rows() {
		p, err := strconv.ParseFloat(r.Value("percent"), 64)
		if err != nil || !finite(p) || p <= 0 {
			continue
		}
		v, err := strconv.ParseFloat(r.Value("viscosity"), 64)
		if err != nil || !finite(v) {
			continue
		}
		out = append(out, compute.Component{Percent: p, Viscosity: v})
	}
	return out
}

// BuildVI assembles the viscosity-index request from the four fixed fields.
func BuildVI(v1, t1, v2, t2 string) (compute.VIRequest, error) {
	var req compute.VIRequest
	var err error
	if req.V1, err = parseField("v1", v1); err != nil {
		return req, err
	}
	if req.T1, err = parseField("t1", t1); err != nil {
		return req, err
	}
	if req.V2, err = parseField("v2", v2); err != nil {
		return req, err
	}
	if req.T2, err = parseField("t2", t2); err != nil {
		return req, err
	}
	return req, nil
}

// BuildTemperature assembles the viscosity/temperature request. An empty
// target leaves the field out of the payload.
func BuildTemperature(v1, t1, v2, t2, target string) (compute.TemperatureRequest, error) {
	vi, err := BuildVI(v1, t1, v2, t2)
	if err != nil {
		return compute.TemperatureRequest{}, err
	}
	req := compute.TemperatureRequest{V1: vi.V1, T1: vi.T1, V2: vi.V2, T2: vi.T2}
	if target != "" {
		tv, err := parseField("target", target)
		if err != nil {
			return req, err
		}
		req.Target = &tv
	}
	return req, nil
}

// BuildMixture validates the mixture table locally: at least one valid
// component and percentages summing to 100 within SumEpsilon. On failure
// no request is issued.
func BuildMixture(t *rows.Table) (compute.MixtureRequest, error) {
	comps := Components(t)
	if len(comps) == 0 {
		return compute.MixtureRequest{}, ErrNoComponents
	}
	sum := 0.0
	for _, c := range comps {
		sum += c.Percent
	}
	if math.Abs(sum-100) > SumEpsilon {
		return compute.MixtureRequest{}, ErrSumNot100
	}
	return compute.MixtureRequest{Components: comps}, nil
}

// BuildMix2 assembles the two-base request. Known components are optional
// and filtered with the same validity rule as mixture components.
func BuildMix2(target, baseA, baseB string, known *rows.Table) (compute.Mix2Request, error) {
	var req compute.Mix2Request
	var err error
	if req.TargetViscosity, err = parseField("targetViscosity", target); err != nil {
		return req, err
	}
	if req.BaseAViscosity, err = parseField("baseAViscosity", baseA); err != nil {
		return req, err
	}
	if req.BaseBViscosity, err = parseField("baseBViscosity", baseB); err != nil {
		return req, err
	}
	if known != nil {
		req.KnownComponents = Components(known)
	}
	return req, nil
}

// BuildSolver assembles the solver request from the constraint table and
// the mixture constraint fields. Rows without a parsable viscosity are
// skipped; an active sub-field that does not parse is an error, because a
// partially specified constraint would silently change the problem.
func BuildSolver(t *rows.Table, mixKind rows.Kind, mixValue, mixMin, mixMax string) (compute.SolverRequest, error) {
	var req compute.SolverRequest
	for _, r := range t.Rows() {
		v, err := strconv.ParseFloat(r.Value("viscosity"), 64)
		if err != nil || !finite(v) {
			continue
		}
		kind := rows.ParseKind(r.Value("type"))
		comp := compute.SolverComponent{Viscosity: v, Type: string(kind)}
		needValue, needMinMax := kind.ActiveFields()
		if needValue {
			val, err := parseField("value", r.Value("value"))
			if err != nil {
				return req, err
			}
			comp.Value = &val
		}
		if needMinMax {
			mn, err := parseField("min", r.Value("min"))
			if err != nil {
				return req, err
			}
			mx, err := parseField("max", r.Value("max"))
			if err != nil {
				return req, err
			}
			comp.Min = &mn
			comp.Max = &mx
		}
		req.Components = append(req.Components, comp)
	}
	if len(req.Components) == 0 {
		return req, ErrNoComponents
	}

	req.Mixture = compute.SolverConstraint{Type: string(mixKind)}
	needValue, needMinMax := mixKind.ActiveFields()
	if needValue {
		val, err := parseField("mixtureValue", mixValue)
		if err != nil {
			return req, err
		}
		req.Mixture.Value = &val
	}
	if needMinMax {
		mn, err := parseField("mixtureMin", mixMin)
		if err != nil {
			return req, err
		}
		mx, err := parseField("mixtureMax", mixMax)
		if err != nil {
			return req, err
		}
		req.Mixture.Min = &mn
		req.Mixture.Max = &mx
	}
	return req, nil
}

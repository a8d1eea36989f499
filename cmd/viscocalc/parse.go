package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ramorimdias/viscobat/src/compute"
	"github.com/ramorimdias/viscobat/src/rows"
)

// parseComponent parses a "percent:viscosity" argument.
func parseComponent(s string) (compute.Component, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return compute.Component{}, fmt.Errorf("component %q: want percent:viscosity", s)
	}
	p, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return compute.Component{}, fmt.Errorf("component %q: bad percent: %w", s, err)
	}
	v, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return compute.Component{}, fmt.Errorf("component %q: bad viscosity: %w", s, err)
	}
	return compute.Component{Percent: p, Viscosity: v}, nil
}

func parseComponents(args []string) ([]compute.Component, error) {
	out := make([]compute.Component, 0, len(args))
	for _, a := range args {
		c, err := parseComponent(a)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// parseSolverComponent parses a "viscosity[:kind[:a[:b]]]" argument:
// free, objectiveMin and objectiveMax take no extras, setValue takes its
// value as a, range takes min as a and max as b.
func parseSolverComponent(s string) (compute.SolverComponent, error) {
	parts := strings.Split(s, ":")
	v, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return compute.SolverComponent{}, fmt.Errorf("constraint %q: bad viscosity: %w", s, err)
	}
	kind := rows.KindFree
	if len(parts) > 1 {
		kind = rows.ParseKind(parts[1])
	}
	comp := compute.SolverComponent{Viscosity: v, Type: string(kind)}

	needValue, needMinMax := kind.ActiveFields()
	switch {
	case needValue:
		if len(parts) < 3 {
			return comp, fmt.Errorf("constraint %q: setValue needs a value", s)
		}
		val, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return comp, fmt.Errorf("constraint %q: bad value: %w", s, err)
		}
		comp.Value = &val
	case needMinMax:
		if len(parts) < 4 {
			return comp, fmt.Errorf("constraint %q: range needs min and max", s)
		}
		mn, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return comp, fmt.Errorf("constraint %q: bad min: %w", s, err)
		}
		mx, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return comp, fmt.Errorf("constraint %q: bad max: %w", s, err)
		}
		comp.Min = &mn
		comp.Max = &mx
	}
	return comp, nil
}

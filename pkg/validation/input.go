package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gbistila/bidupgradestest/pkg/bid"
)

// ValidateInput checks that both measurements are finite and strictly
// positive. Only a Valid report permits bid.Compute.
func ValidateInput(in bid.Input) *Report {
	r := NewReport()
	checkMeasurement(r, LevelInput, "area_sq_ft", "area", in.AreaSqFt)
	checkMeasurement(r, LevelInput, "thickness_inches", "thickness", in.ThicknessInches)
	return r
}

// ParseInput turns raw field text into an Input. Surrounding whitespace is
// ignored; anything else that is not a plain number is an error.
func ParseInput(area, thickness string) (bid.Input, *Report) {
	r := NewReport()
	var in bid.Input

	if v, ok := parseField(r, "area_sq_ft", "area", area); ok {
		in.AreaSqFt = v
		checkMeasurement(r, LevelInput, "area_sq_ft", "area", v)
	}
	if v, ok := parseField(r, "thickness_inches", "thickness", thickness); ok {
		in.ThicknessInches = v
		checkMeasurement(r, LevelInput, "thickness_inches", "thickness", v)
	}
	return in, r
}

func parseField(r *Report, path, name, raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		r.AddError(Result{
			Level:    LevelInput,
			Message:  fmt.Sprintf("%s is required", name),
			Path:     path,
			Expected: "a number > 0",
		})
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("%s must be a number", name),
			Path:        path,
			ActualValue: raw,
			Expected:    "a number > 0",
		})
		return 0, false
	}
	return v, true
}

func checkMeasurement(r *Report, level Level, path, name string, v float64) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		r.AddError(Result{
			Level:       level,
			Message:     fmt.Sprintf("%s must be a finite number", name),
			Path:        path,
			ActualValue: fmt.Sprint(v),
			Expected:    "finite",
		})
	case v <= 0:
		r.AddError(Result{
			Level:       level,
			Message:     fmt.Sprintf("%s must be greater than 0", name),
			Path:        path,
			ActualValue: v,
			Expected:    "> 0",
		})
	}
}

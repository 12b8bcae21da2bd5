package validation

import (
	"strings"

	"github.com/gbistila/bidupgradestest/pkg/spec"
)

// ValidateJob performs schema validation on a parsed job file. Slab
// measurements get the same checks as interactive input.
func ValidateJob(s *spec.JobSpec) *Report {
	r := NewReport()

	validateVersion(s, r)
	validateJob(s, r)
	checkMeasurement(r, LevelSchema, "slab.area_sq_ft", "slab area", s.Slab.AreaSqFt)
	checkMeasurement(r, LevelSchema, "slab.thickness_inches", "slab thickness", s.Slab.ThicknessInches)

	return r
}

func validateVersion(s *spec.JobSpec, r *Report) {
	if strings.TrimSpace(s.SpecVersion) == "" {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "spec_version is required",
			Path:        "spec_version",
			Expected:    `"0.1.0"`,
			Suggestions: []string{`Add spec_version: "0.1.0" at the top of job.yaml`},
		})
	}
}

func validateJob(s *spec.JobSpec, r *Report) {
	if strings.TrimSpace(s.Job.Name) == "" {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "job.name is empty; the bid will be unlabeled",
			Path:        "job.name",
			Suggestions: []string{"Name the job after the customer or site"},
		})
	}
	if s.Handoff {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: "operational handoff enabled",
			Path:    "handoff",
		})
	}
}

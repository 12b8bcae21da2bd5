package spec

import "github.com/gbistila/bidupgradestest/pkg/bid"

// JobSpec is a single flatwork job as written in job.yaml.
type JobSpec struct {
	SpecVersion string  `yaml:"spec_version" json:"spec_version"`
	Job         JobDef  `yaml:"job" json:"job"`
	Slab        SlabDef `yaml:"slab" json:"slab"`
	Handoff     bool    `yaml:"handoff" json:"handoff"`
}

// JobDef identifies the customer and site. None of it affects the price.
type JobDef struct {
	Name     string `yaml:"name" json:"name"`
	Customer string `yaml:"customer" json:"customer"`
	Address  string `yaml:"address" json:"address"`
}

// SlabDef holds the measurements the bid is priced from.
type SlabDef struct {
	AreaSqFt        float64 `yaml:"area_sq_ft" json:"area_sq_ft"`
	ThicknessInches float64 `yaml:"thickness_inches" json:"thickness_inches"`
}

// Input converts the slab to calculator input.
func (s SlabDef) Input() bid.Input {
	return bid.Input{AreaSqFt: s.AreaSqFt, ThicknessInches: s.ThicknessInches}
}

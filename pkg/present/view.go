package present

import (
	"strings"

	"github.com/gbistila/bidupgradestest/pkg/bid"
)

// Options controls what a View carries beyond the prices.
type Options struct {
	ShowHandoff bool
	// Thickness is the thickness as typed. Empty means format the number.
	Thickness string
}

// View is a fully formatted bid, ready to draw.
type View struct {
	SoilRemoval string `json:"soil_removal"`
	RoadBase    string `json:"road_base"`
	Concrete    string `json:"concrete"`
	Total       string `json:"total"`

	// Handoff is empty unless Options.ShowHandoff was set.
	Handoff string `json:"handoff,omitempty"`

	Result *bid.Result `json:"result"`
}

// HasHandoff reports whether the handoff block should be shown.
func (v View) HasHandoff() bool {
	return v.Handoff != ""
}

// View formats r.
func (p *Presenter) View(r *bid.Result, opts Options) View {
	v := View{
		SoilRemoval: p.Money(r.SoilRemoval.Price),
		RoadBase:    p.Money(r.RoadBase.Price),
		Concrete:    p.Money(r.Concrete.Price),
		Total:       p.Money(r.Total),
		Result:      r,
	}
	if opts.ShowHandoff {
		thickness := strings.TrimSpace(opts.Thickness)
		if thickness == "" {
			thickness = Quantity(r.Input.ThicknessInches)
		}
		v.Handoff = p.HandoffText(r.Handoff, thickness)
	}
	return v
}

package present

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/gbistila/bidupgradestest/pkg/bid"
	"github.com/gbistila/bidupgradestest/pkg/validation"
)

// CopiedMessage is the confirmation shown after a handoff copy.
const CopiedMessage = "Copied handoff"

// ErrNoHandoff is returned by CopyHandoff when no handoff is on screen.
var ErrNoHandoff = errors.New("no handoff to copy")

// Renderer is the drawing surface an Adapter drives.
type Renderer interface {
	Render(View)
	// Hide removes any previously rendered bid.
	Hide()
}

// Clipboard receives exported handoff text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Request is one round of raw form input.
type Request struct {
	Area        string
	Thickness   string
	ShowHandoff bool
}

// Adapter runs validate, compute, render for one surface and remembers the
// last view it drew.
type Adapter struct {
	presenter *Presenter
	renderer  Renderer
	latest    *View
}

// NewAdapter wires a presenter to a renderer.
func NewAdapter(p *Presenter, r Renderer) *Adapter {
	return &Adapter{presenter: p, renderer: r}
}

// Update parses and validates raw input. On success the bid is computed and
// rendered; otherwise the renderer is told to hide and nothing is computed.
// The returned report says which happened.
func (a *Adapter) Update(req Request) *validation.Report {
	in, report := validation.ParseInput(req.Area, req.Thickness)
	if !report.Valid {
		a.hide()
		return report
	}
	a.render(in, Options{ShowHandoff: req.ShowHandoff, Thickness: req.Thickness})
	return report
}

// UpdateInput is Update for callers that already hold numbers.
func (a *Adapter) UpdateInput(in bid.Input, opts Options) *validation.Report {
	report := validation.ValidateInput(in)
	if !report.Valid {
		a.hide()
		return report
	}
	a.render(in, opts)
	return report
}

// Latest returns the view currently shown, if any.
func (a *Adapter) Latest() (View, bool) {
	if a.latest == nil {
		return View{}, false
	}
	return *a.latest, true
}

// CopyHandoff exports the shown handoff text to cb.
func (a *Adapter) CopyHandoff(cb Clipboard) error {
	if a.latest == nil || !a.latest.HasHandoff() {
		return ErrNoHandoff
	}
	return cb.WriteAll(a.latest.Handoff)
}

func (a *Adapter) render(in bid.Input, opts Options) {
	v := a.presenter.View(in.Compute(), opts)
	a.latest = &v
	a.renderer.Render(v)
}

func (a *Adapter) hide() {
	a.latest = nil
	a.renderer.Hide()
}

package present

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/gbistila/bidupgradestest/pkg/bid"
)

func TestMoney(t *testing.T) {
	p := New(language.AmericanEnglish)
	cases := []struct {
		in   bid.Cents
		want string
	}{
		{0, "$0.00"},
		{7, "$0.07"},
		{25423, "$254.23"},
		{601926, "$6,019.26"},
		{2646295, "$26,462.95"},
		{123456789, "$1,234,567.89"},
		{-150, "-$1.50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, p.Money(c.in), "Money(%d)", c.in)
	}
}

func TestNewForLocale(t *testing.T) {
	p, err := NewForLocale("en-US")
	require.NoError(t, err)
	assert.Equal(t, "$1,500.00", p.Money(150000))

	_, err = NewForLocale("not a locale!")
	assert.Error(t, err)
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "7.41", Quantity(7.41))
	assert.Equal(t, "1.3", Quantity(1.3))
	assert.Equal(t, "4", Quantity(4))
	assert.Equal(t, "0.06", Quantity(0.06))
}

func TestHandoffText(t *testing.T) {
	p := New(language.AmericanEnglish)
	r := bid.Compute(500, 4)

	want := "Concrete Installation:\n" +
		"- 11.11 labor hours\n" +
		"- 7.41 yards road base at 4 inches thick\n" +
		"- 6.17 yards concrete (7.41 ordered — $2,383.34 budget)"
	assert.Equal(t, want, p.HandoffText(r.Handoff, "4"))
}

func TestViewHandoffToggle(t *testing.T) {
	p := New(language.AmericanEnglish)
	r := bid.Compute(500, 4)

	v := p.View(r, Options{})
	assert.Equal(t, "$254.23", v.SoilRemoval)
	assert.Equal(t, "$1,236.69", v.RoadBase)
	assert.Equal(t, "$4,528.34", v.Concrete)
	assert.Equal(t, "$6,019.26", v.Total)
	assert.False(t, v.HasHandoff())
	assert.Same(t, r, v.Result)

	v = p.View(r, Options{ShowHandoff: true, Thickness: " 4.0 "})
	require.True(t, v.HasHandoff())
	assert.Contains(t, v.Handoff, "at 4.0 inches thick")

	v = p.View(bid.Compute(100, 3.5), Options{ShowHandoff: true})
	assert.Contains(t, v.Handoff, "- 1.3 yards road base at 3.5 inches thick")
}

type recordingRenderer struct {
	views  []View
	hidden int
}

func (r *recordingRenderer) Render(v View) { r.views = append(r.views, v) }
func (r *recordingRenderer) Hide()         { r.hidden++ }

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestAdapterRendersValidInput(t *testing.T) {
	rr := &recordingRenderer{}
	a := NewAdapter(New(language.AmericanEnglish), rr)

	report := a.Update(Request{Area: "500", Thickness: "4", ShowHandoff: true})
	require.True(t, report.Valid)
	require.Len(t, rr.views, 1)
	assert.Equal(t, 0, rr.hidden)
	assert.Equal(t, "$6,019.26", rr.views[0].Total)

	latest, ok := a.Latest()
	require.True(t, ok)
	assert.Equal(t, rr.views[0].Handoff, latest.Handoff)
}

func TestAdapterHidesOnInvalidInput(t *testing.T) {
	rr := &recordingRenderer{}
	a := NewAdapter(New(language.AmericanEnglish), rr)

	a.Update(Request{Area: "500", Thickness: "4"})
	report := a.Update(Request{Area: "500", Thickness: "0"})

	assert.False(t, report.Valid)
	assert.Len(t, rr.views, 1, "invalid input must not render")
	assert.Equal(t, 1, rr.hidden)
	_, ok := a.Latest()
	assert.False(t, ok)
}

func TestAdapterUpdateInput(t *testing.T) {
	rr := &recordingRenderer{}
	a := NewAdapter(New(language.AmericanEnglish), rr)

	report := a.UpdateInput(bid.Input{AreaSqFt: 1000, ThicknessInches: 4}, Options{})
	require.True(t, report.Valid)
	assert.Equal(t, "$9,893.48", rr.views[0].Total)

	report = a.UpdateInput(bid.Input{AreaSqFt: -1, ThicknessInches: 4}, Options{})
	assert.False(t, report.Valid)
	assert.Equal(t, 1, rr.hidden)
}

func TestCopyHandoff(t *testing.T) {
	a := NewAdapter(New(language.AmericanEnglish), &recordingRenderer{})
	cb := &memClipboard{}

	assert.ErrorIs(t, a.CopyHandoff(cb), ErrNoHandoff)

	a.Update(Request{Area: "500", Thickness: "4"})
	assert.ErrorIs(t, a.CopyHandoff(cb), ErrNoHandoff, "handoff toggle off")

	a.Update(Request{Area: "500", Thickness: "4", ShowHandoff: true})
	require.NoError(t, a.CopyHandoff(cb))
	assert.Contains(t, cb.text, "Concrete Installation:")

	boom := errors.New("no display")
	assert.ErrorIs(t, a.CopyHandoff(&memClipboard{err: boom}), boom)
}

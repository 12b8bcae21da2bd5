package bid

import (
	"math"
	"testing"
)

type golden struct {
	area, thickness float64

	soil, base, crete, total Cents
	budget                   Cents
	hours, loose, design     float64
	ordered                  float64
}

// Reference values from the production calculator, IEEE doubles throughout.
var goldens = []golden{
	{area: 500, thickness: 4, soil: 25423, base: 123669, crete: 452834, total: 601926, budget: 238334, hours: 11.11, loose: 7.41, design: 6.17, ordered: 7.41},
	{area: 1000, thickness: 4, soil: 50845, base: 211587, crete: 726916, total: 989348, budget: 476666, hours: 22.22, loose: 14.81, design: 12.35, ordered: 14.81},
	{area: 858, thickness: 4, soil: 43625, base: 186618, crete: 623695, total: 853938, budget: 408980, hours: 19.07, loose: 12.71, design: 10.59, ordered: 12.71},
	{area: 100, thickness: 3.5, soil: 4449, base: 51135, crete: 256209, total: 311793, budget: 41709, hours: 1.94, loose: 1.3, design: 1.08, ordered: 1.3},
	{area: 2000, thickness: 6, soil: 152534, base: 563261, crete: 1930500, total: 2646295, budget: 1430000, hours: 66.67, loose: 44.44, design: 37.04, ordered: 44.44},
	{area: 1200, thickness: 5, soil: 76266, base: 299506, crete: 1015300, total: 1391072, budget: 715000, hours: 33.33, loose: 22.22, design: 18.52, ordered: 22.22},
	{area: 10, thickness: 1, soil: 127, base: 36190, crete: 215691, total: 252008, budget: 1191, hours: 0.06, loose: 0.04, design: 0.03, ordered: 0.04},
}

func TestComputeGolden(t *testing.T) {
	for _, g := range goldens {
		r := Compute(g.area, g.thickness)

		if r.SoilRemoval.Price != g.soil {
			t.Errorf("%v×%v soil = %d, want %d", g.area, g.thickness, r.SoilRemoval.Price, g.soil)
		}
		if r.RoadBase.Price != g.base {
			t.Errorf("%v×%v road base = %d, want %d", g.area, g.thickness, r.RoadBase.Price, g.base)
		}
		if r.Concrete.Price != g.crete {
			t.Errorf("%v×%v concrete = %d, want %d", g.area, g.thickness, r.Concrete.Price, g.crete)
		}
		if r.Total != g.total {
			t.Errorf("%v×%v total = %d, want %d", g.area, g.thickness, r.Total, g.total)
		}

		h := r.Handoff
		if h.ConcreteBudget != g.budget {
			t.Errorf("%v×%v budget = %d, want %d", g.area, g.thickness, h.ConcreteBudget, g.budget)
		}
		if h.TotalLaborHours != g.hours {
			t.Errorf("%v×%v labor hours = %v, want %v", g.area, g.thickness, h.TotalLaborHours, g.hours)
		}
		if h.RoadBaseLooseCY != g.loose {
			t.Errorf("%v×%v loose CY = %v, want %v", g.area, g.thickness, h.RoadBaseLooseCY, g.loose)
		}
		if h.ConcreteDesignCY != g.design {
			t.Errorf("%v×%v design CY = %v, want %v", g.area, g.thickness, h.ConcreteDesignCY, g.design)
		}
		if h.ConcreteOrderedCY != g.ordered {
			t.Errorf("%v×%v ordered CY = %v, want %v", g.area, g.thickness, h.ConcreteOrderedCY, g.ordered)
		}
	}
}

func TestComputeIntermediates(t *testing.T) {
	r := Compute(500, 4)

	if r.SoilRemoval.Cost != 17778 {
		t.Errorf("soil cost = %d, want 17778", r.SoilRemoval.Cost)
	}
	b := r.RoadBase
	if b.MaterialCost != 25926 || b.LaborCost != 35556 || b.CompactorRental != 25000 {
		t.Errorf("road base parts = %d/%d/%d, want 25926/35556/25000", b.MaterialCost, b.LaborCost, b.CompactorRental)
	}
	if b.Cost != 86482 {
		t.Errorf("road base cost = %d, want 86482", b.Cost)
	}
	c := r.Concrete
	if c.MaterialCost != 166667 {
		t.Errorf("concrete material = %d, want 166667", c.MaterialCost)
	}
	if c.FlatworkCost != 150000 {
		t.Errorf("flatwork = %d, want minimum 150000", c.FlatworkCost)
	}
	if c.Cost != 316667 {
		t.Errorf("concrete cost = %d, want 316667", c.Cost)
	}
	if math.Abs(c.DesignCY-2000.0/324.0) > 1e-12 {
		t.Errorf("design CY = %v, want %v", c.DesignCY, 2000.0/324.0)
	}
	if r.Input.AreaSqFt != 500 || r.Input.ThicknessInches != 4 {
		t.Errorf("input not echoed: %+v", r.Input)
	}
}

func TestTotalIsSumOfCategories(t *testing.T) {
	for _, area := range []float64{1, 37.5, 250, 856.9, 857.2, 3000, 12345.67} {
		for _, thick := range []float64{0.5, 3, 4, 5.25, 8} {
			r := Compute(area, thick)
			sum := r.SoilRemoval.Price + r.RoadBase.Price + r.Concrete.Price
			if r.Total != sum {
				t.Errorf("%v×%v total %d != sum %d", area, thick, r.Total, sum)
			}
		}
	}
}

func TestMonotonicInArea(t *testing.T) {
	for _, thick := range []float64{2, 4, 6} {
		prev := Compute(1, thick)
		for area := 2.0; area <= 3000; area += 7.3 {
			r := Compute(area, thick)
			if r.SoilRemoval.Price < prev.SoilRemoval.Price ||
				r.RoadBase.Price < prev.RoadBase.Price ||
				r.Concrete.Price < prev.Concrete.Price ||
				r.Total < prev.Total {
				t.Fatalf("price decreased between area %v and %v at %v in", area-7.3, area, thick)
			}
			prev = r
		}
	}
}

func TestFlatworkFloor(t *testing.T) {
	for _, area := range []float64{1, 100, 500, 857, 857.14} {
		if area*FlatworkRatePerSqFt >= FlatworkMinimum {
			t.Fatalf("test area %v is not below the floor", area)
		}
		if got := Compute(area, 4).Concrete.FlatworkCost; got != 150000 {
			t.Errorf("flatwork at %v sq ft = %d, want 150000", area, got)
		}
	}

	for _, area := range []float64{858, 1000, 2000, 4321.5} {
		want := ToCents(area * FlatworkRatePerSqFt)
		if got := Compute(area, 4).Concrete.FlatworkCost; got != want {
			t.Errorf("flatwork at %v sq ft = %d, want %d", area, got, want)
		}
	}
}

func TestHandoffBudgetMatchesMaterialMarkup(t *testing.T) {
	for _, area := range []float64{3, 99.9, 500, 1234.5, 9999} {
		for _, thick := range []float64{3.5, 4, 6} {
			r := Compute(area, thick)
			if want := ApplyMarkup(r.Concrete.MaterialCost); r.Handoff.ConcreteBudget != want {
				t.Errorf("%v×%v budget %d, material with markup %d", area, thick, r.Handoff.ConcreteBudget, want)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	first := *Compute(777.7, 4.5)
	for i := 0; i < 100; i++ {
		if got := *Compute(777.7, 4.5); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestInputCompute(t *testing.T) {
	in := Input{AreaSqFt: 500, ThicknessInches: 4}
	if got := in.Compute().Total; got != 601926 {
		t.Errorf("Input.Compute total = %d, want 601926", got)
	}
}

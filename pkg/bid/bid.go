package bid

// Input is the pair of measurements a bid is priced from.
type Input struct {
	AreaSqFt        float64 `json:"area_sq_ft"`
	ThicknessInches float64 `json:"thickness_inches"`
}

// SoilRemoval is the labor-only excavation category.
type SoilRemoval struct {
	LaborHours float64 `json:"labor_hours"`
	Cost       Cents   `json:"cost_cents"`
	Price      Cents   `json:"price_cents"`
}

// RoadBase is the compacted gravel sub-base category.
type RoadBase struct {
	LooseCY         float64 `json:"loose_cy"`
	LaborHours      float64 `json:"labor_hours"`
	MaterialCost    Cents   `json:"material_cost_cents"`
	LaborCost       Cents   `json:"labor_cost_cents"`
	CompactorRental Cents   `json:"compactor_rental_cents"`
	Cost            Cents   `json:"cost_cents"`
	Price           Cents   `json:"price_cents"`
}

// Concrete covers ready-mix material plus flatwork placing and finishing.
type Concrete struct {
	DesignCY     float64 `json:"design_cy"`
	OrderedCY    float64 `json:"ordered_cy"`
	MaterialCost Cents   `json:"material_cost_cents"`
	FlatworkCost Cents   `json:"flatwork_cost_cents"`
	Cost         Cents   `json:"cost_cents"`
	Price        Cents   `json:"price_cents"`
}

// Handoff is the crew-facing summary. Quantities are rounded to two places.
type Handoff struct {
	TotalLaborHours   float64 `json:"total_labor_hours"`
	RoadBaseLooseCY   float64 `json:"road_base_loose_cy"`
	ConcreteDesignCY  float64 `json:"concrete_design_cy"`
	ConcreteOrderedCY float64 `json:"concrete_ordered_cy"`
	ConcreteBudget    Cents   `json:"concrete_budget_cents"`
}

// Result is the complete bid breakdown.
type Result struct {
	Input       Input       `json:"input"`
	SoilRemoval SoilRemoval `json:"soil_removal"`
	RoadBase    RoadBase    `json:"road_base"`
	Concrete    Concrete    `json:"concrete"`
	Total       Cents       `json:"total_cents"`
	Handoff     Handoff     `json:"handoff"`
}

// Compute prices a flatwork job. Both inputs must be finite and positive;
// Compute does not check, so run the input through validation first.
func Compute(areaSqFt, thicknessInches float64) *Result {
	cy := (areaSqFt * thicknessInches) / SqFtInchesPerCY

	soil := soilRemoval(cy)
	base := roadBase(cy)
	crete := concrete(areaSqFt, cy)

	return &Result{
		Input:       Input{AreaSqFt: areaSqFt, ThicknessInches: thicknessInches},
		SoilRemoval: soil,
		RoadBase:    base,
		Concrete:    crete,
		Total:       soil.Price + base.Price + crete.Price,
		Handoff:     handoff(soil, base, crete),
	}
}

// Compute prices in.
func (in Input) Compute() *Result {
	return Compute(in.AreaSqFt, in.ThicknessInches)
}

func soilRemoval(cy float64) SoilRemoval {
	hours := cy * SoilLaborHoursPerCY
	cost := ToCents(hours * LaborRatePerHour)
	return SoilRemoval{
		LaborHours: hours,
		Cost:       cost,
		Price:      ApplyMarkup(cost),
	}
}

func roadBase(cy float64) RoadBase {
	loose := cy * RoadCompactionFactor
	material := ToCents(loose * BaseMaterialRatePerCY)
	hours := loose * BaseLaborHoursPerCY
	labor := ToCents(hours * LaborRatePerHour)
	rental := ToCents(CompactorRental)
	cost := material + labor + rental
	return RoadBase{
		LooseCY:         loose,
		LaborHours:      hours,
		MaterialCost:    material,
		LaborCost:       labor,
		CompactorRental: rental,
		Cost:            cost,
		Price:           ApplyMarkup(cost),
	}
}

func concrete(areaSqFt, cy float64) Concrete {
	ordered := cy * ConcreteWasteFactor
	material := ToCents(ordered * ConcreteMaterialRatePerCY)
	flatwork := maxCents(ToCents(FlatworkMinimum), ToCents(areaSqFt*FlatworkRatePerSqFt))
	cost := material + flatwork
	return Concrete{
		DesignCY:     cy,
		OrderedCY:    ordered,
		MaterialCost: material,
		FlatworkCost: flatwork,
		Cost:         cost,
		Price:        ApplyMarkup(cost),
	}
}

// handoff re-derives the concrete budget from the ordered volume instead of
// reading crete.MaterialCost. The two must agree to the cent.
func handoff(soil SoilRemoval, base RoadBase, crete Concrete) Handoff {
	hours := soil.LaborHours + base.LaborHours
	return Handoff{
		TotalLaborHours:   round2(hours),
		RoadBaseLooseCY:   round2(base.LooseCY),
		ConcreteDesignCY:  round2(crete.DesignCY),
		ConcreteOrderedCY: round2(crete.OrderedCY),
		ConcreteBudget:    ApplyMarkup(ToCents(crete.OrderedCY * ConcreteMaterialRatePerCY)),
	}
}

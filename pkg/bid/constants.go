package bid

// Rate table for flatwork bids. These are fixed; there is no per-job override.
const (
	Markup = 1.43 // price = cost × markup

	LaborRatePerHour          = 48.0   // $/labor hour
	BaseMaterialRatePerCY     = 35.0   // $/loose CY road base
	CompactorRental           = 250.0  // $ flat, once per road-base job
	ConcreteMaterialRatePerCY = 225.0  // $/ordered CY
	FlatworkRatePerSqFt       = 1.75   // $/sq ft placing and finishing
	FlatworkMinimum           = 1500.0 // $ floor on flatwork labor

	RoadCompactionFactor = 1.2 // loose volume / design volume
	ConcreteWasteFactor  = 1.2 // ordered volume / design volume

	SoilLaborHoursPerCY = 0.6 // excavation hours per design CY
	BaseLaborHoursPerCY = 1.0 // spread and compact hours per loose CY

	SqFtInchesPerCY = 324.0 // 12 in/ft × 27 ft³/CY
)

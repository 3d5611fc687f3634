package model

// Distribution summarizes the NPV distribution of a Monte Carlo run.
// Amounts are float64: simulation outputs are statistical, not bookable.
type Distribution struct {
	Trials int
	Seed   int64

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64

	// Percentiles keyed 5, 25, 50, 75, 95
	Percentiles map[int]float64

	ProbPositiveNPV   float64
	ValueAtRisk5      float64
	ExpectedShortfall float64
}

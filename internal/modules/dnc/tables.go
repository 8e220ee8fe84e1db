package dnc

import "github.com/NamelessFaceless/xivanalysis/internal/data"

// Dances take longer than a GCD to finish while the party keeps generating
// Esprit, so finishes count as several GCDs worth.
var generationMultipliers = map[int64]int64{
	data.Cascade.ID:                  1,
	data.ReverseCascade.ID:           1,
	data.Fountain.ID:                 1,
	data.Fountainfall.ID:             1,
	data.Windmill.ID:                 1,
	data.RisingWindmill.ID:           1,
	data.Bladeshower.ID:              1,
	data.Bloodshower.ID:              1,
	data.SaberDance.ID:               1,
	data.StandardFinish.ID:           2,
	data.SingleStandardFinish.ID:     2,
	data.DoubleStandardFinish.ID:     2,
	data.TechnicalFinish.ID:          3,
	data.SingleTechnicalFinish.ID:    3,
	data.DoubleTechnicalFinish.ID:    3,
	data.TripleTechnicalFinish.ID:    3,
	data.QuadrupleTechnicalFinish.ID: 3,
}

// Finishes are not weaponskills and generate no Esprit for the dancer.
var finishes = map[int64]bool{
	data.StandardFinish.ID:           true,
	data.SingleStandardFinish.ID:     true,
	data.DoubleStandardFinish.ID:     true,
	data.TechnicalFinish.ID:          true,
	data.SingleTechnicalFinish.ID:    true,
	data.DoubleTechnicalFinish.ID:    true,
	data.TripleTechnicalFinish.ID:    true,
	data.QuadrupleTechnicalFinish.ID: true,
}

const (
	generationAmount = 10 // whole units per generating hit
	ratePercentSelf  = 25
	ratePercentParty = 20

	tickFrequency  = 3000 // ms
	maxImprovTicks = 5

	maxEsprit      = 100
	saberDanceCost = 50
)

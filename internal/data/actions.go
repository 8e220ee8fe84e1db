package data

import "strings"

// Action is a player action.
type Action struct {
	ID   int64
	Name string
}

// Dancer
var (
	Cascade                  = Action{ID: 15989, Name: "Cascade"}
	Fountain                 = Action{ID: 15990, Name: "Fountain"}
	ReverseCascade           = Action{ID: 15991, Name: "Reverse Cascade"}
	Fountainfall             = Action{ID: 15992, Name: "Fountainfall"}
	Windmill                 = Action{ID: 15993, Name: "Windmill"}
	Bladeshower              = Action{ID: 15994, Name: "Bladeshower"}
	RisingWindmill           = Action{ID: 15995, Name: "Rising Windmill"}
	Bloodshower              = Action{ID: 15996, Name: "Bloodshower"}
	StandardStep             = Action{ID: 15997, Name: "Standard Step"}
	TechnicalStep            = Action{ID: 15998, Name: "Technical Step"}
	StandardFinish           = Action{ID: 16003, Name: "Standard Finish"}
	TechnicalFinish          = Action{ID: 16004, Name: "Technical Finish"}
	SaberDance               = Action{ID: 16005, Name: "Saber Dance"}
	ClosedPosition           = Action{ID: 16006, Name: "Closed Position"}
	Devilment                = Action{ID: 16011, Name: "Devilment"}
	ShieldSamba              = Action{ID: 16012, Name: "Shield Samba"}
	Flourish                 = Action{ID: 16013, Name: "Flourish"}
	Improvisation            = Action{ID: 16014, Name: "Improvisation"}
	CuringWaltz              = Action{ID: 16015, Name: "Curing Waltz"}
	SingleStandardFinish     = Action{ID: 16191, Name: "Single Standard Finish"}
	DoubleStandardFinish     = Action{ID: 16192, Name: "Double Standard Finish"}
	SingleTechnicalFinish    = Action{ID: 16193, Name: "Single Technical Finish"}
	DoubleTechnicalFinish    = Action{ID: 16194, Name: "Double Technical Finish"}
	TripleTechnicalFinish    = Action{ID: 16195, Name: "Triple Technical Finish"}
	QuadrupleTechnicalFinish = Action{ID: 16196, Name: "Quadruple Technical Finish"}
)

// Monk
var (
	FistsOfEarth       = Action{ID: 60, Name: "Fists of Earth"}
	FistsOfFire        = Action{ID: 63, Name: "Fists of Fire"}
	Mantra             = Action{ID: 65, Name: "Mantra"}
	PerfectBalance     = Action{ID: 69, Name: "Perfect Balance"}
	FistsOfWind        = Action{ID: 73, Name: "Fists of Wind"}
	TornadoKick        = Action{ID: 3543, Name: "Tornado Kick"}
	ElixirField        = Action{ID: 3545, Name: "Elixir Field"}
	TheForbiddenChakra = Action{ID: 3547, Name: "The Forbidden Chakra"}
	RiddleOfEarth      = Action{ID: 7394, Name: "Riddle of Earth"}
	RiddleOfFire       = Action{ID: 7395, Name: "Riddle of Fire"}
	Brotherhood        = Action{ID: 7396, Name: "Brotherhood"}
)

// Role actions
var (
	SecondWind = Action{ID: 7541, Name: "Second Wind"}
	ArmsLength = Action{ID: 7548, Name: "Arm's Length"}
	HeadGraze  = Action{ID: 7551, Name: "Head Graze"}
	FootGraze  = Action{ID: 7553, Name: "Foot Graze"}
	LegGraze   = Action{ID: 7554, Name: "Leg Graze"}
	Peloton    = Action{ID: 7557, Name: "Peloton"}
)

var actions = indexActions(
	Cascade, Fountain, ReverseCascade, Fountainfall, Windmill, Bladeshower,
	RisingWindmill, Bloodshower, StandardStep, TechnicalStep, StandardFinish,
	TechnicalFinish, SaberDance, ClosedPosition, Devilment, ShieldSamba,
	Flourish, Improvisation, CuringWaltz, SingleStandardFinish,
	DoubleStandardFinish, SingleTechnicalFinish, DoubleTechnicalFinish,
	TripleTechnicalFinish, QuadrupleTechnicalFinish,

	FistsOfEarth, FistsOfFire, Mantra, PerfectBalance, FistsOfWind,
	TornadoKick, ElixirField, TheForbiddenChakra, RiddleOfEarth,
	RiddleOfFire, Brotherhood,

	SecondWind, ArmsLength, HeadGraze, FootGraze, LegGraze, Peloton,
)

type actionIndex struct {
	byID   map[int64]Action
	byName map[string]Action
}

func indexActions(list ...Action) actionIndex {
	idx := actionIndex{
		byID:   make(map[int64]Action, len(list)),
		byName: make(map[string]Action, len(list)),
	}
	for _, a := range list {
		if _, dup := idx.byID[a.ID]; dup {
			panic("data: duplicate action id " + a.Name)
		}
		idx.byID[a.ID] = a
		idx.byName[nameKey(a.Name)] = a
	}
	return idx
}

// nameKey folds case and punctuation so "arms length" finds "Arm's Length".
func nameKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ActionByID looks up an action.
func ActionByID(id int64) (Action, bool) {
	a, ok := actions.byID[id]
	return a, ok
}

// ActionByName looks up an action by name, ignoring case, spaces and
// punctuation.
func ActionByName(name string) (Action, bool) {
	a, ok := actions.byName[nameKey(name)]
	return a, ok
}

// ActionName returns the action's name, or "" when unknown.
func ActionName(id int64) string {
	return actions.byID[id].Name
}

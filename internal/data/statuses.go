package data

// Status is a buff or debuff.
type Status struct {
	ID   int64
	Name string
}

var (
	StandardFinishStatus  = Status{ID: 1821, Name: "Standard Finish"}
	TechnicalFinishStatus = Status{ID: 1822, Name: "Technical Finish"}
	ClosedPositionStatus  = Status{ID: 1823, Name: "Closed Position"}
	DancePartner          = Status{ID: 1824, Name: "Dance Partner"}
	DevilmentStatus       = Status{ID: 1825, Name: "Devilment"}
	ImprovisationStatus   = Status{ID: 1827, Name: "Improvisation"}
	Esprit                = Status{ID: 1847, Name: "Esprit"}

	RiddleOfFireStatus = Status{ID: 1181, Name: "Riddle of Fire"}
	BrotherhoodStatus  = Status{ID: 1185, Name: "Brotherhood"}
)

var statuses = map[int64]Status{}

func init() {
	for _, s := range []Status{
		StandardFinishStatus, TechnicalFinishStatus, ClosedPositionStatus,
		DancePartner, DevilmentStatus, ImprovisationStatus, Esprit,
		RiddleOfFireStatus, BrotherhoodStatus,
	} {
		statuses[s.ID] = s
	}
}

// StatusByID looks up a status.
func StatusByID(id int64) (Status, bool) {
	s, ok := statuses[id]
	return s, ok
}

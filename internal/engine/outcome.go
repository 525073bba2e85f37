package engine

// OutcomeKind is the closed set of things that can happen on one delivery.
type OutcomeKind int

const (
	Dot OutcomeKind = iota
	Single
	Two
	Three
	Four
	Six
	Wicket
	Wide
	NoBall
	Bye
	LegBye

	outcomeCount
)

// AllOutcomes lists every outcome kind in table order.
var AllOutcomes = [outcomeCount]OutcomeKind{Dot, Single, Two, Three, Four, Six, Wicket, Wide, NoBall, Bye, LegBye}

var outcomeCodes = [outcomeCount]string{"0", "1", "2", "3", "4", "6", "W", "WD", "NB", "B", "LB"}

var outcomeNames = [outcomeCount]string{"dot", "one", "two", "three", "four", "six", "wicket", "wide", "no-ball", "bye", "leg-bye"}

// fixed run value of each kind; byes and leg-byes draw theirs separately
var outcomeRuns = [outcomeCount]int{0, 1, 2, 3, 4, 6, 0, 1, 1, 0, 0}

// Code is the short scorer's code stored with a ball ("0", "4", "W", "WD", "LB", ...).
func (k OutcomeKind) Code() string {
	if k < 0 || k >= outcomeCount {
		return "?"
	}
	return outcomeCodes[k]
}

func (k OutcomeKind) String() string {
	if k < 0 || k >= outcomeCount {
		return "unknown"
	}
	return outcomeNames[k]
}

// Legal reports whether the delivery counts toward the six balls of an over.
func (k OutcomeKind) Legal() bool {
	return k != Wide && k != NoBall
}

// IsBoundary reports fours and sixes.
func (k OutcomeKind) IsBoundary() bool {
	return k == Four || k == Six
}

// IsExtra reports deliveries whose runs are not credited to the batsman.
func (k OutcomeKind) IsExtra() bool {
	return k == Wide || k == NoBall || k == Bye || k == LegBye
}

// ParseOutcomeCode maps a stored code back to its kind.
func ParseOutcomeCode(code string) (OutcomeKind, bool) {
	for i, c := range outcomeCodes {
		if c == code {
			return OutcomeKind(i), true
		}
	}
	return 0, false
}

// Outcome is a drawn delivery result with its run count attached.
type Outcome struct {
	Kind OutcomeKind
	Runs int
}

// NewOutcome returns the outcome for kind with its fixed run value.
// Byes and leg-byes default to a single run.
func NewOutcome(kind OutcomeKind) Outcome {
	o := Outcome{Kind: kind, Runs: outcomeRuns[kind]}
	if kind == Bye || kind == LegBye {
		o.Runs = 1
	}
	return o
}

// BatRuns is the part of Runs credited to the batsman.
func (o Outcome) BatRuns() int {
	if o.Kind.IsExtra() {
		return 0
	}
	return o.Runs
}

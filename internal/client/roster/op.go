package roster

// Phase is where a tracked operation currently is.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseSettled:
		return "settled"
	default:
		return "idle"
	}
}

// Op is the state of the most recent operation of one class.
// Err is only meaningful once Phase is PhaseSettled.
type Op struct {
	Phase Phase
	Err   error
}

// OK reports whether the operation settled without error.
func (o Op) OK() bool {
	return o.Phase == PhaseSettled && o.Err == nil
}

func pending() Op {
	return Op{Phase: PhasePending}
}

func settled(err error) Op {
	return Op{Phase: PhaseSettled, Err: err}
}

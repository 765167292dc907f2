package playback

import "fmt"

// Kind is the type of a playback phase.
type Kind int

const (
	KindExercise Kind = iota
	KindRest
	KindCompleted
)

func (k Kind) String() string {
	switch k {
	case KindExercise:
		return "exercise"
	case KindRest:
		return "rest"
	case KindCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Phase is the engine state: Exercise(i), Rest(i) or Completed.
type Phase struct {
	Kind  Kind
	Index int
}

func (p Phase) String() string {
	if p.Kind == KindCompleted {
		return "completed"
	}
	return fmt.Sprintf("%s(%d)", p.Kind, p.Index)
}

// Exercise returns Exercise(i).
func Exercise(i int) Phase { return Phase{Kind: KindExercise, Index: i} }

// Rest returns Rest(i).
func Rest(i int) Phase { return Phase{Kind: KindRest, Index: i} }

// Completed is the terminal phase.
var Completed = Phase{Kind: KindCompleted}

package wizard

import "fmt"

// Step is a page of the wizard.
type Step string

const (
	StepType    Step = "type"
	StepDetails Step = "details"
	StepPrompts Step = "prompts"
)

var steps = []Step{StepType, StepDetails, StepPrompts}

// Steps returns the wizard pages in order.
func Steps() []Step { return append([]Step(nil), steps...) }

// ParseStep converts a URL segment into a Step.
func ParseStep(s string) (Step, error) {
	for _, st := range steps {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown wizard step %q", s)
}

// Index is the zero-based position of st, or 0 for an unknown step.
func (st Step) Index() int {
	for i, s := range steps {
		if s == st {
			return i
		}
	}
	return 0
}

// Next returns the following step; the last step is its own successor.
func (st Step) Next() Step {
	return steps[min(st.Index()+1, len(steps)-1)]
}

// Prev returns the preceding step; the first step is its own predecessor.
func (st Step) Prev() Step {
	return steps[max(st.Index()-1, 0)]
}

// Title is the heading shown for st.
func (st Step) Title() string {
	switch st {
	case StepDetails:
		return "Project Details"
	case StepPrompts:
		return "Development Prompts"
	default:
		return "Project Type"
	}
}

func (st Step) String() string { return string(st) }

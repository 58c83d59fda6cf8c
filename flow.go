package polifin

// State is a wizard position: one state per section plus ReportReady.
type State string

// ReportReady is the terminal state reached by advancing past the last
// section.
const ReportReady State = "reporte"

type Event int

const (
	EventAdvance Event = iota
	EventRetreat
)

func (e Event) String() string {
	if e == EventRetreat {
		return "retreat"
	}
	return "advance"
}

// Transition is one entry of a flow's transition table.
type Transition struct {
	From  State
	Event Event
	To    State
}

// Flow is the state machine of a wizard kind. What follows a section is
// looked up in the table, never derived from a position at run time.
type Flow struct {
	kind        Kind
	sections    map[State]Section
	order       []State
	transitions []Transition
	table       map[State]map[Event]State
}

// NewFlow builds the flow of kind from its section catalogue.
func NewFlow(kind Kind) *Flow {
	return newFlow(kind, kind.Sections())
}

func newFlow(kind Kind, sections []Section) *Flow {
	f := &Flow{
		kind:     kind,
		sections: make(map[State]Section, len(sections)),
		table:    make(map[State]map[Event]State),
	}
	for _, sec := range sections {
		st := State(sec.ID)
		f.sections[st] = sec
		f.order = append(f.order, st)
	}
	for i, st := range f.order {
		next := ReportReady
		if i+1 < len(f.order) {
			next = f.order[i+1]
		}
		prev := st
		if i > 0 {
			prev = f.order[i-1]
		}
		f.transitions = append(f.transitions,
			Transition{From: st, Event: EventAdvance, To: next},
			Transition{From: st, Event: EventRetreat, To: prev},
		)
	}
	for _, t := range f.transitions {
		if f.table[t.From] == nil {
			f.table[t.From] = make(map[Event]State)
		}
		f.table[t.From][t.Event] = t.To
	}
	return f
}

func (f *Flow) Kind() Kind { return f.kind }

// Initial is the first section state, or ReportReady for an empty flow.
func (f *Flow) Initial() State {
	if len(f.order) == 0 {
		return ReportReady
	}
	return f.order[0]
}

// Next returns the target of ev from state. ok is false when the table has
// no such transition, which is always the case from ReportReady.
func (f *Flow) Next(from State, ev Event) (to State, ok bool) {
	to, ok = f.table[from][ev]
	return to, ok
}

func (f *Flow) Section(st State) (Section, bool) {
	sec, ok := f.sections[st]
	return sec, ok
}

// States lists the section states in capture order, followed by ReportReady.
func (f *Flow) States() []State {
	return append(append([]State(nil), f.order...), ReportReady)
}

func (f *Flow) Transitions() []Transition {
	return append([]Transition(nil), f.transitions...)
}

// position returns the 0-based index of st in capture order; ReportReady is
// len(order).
func (f *Flow) position(st State) int {
	for i, s := range f.order {
		if s == st {
			return i
		}
	}
	return len(f.order)
}

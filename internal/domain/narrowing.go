package domain

// Stage is the phase of the narrowing quiz
type Stage string

const (
	StageNarrowing  Stage = "narrowing"
	StageDishPicker Stage = "dishPicker"
)

// SelectionPath is an ordered label sequence identifying a category tree node
type SelectionPath []string

// Equal reports whether both paths hold the same labels in the same order
func (p SelectionPath) Equal(q SelectionPath) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// IsStrictPrefixOf reports whether p is shorter than q and agrees with q on every index of p
func (p SelectionPath) IsStrictPrefixOf(q SelectionPath) bool {
	if len(p) >= len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Extend returns a new path with label appended; p is not modified
func (p SelectionPath) Extend(label string) SelectionPath {
	out := make(SelectionPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, label)
}

// NarrowingState is everything the quiz needs to carry from one turn to the next.
// The caller round-trips it; nothing is stored server-side.
type NarrowingState struct {
	PendingTop        []string
	PendingCategories []string
	SelectionPaths    []SelectionPath
	Started           bool
	Stage             Stage
}

// Clone returns a deep copy so a turn never mutates the caller's slices
func (s NarrowingState) Clone() NarrowingState {
	out := NarrowingState{
		PendingTop:        append([]string{}, s.PendingTop...),
		PendingCategories: append([]string{}, s.PendingCategories...),
		SelectionPaths:    make([]SelectionPath, 0, len(s.SelectionPaths)),
		Started:           s.Started,
		Stage:             s.Stage,
	}
	for _, p := range s.SelectionPaths {
		out.SelectionPaths = append(out.SelectionPaths, append(SelectionPath{}, p...))
	}
	if out.Stage == "" {
		out.Stage = StageNarrowing
	}
	return out
}

// TurnInput is one quiz turn's input
type TurnInput struct {
	State       NarrowingState
	PickedCats  []string
	UserInput   []string
	CategoryMap *CategoryMap
	Menu        *CategoryNode
}

// TurnResult is one quiz turn's output
type TurnResult struct {
	State             NarrowingState
	Answers           []string
	PendingCategories []string // answers followed by remaining PendingTop
	TerminalPaths     []SelectionPath
	FilteredItems     []MenuItem
}

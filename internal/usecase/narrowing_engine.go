package usecase

import "github.com/dishdecider/backend/internal/domain"

// NarrowingEngine runs one turn of the category narrowing quiz. It holds no
// per-game state; the caller passes the previous turn's state back in.
type NarrowingEngine struct {
	normalizeInput bool
}

// NewNarrowingEngine creates an engine. With normalizeInput set, free-form
// input is canonicalized against the category map before lookup.
func NewNarrowingEngine(normalizeInput bool) *NarrowingEngine {
	return &NarrowingEngine{normalizeInput: normalizeInput}
}

// Turn consumes the previous state plus this turn's input and produces the
// next state. The quiz first drains the top-level categories the user picked,
// one per turn, then expands whatever labels the user selects. When a turn
// yields no new answers the quiz moves to the dish picker and the committed
// paths are resolved into menu items.
func (e *NarrowingEngine) Turn(in domain.TurnInput) domain.TurnResult {
	state := in.State.Clone()

	if state.Stage == domain.StageDishPicker {
		return e.finish(state, in.Menu, []string{})
	}

	if !state.Started {
		var rootNames []string
		if in.CategoryMap != nil {
			rootNames = in.CategoryMap.Names
		}
		state.PendingTop = intersectOrdered(in.PickedCats, rootNames)
		state.Started = true
	}

	answers := []string{}
	if len(state.PendingTop) >= len(state.PendingCategories) {
		if len(state.PendingTop) > 0 {
			top := state.PendingTop[0]
			state.PendingTop = state.PendingTop[1:]

			path := domain.SelectionPath{top}
			if names, ok := namesAt(in.CategoryMap, path); ok {
				answers = append(answers, names...)
				state.SelectionPaths = append(state.SelectionPaths, path)
				state.PendingCategories = append(state.PendingCategories, names...)
			}
		}
	} else {
		labels := in.UserInput
		if e.normalizeInput {
			labels = NormalizeLabels(labels, in.CategoryMap)
		}
		found, paths := expandLabels(in.CategoryMap, labels)
		answers = append(answers, found...)
		state.SelectionPaths = append(state.SelectionPaths, paths...)
		state.PendingCategories = append(state.PendingCategories, found...)
	}

	pending := make([]string, 0, len(answers)+len(state.PendingTop))
	pending = append(pending, answers...)
	pending = append(pending, state.PendingTop...)

	if len(state.PendingTop) == len(pending) {
		state.Stage = domain.StageDishPicker
		return e.finish(state, in.Menu, answers)
	}

	state.Stage = domain.StageNarrowing
	return domain.TurnResult{
		State:             state,
		Answers:           answers,
		PendingCategories: pending,
		TerminalPaths:     []domain.SelectionPath{},
		FilteredItems:     []domain.MenuItem{},
	}
}

func (e *NarrowingEngine) finish(state domain.NarrowingState, menu *domain.CategoryNode, answers []string) domain.TurnResult {
	terminal := ResolveTerminalPaths(state.SelectionPaths)
	pending := append([]string{}, answers...)
	pending = append(pending, state.PendingTop...)
	return domain.TurnResult{
		State:             state,
		Answers:           answers,
		PendingCategories: pending,
		TerminalPaths:     terminal,
		FilteredItems:     ResolveDishes(menu, terminal),
	}
}

// expandLabels finds every occurrence of each label anywhere in the map and
// unions the names found beneath them. Every occurrence whose names lookup
// succeeds is returned as a selection path, even when it has no children.
func expandLabels(m *domain.CategoryMap, labels []string) ([]string, []domain.SelectionPath) {
	answers := []string{}
	var paths []domain.SelectionPath
	seenAnswer := make(map[string]bool)
	seenLabel := make(map[string]bool)

	for _, label := range labels {
		if seenLabel[label] {
			continue
		}
		seenLabel[label] = true

		for _, parent := range findOccurrences(m, label, nil) {
			path := parent.Extend(label)
			names, ok := namesAt(m, path)
			if !ok {
				continue
			}
			paths = append(paths, path)
			for _, name := range names {
				if !seenAnswer[name] {
					seenAnswer[name] = true
					answers = append(answers, name)
				}
			}
		}
	}
	return answers, paths
}

// findOccurrences returns the parent path of every node labelled label,
// depth-first in map order.
func findOccurrences(m *domain.CategoryMap, label string, prefix domain.SelectionPath) []domain.SelectionPath {
	if m == nil {
		return nil
	}
	var found []domain.SelectionPath
	for _, name := range m.ChildLabels() {
		if name == label {
			found = append(found, append(domain.SelectionPath{}, prefix...))
		}
		found = append(found, findOccurrences(m.Subcategories[name], label, prefix.Extend(name))...)
	}
	return found
}

// intersectOrdered keeps the entries of picked that appear in known, in
// picked order, without duplicates.
func intersectOrdered(picked, known []string) []string {
	allowed := make(map[string]bool, len(known))
	for _, k := range known {
		allowed[k] = true
	}
	out := []string{}
	seen := make(map[string]bool, len(picked))
	for _, p := range picked {
		if allowed[p] && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

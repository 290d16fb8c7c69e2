package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dishdecider/backend/internal/domain"
)

// Feature names derived from the menu item's own flags. Explicit
// DietaryFeature records for the same dish and name take precedence.
const (
	featureVegan      = "vegan"
	featureVegetarian = "vegetarian"
	featureGlutenFree = "gluten_free"
)

// DefaultMaxGap is the largest per-feature gap tolerated under PolicyDisqualify
const DefaultMaxGap = 1

// ScoringService filters dishes on hard dietary constraints and scores them
// against soft preferences.
type ScoringService struct {
	options domain.ScoringOptions
}

// NewScoringService creates a scoring service; zero-valued options fall back
// to accumulate / max gap 1 / ascending.
func NewScoringService(options domain.ScoringOptions) *ScoringService {
	return &ScoringService{options: normalizeOptions(options)}
}

// Options returns the active scoring options
func (s *ScoringService) Options() domain.ScoringOptions {
	return s.options
}

func normalizeOptions(o domain.ScoringOptions) domain.ScoringOptions {
	if o.Policy == "" {
		o.Policy = domain.PolicyAccumulate
	}
	if o.Sort == "" {
		o.Sort = domain.SortAscending
	}
	if o.MaxGap <= 0 {
		o.MaxGap = DefaultMaxGap
	}
	return o
}

// ValidateOptions rejects unknown policies and sort directions
func ValidateOptions(o domain.ScoringOptions) error {
	switch o.Policy {
	case "", domain.PolicyAccumulate, domain.PolicyDisqualify:
	default:
		return fmt.Errorf("%w: unknown scoring policy %q", domain.ErrInvalidInput, o.Policy)
	}
	switch o.Sort {
	case "", domain.SortAscending, domain.SortDescending:
	default:
		return fmt.Errorf("%w: unknown sort direction %q", domain.ErrInvalidInput, o.Sort)
	}
	if o.MaxGap < 0 {
		return fmt.Errorf("%w: max gap must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// featureTable maps dish id -> lower-cased feature name -> raw value
type featureTable map[string]map[string]string

func buildFeatureTable(menu []domain.MenuItem, features []domain.DietaryFeature) featureTable {
	table := make(featureTable, len(menu))
	for _, item := range menu {
		table[item.ID] = map[string]string{
			featureVegan:      flagValue(item.Vegan),
			featureVegetarian: flagValue(item.Vegetarian),
			featureGlutenFree: flagValue(item.GlutenFree),
		}
	}
	for _, f := range features {
		row, ok := table[f.DishID]
		if !ok {
			row = make(map[string]string)
			table[f.DishID] = row
		}
		row[strings.ToLower(strings.TrimSpace(f.Name))] = f.Value
	}
	return table
}

func flagValue(f domain.Flag) string {
	if f {
		return "TRUE"
	}
	return "FALSE"
}

func (t featureTable) lookup(dishID, feature string) (string, bool) {
	row, ok := t[dishID]
	if !ok {
		return "", false
	}
	v, ok := row[strings.ToLower(strings.TrimSpace(feature))]
	return v, ok
}

// FilterHard keeps dishes that have every answered feature set to true.
// A missing feature or any other value eliminates the dish.
func (s *ScoringService) FilterHard(menu []domain.MenuItem, features []domain.DietaryFeature, hardAnswers []string) []domain.MenuItem {
	table := buildFeatureTable(menu, features)
	kept := make([]domain.MenuItem, 0, len(menu))

	for _, item := range menu {
		ok := true
		for _, answer := range hardAnswers {
			v, found := table.lookup(item.ID, answer)
			if !found || !strings.EqualFold(strings.TrimSpace(v), "true") {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, item)
		}
	}
	return kept
}

// Score computes sum(|user - dish|) over the soft answers using the
// service's configured options.
func (s *ScoringService) Score(menu []domain.MenuItem, features []domain.DietaryFeature, soft []domain.SoftAnswer) []domain.ScoredDish {
	return s.ScoreWith(s.options, menu, features, soft)
}

// ScoreWith is Score with explicit options. Missing or non-numeric dish
// values count as 0.
func (s *ScoringService) ScoreWith(options domain.ScoringOptions, menu []domain.MenuItem, features []domain.DietaryFeature, soft []domain.SoftAnswer) []domain.ScoredDish {
	options = normalizeOptions(options)
	table := buildFeatureTable(menu, features)
	scored := make([]domain.ScoredDish, 0, len(menu))

	for _, item := range menu {
		total := 0
		disqualified := false
		for _, answer := range soft {
			raw, _ := table.lookup(item.ID, answer.Feature)
			gap := absInt(answer.Value - featureNumber(raw))
			if options.Policy == domain.PolicyDisqualify && gap > options.MaxGap {
				disqualified = true
				break
			}
			total += gap
		}
		if disqualified {
			continue
		}
		scored = append(scored, domain.ScoredDish{MenuItem: item, Score: total})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if options.Sort == domain.SortDescending {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Score < scored[j].Score
	})
	return scored
}

// Evaluate splits the answers into hard and soft using the questions, filters
// the menu on the hard ones and scores the survivors on the soft ones.
func (s *ScoringService) Evaluate(
	options domain.ScoringOptions,
	menu []domain.MenuItem,
	features []domain.DietaryFeature,
	questions []domain.Question,
	answers []domain.QuestionAnswer,
) ([]domain.ScoredDish, error) {
	hard, soft, err := SplitAnswers(questions, answers)
	if err != nil {
		return nil, err
	}
	filtered := s.FilterHard(menu, features, hard)
	return s.ScoreWith(options, filtered, features, soft), nil
}

// SplitAnswers resolves each answer's type (its own tag, else its question's)
// and returns the hard feature names and parsed soft answers.
func SplitAnswers(questions []domain.Question, answers []domain.QuestionAnswer) ([]string, []domain.SoftAnswer, error) {
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var hard []string
	var soft []domain.SoftAnswer
	for _, a := range answers {
		question, known := byID[a.QuestionID]
		kind := a.Type
		if kind == "" {
			kind = question.Type
		}

		switch kind {
		case domain.QuestionHard:
			for _, feature := range a.Answers {
				if f := strings.TrimSpace(feature); f != "" {
					hard = append(hard, f)
				}
			}
		case domain.QuestionSoft:
			for _, raw := range a.Answers {
				parsed, err := ParseSoftAnswer(raw)
				if err != nil {
					return nil, nil, err
				}
				soft = append(soft, parsed)
			}
			if len(a.Values) > 0 && !known {
				return nil, nil, fmt.Errorf("%w: unknown question %q", domain.ErrInvalidInput, a.QuestionID)
			}
			for i, v := range a.Values {
				if i >= len(question.Features) {
					return nil, nil, fmt.Errorf("%w: question %q has no feature for answer %d", domain.ErrInvalidInput, a.QuestionID, i)
				}
				soft = append(soft, domain.SoftAnswer{Feature: question.Features[i], Value: v})
			}
		default:
			return nil, nil, fmt.Errorf("%w: answer to %q has unknown type %q", domain.ErrInvalidInput, a.QuestionID, kind)
		}
	}
	return hard, soft, nil
}

// ParseSoftAnswer parses "featureName: integerValue"
func ParseSoftAnswer(raw string) (domain.SoftAnswer, error) {
	name, value, ok := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return domain.SoftAnswer{}, fmt.Errorf("%w: soft answer %q is not \"feature: value\"", domain.ErrInvalidInput, raw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return domain.SoftAnswer{}, fmt.Errorf("%w: soft answer %q has non-integer value", domain.ErrInvalidInput, raw)
	}
	return domain.SoftAnswer{Feature: name, Value: n}, nil
}

// featureNumber reads TRUE/FALSE as 1/0 and integers as themselves;
// anything else is 0.
func featureNumber(raw string) int {
	v := strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(v, "true"):
		return 1
	case strings.EqualFold(v, "false"):
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package domain

// DietaryFeature is one (dish, feature, value) record. Value is "TRUE",
// "FALSE" or a numeric string.
type DietaryFeature struct {
	DishID string `json:"dishId"`
	Name   string `json:"featureName"`
	Value  string `json:"value"`
}

// QuestionType tags a quiz question as a hard constraint or a soft preference
type QuestionType string

const (
	QuestionHard QuestionType = "hard"
	QuestionSoft QuestionType = "soft"
)

// Question is a dietary or preference question. For soft questions,
// Features[i] is the feature scored by the i-th positional answer value.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Text     string       `json:"question,omitempty"`
	Features []string     `json:"features,omitempty"`
}

// QuestionAnswer is the user's answer to one question.
// Hard answers list feature names the dish must have set to true.
// Soft answers are "featureName: value" strings or positional Values.
type QuestionAnswer struct {
	QuestionID string       `json:"questionId"`
	Type       QuestionType `json:"type,omitempty"`
	Answers    []string     `json:"answers,omitempty"`
	Values     []int        `json:"values,omitempty"`
}

// SoftAnswer is a parsed soft preference
type SoftAnswer struct {
	Feature string
	Value   int
}

// ScoredDish is a menu item with its computed distance score. The outer
// Score shadows MenuItem.Score on the wire.
type ScoredDish struct {
	MenuItem
	Score int `json:"score"`
}

// ScoringPolicy decides what a large per-feature gap does to a dish
type ScoringPolicy string

const (
	// PolicyAccumulate adds every gap to the dish score
	PolicyAccumulate ScoringPolicy = "accumulate"
	// PolicyDisqualify drops a dish when any single gap exceeds MaxGap
	PolicyDisqualify ScoringPolicy = "disqualify"
)

// SortDirection orders scored dishes
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ScoringOptions configures soft scoring
type ScoringOptions struct {
	Policy ScoringPolicy
	MaxGap int
	Sort   SortDirection
}

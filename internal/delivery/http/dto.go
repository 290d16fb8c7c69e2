package http

import "github.com/dishdecider/backend/internal/domain"

// MenuTreeRequest is the body of POST /api/v1/menu/tree
type MenuTreeRequest struct {
	QueryMenu []domain.MenuItem `json:"queryMenu" binding:"required"`
}

// MenuTreeResponse wraps the built tree and map
type MenuTreeResponse struct {
	FullMap *domain.FullMap `json:"fullMap"`
}

// QuizTurnRequest carries the previous turn's state plus this turn's input
type QuizTurnRequest struct {
	CategoryMap       *domain.CategoryMap  `json:"categoryMap" binding:"required"`
	Menu              *domain.CategoryNode `json:"menu"`
	PickedCats        []string             `json:"pickedCats"`
	UserInput         []string             `json:"userInput"`
	PendingTop        []string             `json:"pendingTop"`
	PendingCategories []string             `json:"pendingCategories"`
	SelectionPaths    []string             `json:"selectionPaths"`
	Started           bool                 `json:"started"`
	Stage             domain.Stage         `json:"stage"`
}

// QuizTurnResponse is the next state to hand back on the following turn
type QuizTurnResponse struct {
	Stage                 domain.Stage      `json:"stage"`
	Answers               []string          `json:"answers"`
	PendingTop            []string          `json:"pendingTop"`
	PendingCategories     []string          `json:"pendingCategories"`
	PendingCategoriesView []string          `json:"pending_categories"`
	SelectionPaths        []string          `json:"selectionPaths"`
	TerminalPaths         []string          `json:"terminalPaths"`
	Started               bool              `json:"started"`
	FilteredItems         []domain.MenuItem `json:"filteredItems"`
}

// ScoreRequest is the body of POST /api/v1/dishes/score
type ScoreRequest struct {
	Menu      []domain.MenuItem       `json:"menu" binding:"required"`
	Features  []domain.DietaryFeature `json:"features"`
	Questions []domain.Question       `json:"questions"`
	Answers   []domain.QuestionAnswer `json:"answers"`
	Policy    domain.ScoringPolicy    `json:"policy,omitempty"`
	Sort      domain.SortDirection    `json:"sort,omitempty"`
	MaxGap    *int                    `json:"maxGap,omitempty"`
}

// RecommendRequest is the body of POST /api/v1/dishes/recommend
type RecommendRequest struct {
	Dishes        []domain.ScoredDish `json:"dishes" binding:"required"`
	HistoricIDs   []string            `json:"historicIds"`
	SwipedLeftIDs []string            `json:"swipedLeftIds"`
}

// DishesResponse lists scored dishes
type DishesResponse struct {
	Dishes []domain.ScoredDish `json:"dishes"`
}

package usecase

import "github.com/dishdecider/backend/internal/domain"

// Recommend keeps recommend-flagged dishes the user has not already been
// shown or swiped away, in input order.
func Recommend(dishes []domain.ScoredDish, historicIDs, swipedLeftIDs []string) []domain.ScoredDish {
	excluded := make(map[string]bool, len(historicIDs)+len(swipedLeftIDs))
	for _, id := range historicIDs {
		excluded[id] = true
	}
	for _, id := range swipedLeftIDs {
		excluded[id] = true
	}

	out := make([]domain.ScoredDish, 0, len(dishes))
	for _, d := range dishes {
		if !bool(d.Recommend) || excluded[d.ID] {
			continue
		}
		out = append(out, d)
	}
	return out
}

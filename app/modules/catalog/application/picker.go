package catalogservice

import catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"

// PickUnusedRecipe picks uniformly among recipes whose id is not in
// excluding. It returns ErrExhausted when nothing is left.
func (c *Catalog) PickUnusedRecipe(excluding map[catalogdomain.RecipeID]struct{}) (catalogdomain.Recipe, error) {
	eligible := make([]int, 0, len(c.recipes))
	for i, r := range c.recipes {
		if _, used := excluding[r.ID]; !used {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return catalogdomain.Recipe{}, catalogdomain.ErrExhausted
	}
	return c.recipes[eligible[c.intn(len(eligible))]], nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

// Restaurants lists the first page of restaurants, filtered by the words
// after the command when given.
func (a *App) Restaurants(ctx context.Context, args []string) error {
	filter := models.RestaurantFilter{Query: strings.Join(args, " ")}

	page, err := a.api.GetRestaurants(ctx, pageSize, 0, filter)
	if err != nil {
		return err
	}
	if page == nil {
		fmt.Fprintln(a.out, "Restaurants are unavailable right now.")
		return nil
	}

	writeRestaurants(a.out, page.Items)
	if page.Total > len(page.Items) {
		fmt.Fprintf(a.out, "(%d of %d)\n", len(page.Items), page.Total)
	}
	return nil
}

// Restaurant shows one restaurant and, for a signed-in user, their visits to it.
func (a *App) Restaurant(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("restaurant <id>")
	}

	r, err := a.api.GetRestaurantByID(ctx, args[0])
	if err != nil {
		return err
	}
	if r == nil {
		fmt.Fprintln(a.out, "Restaurant not found.")
		return nil
	}
	writeRestaurant(a.out, r)

	if !a.isLoggedIn() {
		return nil
	}
	visits, err := a.api.GetVisitsByRestaurantID(ctx, a.session.UserID(), r.ID)
	if err != nil {
		return err
	}
	if len(visits) > 0 {
		fmt.Fprintln(a.out, "Your visits:")
		writeVisits(a.out, visits)
	}
	return nil
}

func (a *App) Similar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("similar <id>")
	}

	r, err := a.api.GetRestaurantByID(ctx, args[0])
	if err != nil {
		return err
	}
	if r == nil {
		fmt.Fprintln(a.out, "Restaurant not found.")
		return nil
	}

	similar, err := a.api.GetSimilarRestaurants(ctx, *r)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Similar to %s:\n", clean(r.Name))
	writeRestaurants(a.out, similar)
	return nil
}

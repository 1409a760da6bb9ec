package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ufood/internal/client/client"
)

// listArg returns args[i] when present, otherwise the selected list.
func (a *App) listArg(ctx context.Context, args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	id, err := a.authService.SelectedFavoriteList(ctx)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", client.ErrNoFavoriteList
	}
	return id, nil
}

// Lists shows the favorite lists of the current user; the selected one is
// marked with '*'.
func (a *App) Lists(ctx context.Context, _ []string) error {
	lists, err := a.api.GetUserFavoriteLists(ctx)
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		fmt.Fprintln(a.out, "No favorite lists.")
		return nil
	}

	selected, err := a.authService.SelectedFavoriteList(ctx)
	if err != nil {
		return err
	}
	for _, l := range lists {
		mark := " "
		if l.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", mark, clean(l.ID), clean(l.Name))
	}
	return nil
}

// List shows the restaurants of a list, the selected one by default.
func (a *App) List(ctx context.Context, args []string) error {
	listID, err := a.listArg(ctx, args, 0)
	if err != nil {
		return err
	}

	rs, err := a.api.GetFavoriteRestaurants(ctx, listID)
	if err != nil {
		return err
	}
	if len(rs) == 0 {
		fmt.Fprintln(a.out, "The list is empty.")
		return nil
	}
	for _, r := range rs {
		fmt.Fprintf(a.out, "%s  %s\n", clean(r.ID), clean(r.Name))
	}
	return nil
}

func (a *App) NewList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("newlist <name>")
	}

	list, err := a.api.CreateFavoriteList(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if list == nil {
		fmt.Fprintln(a.out, "The list was not created.")
		return nil
	}
	fmt.Fprintf(a.out, "Created list %s (%s)\n", clean(list.Name), clean(list.ID))
	return nil
}

func (a *App) RenameList(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("renamelist <id> <name>")
	}

	if err := a.api.UpdateFavoriteList(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "List renamed.")
	return nil
}

// DeleteList removes a list and forgets it if it was the selected one.
func (a *App) DeleteList(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("deletelist <id>")
	}

	if err := a.api.DeleteFavoriteList(ctx, args[0]); err != nil {
		return err
	}

	selected, err := a.authService.SelectedFavoriteList(ctx)
	if err == nil && selected == args[0] {
		err = a.authService.SelectFavoriteList(ctx, "")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "List deleted.")
	return nil
}

func (a *App) Select(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("select <id>")
	}
	if err := a.authService.SelectFavoriteList(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Selected list %s\n", clean(args[0]))
	return nil
}

// Fav adds a restaurant to a list, the selected one by default. It only
// reports success when the returned list holds the restaurant.
func (a *App) Fav(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("fav <restaurantId> [listId]")
	}
	listID, err := a.listArg(ctx, args, 1)
	if err != nil {
		return err
	}

	list, err := a.api.AddFavoriteRestaurant(ctx, listID, args[0])
	if err != nil {
		return err
	}
	if !list.Contains(args[0]) {
		fmt.Fprintln(a.out, "The restaurant was not added.")
		return nil
	}
	fmt.Fprintf(a.out, "Added to %s (%d restaurants)\n", clean(list.Name), len(list.Restaurants))
	return nil
}

func (a *App) Unfav(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("unfav <restaurantId> [listId]")
	}
	listID, err := a.listArg(ctx, args, 1)
	if err != nil {
		return err
	}

	ok, err := a.api.RemoveFavoriteRestaurant(ctx, listID, args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "The restaurant was not removed.")
		return nil
	}
	fmt.Fprintln(a.out, "Removed.")
	return nil
}

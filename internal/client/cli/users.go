package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Users(ctx context.Context, args []string) error {
	page, err := a.api.GetAllUsers(ctx, pageSize, 0, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}
	for _, u := range page.Items {
		fmt.Fprintln(a.out, userLine(u))
	}
	return nil
}

// User shows a profile and whether the current user follows it.
func (a *App) User(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("user <id>")
	}

	u, err := a.api.GetUserByID(ctx, args[0])
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Fprintln(a.out, "User not found.")
		return nil
	}
	writeUser(a.out, u)

	if me := a.session.Profile(); me != nil && me.ID != u.ID && me.IsFollowing(u.ID) {
		fmt.Fprintln(a.out, "  You follow this user.")
	}
	return nil
}

func (a *App) Follow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("follow <id>")
	}

	me, err := a.api.FollowUser(ctx, args[0])
	if err != nil {
		return err
	}
	if me == nil {
		fmt.Fprintln(a.out, "Follow failed.")
		return nil
	}
	a.session.SetSession(me)
	fmt.Fprintf(a.out, "Following %d users.\n", len(me.Following))
	return nil
}

func (a *App) Unfollow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("unfollow <id>")
	}

	me, err := a.api.UnfollowUser(ctx, args[0])
	if err != nil {
		return err
	}
	if me == nil {
		fmt.Fprintln(a.out, "Unfollow failed.")
		return nil
	}
	a.session.SetSession(me)
	fmt.Fprintf(a.out, "Following %d users.\n", len(me.Following))
	return nil
}

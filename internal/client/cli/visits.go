package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

const visitDateLayout = "2006-01-02"

// Visits lists the visits of a user, the current one by default.
func (a *App) Visits(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("visits [userId]")
	}
	userID := a.session.UserID()
	if len(args) == 1 {
		userID = args[0]
	}

	visits, err := a.api.GetUserVisits(ctx, userID, pageSize, 0)
	if err != nil {
		return err
	}
	writeVisits(a.out, visits)
	return nil
}

// Visit records a visit of the current user. The comment is read
// interactively when it is not given on the line.
func (a *App) Visit(ctx context.Context, args []string) error {
	const usage = usageError("visit <restaurantId> <rating 1-5> <YYYY-MM-DD> [comment]")
	if len(args) < 3 {
		return usage
	}

	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < 1 || rating > 5 {
		return usage
	}
	if _, err := time.Parse(visitDateLayout, args[2]); err != nil {
		return usage
	}

	comment := strings.Join(args[3:], " ")
	if comment == "" && a.isLoggedIn() {
		comment, err = getMultiline(a.reader, "Enter comment", a.out)
		if err != nil {
			return err
		}
	}

	v, err := a.api.CreateVisit(ctx, a.session.UserID(), models.NewVisit{
		RestaurantID: args[0],
		Comment:      comment,
		Rating:       rating,
		Date:         args[2],
	})
	if err != nil {
		return err
	}
	if v == nil {
		fmt.Fprintln(a.out, "The visit was not saved.")
		return nil
	}
	fmt.Fprintf(a.out, "Visit %s saved.\n", clean(v.ID))
	return nil
}

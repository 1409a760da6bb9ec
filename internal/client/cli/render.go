package cli

import (
	"fmt"
	"html"
	"io"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/ufood/internal/client/models"
	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every tag from text that came from the API.
var textPolicy = bluemonday.StrictPolicy()

// clean makes remote text safe to print on a terminal: markup is removed
// and control characters other than newline and tab are dropped.
func clean(s string) string {
	s = html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

func priceTag(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("$", n)
}

func restaurantLine(r models.Restaurant) string {
	genres := make([]string, len(r.Genres))
	for i, g := range r.Genres {
		genres[i] = clean(g)
	}
	return fmt.Sprintf("%s  %s  [%s]  %s  %.1f★",
		clean(r.ID), clean(r.Name), strings.Join(genres, ", "), priceTag(r.PriceRange), r.Rating)
}

func writeRestaurants(w io.Writer, rs []models.Restaurant) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "No restaurants found.")
		return
	}
	for _, r := range rs {
		fmt.Fprintln(w, restaurantLine(r))
	}
}

func writeRestaurant(w io.Writer, r *models.Restaurant) {
	fmt.Fprintln(w, restaurantLine(*r))
	if r.Address != "" {
		fmt.Fprintf(w, "  Address: %s\n", clean(r.Address))
	}
	if r.Tel != "" {
		fmt.Fprintf(w, "  Tel: %s\n", clean(r.Tel))
	}
	if r.Location.HasCoordinates() {
		fmt.Fprintf(w, "  Location: %.5f, %.5f\n", r.Location.Lat(), r.Location.Lon())
	}
	if len(r.Pictures) > 0 {
		fmt.Fprintf(w, "  Pictures: %d\n", len(r.Pictures))
	}
}

func userLine(u models.User) string {
	return fmt.Sprintf("%s  %s  <%s>", clean(u.ID), clean(u.Name), clean(u.Email))
}

func writeUser(w io.Writer, u *models.User) {
	fmt.Fprintln(w, userLine(*u))
	if u.Rating > 0 {
		fmt.Fprintf(w, "  Rating: %.1f\n", u.Rating)
	}
	fmt.Fprintf(w, "  Followers: %d  Following: %d\n", len(u.Followers), len(u.Following))
}

func writeVisits(w io.Writer, vs []models.Visit) {
	if len(vs) == 0 {
		fmt.Fprintln(w, "No visits.")
		return
	}
	for _, v := range vs {
		fmt.Fprintf(w, "%s  %s  restaurant %s  %d/5", clean(v.ID), clean(v.Date), clean(v.RestaurantID), v.Rating)
		if v.Comment != "" {
			fmt.Fprintf(w, "  %q", clean(v.Comment))
		}
		fmt.Fprintln(w)
	}
}

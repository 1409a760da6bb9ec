package cli

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/ufood/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Chez Paul", "Chez Paul"},
		{"tags stripped", "<b>Bold</b> <a href='x'>link</a>", "Bold link"},
		{"script removed", "<script>alert(1)</script>ok", "ok"},
		{"entities kept readable", "Fish & Chips", "Fish & Chips"},
		{"escape sequences dropped", "\x1b[2Jclear", "[2Jclear"},
		{"newlines kept", "a\nb", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clean(tt.in))
		})
	}
}

func TestPriceTag(t *testing.T) {
	assert.Equal(t, "-", priceTag(0))
	assert.Equal(t, "$$", priceTag(2))
}

func TestWriteRestaurant(t *testing.T) {
	var buf bytes.Buffer
	writeRestaurant(&buf, &models.Restaurant{
		ID:       "r1",
		Name:     "Pho",
		Genres:   []string{"vietnamese"},
		Tel:      "555",
		Location: models.Location{Type: "Point", Coordinates: []float64{-71.2, 46.8}},
		Pictures: []string{"a.jpg"},
	})

	assert.Equal(t,
		"r1  Pho  [vietnamese]  -  0.0★\n"+
			"  Tel: 555\n"+
			"  Location: 46.80000, -71.20000\n"+
			"  Pictures: 1\n",
		buf.String())
}

func TestWriteVisits_Empty(t *testing.T) {
	var buf bytes.Buffer
	writeVisits(&buf, nil)
	assert.Equal(t, "No visits.\n", buf.String())
}

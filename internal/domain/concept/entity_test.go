package concept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGenreCanonicalisesAliases(t *testing.T) {
	cases := []struct {
		in    string
		want  Genre
		known bool
	}{
		{"thriller", GenreThriller, true},
		{"  Thriller  ", GenreThriller, true},
		{"SCIFI", GenreSciFi, true},
		{"science fiction", GenreSciFi, true},
		{"doc", GenreDocumentary, true},
		{"Western", Genre("Western"), false},
		{"", Genre(""), false},
	}
	for _, tc := range cases {
		got, known := ParseGenre(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.known, known, "input %q", tc.in)
	}
}

func TestParseFormatFallsBackToFeature(t *testing.T) {
	got, known := ParseFormat("miniseries")
	assert.Equal(t, FormatLimitedSeries, got)
	assert.True(t, known)

	got, known = ParseFormat("radio play")
	assert.Equal(t, FormatFeature, got)
	assert.False(t, known)
}

func TestFormatIsSeries(t *testing.T) {
	assert.True(t, FormatLimitedSeries.IsSeries())
	assert.True(t, FormatTVSeries.IsSeries())
	assert.False(t, FormatFeature.IsSeries())
	assert.False(t, FormatShort.IsSeries())
}

func TestNormalizeCanonicalisesAndCapsComparables(t *testing.T) {
	c := Concept{
		Genre:            "thriller",
		SecondaryGenre:   "scifi",
		Format:           "tv",
		ComparableTitles: []string{"A", "B", "C", "D", "E"},
	}
	n := c.Normalize()
	assert.Equal(t, GenreThriller, n.Genre)
	assert.Equal(t, GenreSciFi, n.SecondaryGenre)
	assert.Equal(t, FormatTVSeries, n.Format)
	assert.Equal(t, []string{"A", "B", "C"}, n.ComparableTitles)

	// Unknown genre passes through untouched for downstream fallbacks.
	u := Concept{Genre: "Western", Format: "Feature Film"}.Normalize()
	assert.Equal(t, Genre("Western"), u.Genre)
}

func TestDeclaredMetadataHelpers(t *testing.T) {
	c := Concept{}
	assert.False(t, c.HasSecondaryGenre())
	assert.False(t, c.HasTone())

	c.SecondaryGenre = GenreHorror
	c.Tone = "  Dark  "
	assert.True(t, c.HasSecondaryGenre())
	assert.True(t, c.HasTone())
}

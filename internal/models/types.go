package models

// MediaType represents the type of media (movie or tv show)
type MediaType string

const (
	MediaTypeMovie    MediaType = "movie"
	MediaTypeTV       MediaType = "tv"
	MediaTypeTVSeason MediaType = "tv_season"
)

// ParseMediaType maps the type query parameter. Anything but "tv" is a movie.
func ParseMediaType(s string) MediaType {
	if s == string(MediaTypeTV) {
		return MediaTypeTV
	}
	return MediaTypeMovie
}

// Mode selects which analysis the analyze endpoint runs
type Mode string

const (
	ModeScore       Mode = "score"
	ModeSynopsis    Mode = "synopsis"
	ModeComposition Mode = "composition"
	ModeReport      Mode = "report"
)

// NotAvailable is the display sentinel for absent values
const NotAvailable = "N/A"

package shaper

import (
	"reflect"
	"testing"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/tmdb"
)

func TestCrewByJobDedupesAndCaps(t *testing.T) {
	crew := []tmdb.CrewCredit{
		{Name: "Emma Thomas", Job: "Producer"},
		{Name: "Wally Pfister", Job: "Director of Photography"},
		{Name: "Emma Thomas", Job: "Producer"},
		{Name: "Christopher Nolan", Job: "Producer"},
		{Name: "Zack Snyder", Job: "Producer"},
	}

	got := CrewByJob(crew, "Producer", 2)
	want := []string{"Emma Thomas", "Christopher Nolan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CrewByJob = %v, want %v", got, want)
	}

	if got := CrewByJob(crew, "Editor", 2); len(got) != 0 {
		t.Errorf("Expected no editors, got %v", got)
	}
}

func TestComposersFallback(t *testing.T) {
	primary := []tmdb.CrewCredit{
		{Name: "Someone", Job: "Music"},
		{Name: "Hans Zimmer", Job: "Original Music Composer"},
	}
	if got := Composers(primary); !reflect.DeepEqual(got, []string{"Hans Zimmer"}) {
		t.Errorf("Expected primary composer, got %v", got)
	}

	fallback := []tmdb.CrewCredit{{Name: "Danny Elfman", Job: "Music"}}
	if got := Composers(fallback); !reflect.DeepEqual(got, []string{"Danny Elfman"}) {
		t.Errorf("Expected Music fallback, got %v", got)
	}
}

func TestSortByYearUnknownLast(t *testing.T) {
	parts := []models.Related{
		{ID: 1, Year: "2004"},
		{ID: 2, Year: "N/A"},
		{ID: 3, Year: "1999"},
	}
	SortByYear(parts)

	var years []string
	for _, p := range parts {
		years = append(years, p.Year)
	}
	if !reflect.DeepEqual(years, []string{"1999", "2004", "N/A"}) {
		t.Errorf("Unexpected order %v", years)
	}
}

func TestSortByYearSeasonLabels(t *testing.T) {
	parts := []models.Related{
		{ID: 1, Year: "N/A | 0 Eps"},
		{ID: 2, Year: "2009 | 13 Eps"},
		{ID: 3, Year: "2008 | 7 Eps"},
		{ID: 4, Year: "2009 | 13 Eps"},
	}
	SortByYear(parts)

	var ids []int
	for _, p := range parts {
		ids = append(ids, p.ID)
	}
	if !reflect.DeepEqual(ids, []int{3, 2, 4, 1}) {
		t.Errorf("Unexpected order %v", ids)
	}
}

func TestTrailer(t *testing.T) {
	videos := []tmdb.Video{
		{Key: "teaser", Site: "YouTube", Type: "Teaser"},
		{Key: "vimeo", Site: "Vimeo", Type: "Trailer"},
		{Key: "YoHD9XEInc0", Site: "YouTube", Type: "Trailer"},
	}
	got := Trailer(videos)
	if got == nil || *got != "YoHD9XEInc0" {
		t.Errorf("Unexpected trailer %v", got)
	}
	if Trailer(nil) != nil {
		t.Error("Expected nil trailer")
	}
}

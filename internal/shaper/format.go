package shaper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amaumene/mellab/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Image widths
const (
	PosterSize    = "w500"
	ThumbnailSize = "w200"
)

// unknownYear sorts entries without a year after every real one
const unknownYear = 9999

var printer = message.NewPrinter(language.English)

// Grouped renders n with thousands separators
func Grouped(n int64) string {
	return printer.Sprintf("%d", n)
}

// Currency renders an amount as "$1,000,000", or "N/A" when zero
func Currency(amount int64) string {
	if amount <= 0 {
		return models.NotAvailable
	}
	return "$" + Grouped(amount)
}

// Votes renders a vote count as "12,345 Votes"
func Votes(count int) string {
	return Grouped(int64(count)) + " Votes"
}

// Score renders an average as "7.1/10", rounding half away from zero
func Score(average float64) string {
	return fmt.Sprintf("%.1f/10", math.Round(average*10)/10)
}

// Year returns the leading four-digit year of a date, or "N/A"
func Year(date string) string {
	if len(date) < 4 {
		return models.NotAvailable
	}
	return date[:4]
}

// yearKey extracts the sortable year at the start of a display string
func yearKey(display string) int {
	if len(display) < 4 {
		return unknownYear
	}
	year, err := strconv.Atoi(display[:4])
	if err != nil {
		return unknownYear
	}
	return year
}

// Language upper-cases an ISO 639-1 code, defaulting to English
func Language(code string) string {
	if code == "" {
		return "EN"
	}
	return strings.ToUpper(code)
}

// OrNA returns s, or "N/A" when s is empty
func OrNA(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}

// ImageURL composes a sized image URL, or nil when the provider gave no path
func (s *Shaper) ImageURL(size, path string) *string {
	if path == "" {
		return nil
	}
	u := s.imageBaseURL + "/" + size + path
	return &u
}

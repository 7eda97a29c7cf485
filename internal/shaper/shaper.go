// Package shaper turns raw provider responses into the stable output schema.
// Every function is a pure function of its inputs.
package shaper

import "strings"

// Shaper carries the only configuration shaping needs: the image CDN base
type Shaper struct {
	imageBaseURL string
}

// New creates a Shaper composing image URLs under imageBaseURL
func New(imageBaseURL string) *Shaper {
	return &Shaper{imageBaseURL: strings.TrimRight(imageBaseURL, "/")}
}

package models

import "strconv"

// Query holds the parsed query parameters of one invocation
type Query struct {
	Title     string    `validate:"required_without=ID"`
	ID        string    `validate:"required_without=Title"`
	MediaType MediaType `validate:"oneof=movie tv"`
	Mode      Mode      `validate:"oneof=score synopsis composition report"`
	Page      int       `validate:"min=1"`
	Season    string
}

// ParseQuery builds a Query from a flat parameter mapping, applying defaults.
// An unparsable or non-positive page becomes 1.
func ParseQuery(params map[string]string) Query {
	q := Query{
		Title:     params["title"],
		ID:        params["id"],
		MediaType: ParseMediaType(params["type"]),
		Mode:      Mode(params["mode"]),
		Page:      1,
		Season:    params["season"],
	}

	if q.Mode == "" {
		q.Mode = ModeScore
	}

	if raw, ok := params["page"]; ok {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			q.Page = page
		}
	}

	return q
}

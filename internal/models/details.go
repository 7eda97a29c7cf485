package models

// Candidate is one disambiguation-list entry for a free-text query
type Candidate struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Year      string    `json:"year"`
	MediaType MediaType `json:"media_type"`
	Poster    *string   `json:"poster"`
	Overview  string    `json:"overview"`
}

// CandidatePage is the list-flow response of the search endpoint
type CandidatePage struct {
	Candidates []Candidate `json:"candidates"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
}

// Scores holds the external ratings taken from OMDb
type Scores struct {
	IMDb                 string `json:"imdb"`
	Metacritic           string `json:"metacritic"`
	RottenTomatoesCritic string `json:"rotten_tomatoes_critic"`
}

// CastMember is one billed performer
type CastMember struct {
	Name        string  `json:"name"`
	ProfilePath *string `json:"profile_path"`
}

// Related is an entry of a collection, season manifest or recommendation list
type Related struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Year      string    `json:"year"`
	Poster    *string   `json:"poster"`
	MediaType MediaType `json:"media_type"`
}

// Collection is a movie collection or the season manifest of a series
type Collection struct {
	Name  string    `json:"name"`
	Parts []Related `json:"parts"`
}

// EntityDetails is the denormalized record returned for a single movie or series
type EntityDetails struct {
	TMDBID         int       `json:"tmdb_id"`
	MediaType      MediaType `json:"media_type"`
	Title          string    `json:"title"`
	Tagline        string    `json:"tagline"`
	Year           string    `json:"year"`
	Rated          string    `json:"rated"`
	Status         string    `json:"status,omitempty"`
	RuntimeMinutes *int      `json:"runtime_minutes"`
	Plot           string    `json:"plot"`
	Poster         *string   `json:"poster"`
	VoteAverage    float64   `json:"vote_average"`
	VoteCount      int       `json:"vote_count"`
	Scores         Scores    `json:"scores"`
	Awards         string    `json:"awards"`
	Language       string    `json:"language"`
	Budget         string    `json:"budget"`
	Revenue        string    `json:"revenue"`

	// Director is null for series; creators take its place
	Director         *string  `json:"director"`
	Creators         []string `json:"creators,omitempty"`
	Writer           string   `json:"writer"`
	Networks         []string `json:"networks,omitempty"`
	Production       []string `json:"production"`
	Producers        []string `json:"producers"`
	Cinematographers []string `json:"cinematographers"`
	Composers        []string `json:"composers"`

	Cast            []CastMember `json:"cast"`
	Genres          []string     `json:"genres"`
	Collection      *Collection  `json:"collection"`
	TrailerKey      *string      `json:"trailer_key"`
	Keywords        []string     `json:"keywords"`
	Recommendations []Related    `json:"recommendations"`
}

package tmdb

// NamedEntry is the {id, name} shape TMDB uses for genres, companies, networks and keywords
type NamedEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SearchResult is one entry of a multi search. Movies carry title/release_date,
// series carry name/first_air_date.
type SearchResult struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	Popularity   float64 `json:"popularity"`
}

// DisplayTitle returns the name for series and the title otherwise
func (r SearchResult) DisplayTitle() string {
	if r.MediaType == "tv" {
		return r.Name
	}
	return r.Title
}

// Date returns the first air date for series and the release date otherwise
func (r SearchResult) Date() string {
	if r.MediaType == "tv" {
		return r.FirstAirDate
	}
	return r.ReleaseDate
}

// SearchResponse is a page of multi search results
type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// CastCredit is one cast entry
type CastCredit struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// CrewCredit is one crew entry
type CrewCredit struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits is the appended credits block
type Credits struct {
	Cast []CastCredit `json:"cast"`
	Crew []CrewCredit `json:"crew"`
}

// ExternalIDs is the appended external_ids block
type ExternalIDs struct {
	IMDbID string `json:"imdb_id"`
}

// Video is one appended video
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Videos is the appended videos block
type Videos struct {
	Results []Video `json:"results"`
}

// Recommendation is one appended recommendation
type Recommendation struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	PosterPath   string `json:"poster_path"`
}

// Recommendations is the appended recommendations block
type Recommendations struct {
	Results []Recommendation `json:"results"`
}

// CollectionRef is the belongs_to_collection block of a movie
type CollectionRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is a movie detail response with credits, external_ids, videos,
// keywords and recommendations appended
type Movie struct {
	ID                  int             `json:"id"`
	Title               string          `json:"title"`
	Tagline             string          `json:"tagline"`
	Overview            string          `json:"overview"`
	ReleaseDate         string          `json:"release_date"`
	Runtime             *int            `json:"runtime"`
	PosterPath          string          `json:"poster_path"`
	OriginalLanguage    string          `json:"original_language"`
	VoteAverage         float64         `json:"vote_average"`
	VoteCount           int             `json:"vote_count"`
	Budget              int64           `json:"budget"`
	Revenue             int64           `json:"revenue"`
	Genres              []NamedEntry    `json:"genres"`
	ProductionCompanies []NamedEntry    `json:"production_companies"`
	BelongsToCollection *CollectionRef  `json:"belongs_to_collection"`
	Credits             Credits         `json:"credits"`
	ExternalIDs         ExternalIDs     `json:"external_ids"`
	Videos              Videos          `json:"videos"`
	Recommendations     Recommendations `json:"recommendations"`
	Keywords            struct {
		Keywords []NamedEntry `json:"keywords"`
	} `json:"keywords"`
}

// Season is one entry of a series season list
type Season struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	AirDate      string `json:"air_date"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
}

// ContentRating is one regional certification of a series
type ContentRating struct {
	ISO31661 string `json:"iso_3166_1"`
	Rating   string `json:"rating"`
}

// TV is a series detail response with credits, external_ids, videos, keywords,
// recommendations and content_ratings appended
type TV struct {
	ID                  int             `json:"id"`
	Name                string          `json:"name"`
	Tagline             string          `json:"tagline"`
	Overview            string          `json:"overview"`
	FirstAirDate        string          `json:"first_air_date"`
	LastAirDate         string          `json:"last_air_date"`
	Status              string          `json:"status"`
	PosterPath          string          `json:"poster_path"`
	OriginalLanguage    string          `json:"original_language"`
	VoteAverage         float64         `json:"vote_average"`
	VoteCount           int             `json:"vote_count"`
	Genres              []NamedEntry    `json:"genres"`
	CreatedBy           []NamedEntry    `json:"created_by"`
	Networks            []NamedEntry    `json:"networks"`
	ProductionCompanies []NamedEntry    `json:"production_companies"`
	Seasons             []Season        `json:"seasons"`
	Credits             Credits         `json:"credits"`
	ExternalIDs         ExternalIDs     `json:"external_ids"`
	Videos              Videos          `json:"videos"`
	Recommendations     Recommendations `json:"recommendations"`
	Keywords            struct {
		Results []NamedEntry `json:"results"`
	} `json:"keywords"`
	ContentRatings struct {
		Results []ContentRating `json:"results"`
	} `json:"content_ratings"`
}

// CollectionPart is one movie of a collection
type CollectionPart struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}

// Collection is a collection detail response
type Collection struct {
	ID    int              `json:"id"`
	Name  string           `json:"name"`
	Parts []CollectionPart `json:"parts"`
}

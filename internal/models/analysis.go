package models

// EntityContext is the minimal description of an entity handed to every analysis
type EntityContext struct {
	TMDBID        int
	MediaType     MediaType
	Name          string
	Year          string
	SearchContext string // "Movie" or "TV Series"
	Genres        string // comma-joined, "Unknown Genre" when empty
	VoteAverage   float64
	VoteCount     int
}

// ScoreReport is the score-mode result
type ScoreReport struct {
	PopcornScore string `json:"popcorn_score"`
}

// SynopsisReport is the synopsis-mode result
type SynopsisReport struct {
	FullPlot       string `json:"full_plot"`
	DetailedEnding string `json:"detailed_ending"`
}

// EmotionalScores rates the emotional experience
type EmotionalScores struct {
	Thrill int `json:"thrill"`
	Glee   int `json:"glee"`
	Love   int `json:"love"`
	Terror int `json:"terror"`
}

// NarrativeScores rates the narrative structure
type NarrativeScores struct {
	Twist      int `json:"twist"`
	Complexity int `json:"complexity"`
	Pacing     int `json:"pacing"`
	Novelty    int `json:"novelty"`
}

// ContentScores rates the content intensity (parental advisory)
type ContentScores struct {
	Gore      int `json:"gore"`
	Nudity    int `json:"nudity"`
	Profanity int `json:"profanity"`
	Substance int `json:"substance"`
}

// TechnicalScores rates the technical craft
type TechnicalScores struct {
	Cinematography int `json:"cinematography"`
	Score          int `json:"score"`
	Performance    int `json:"performance"`
	Immersion      int `json:"immersion"`
}

// CompositionReport is the composition-mode result. The zero value marshals to {}.
type CompositionReport struct {
	Emotional *EmotionalScores `json:"emotional,omitempty"`
	Narrative *NarrativeScores `json:"narrative,omitempty"`
	Content   *ContentScores   `json:"content,omitempty"`
	Technical *TechnicalScores `json:"technical,omitempty"`
}

// LabFacts are the measured numbers of a lab report
type LabFacts struct {
	TMDBScore    string `json:"tmdb_score"`
	TMDBVotes    string `json:"tmdb_votes"`
	PopcornScore string `json:"popcorn_score"`
	PopcornVotes string `json:"popcorn_votes"`
}

// LabResult is the generated diagnosis of a lab report
type LabResult struct {
	Verdict    string `json:"verdict"`
	Suggestion string `json:"suggestion"`
}

// LabReport is the report-mode result
type LabReport struct {
	Facts  LabFacts  `json:"facts"`
	Result LabResult `json:"result"`
}

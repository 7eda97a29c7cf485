package controllers

import (
	"fmt"
	"strings"

	"github.com/amaumene/mellab/internal/models"
)

// PopcornQuery is the grounding search the score analyses ask the model to run
func PopcornQuery(ec models.EntityContext) string {
	return fmt.Sprintf("site:rottentomatoes.com popcornmeter for '%s' (%s)", ec.Name, ec.Year)
}

func scorePrompt(ec models.EntityContext) string {
	return fmt.Sprintf(`TASK: Run a Google Search for "%s".
Report ONLY the Popcornmeter (audience score) percentage shown for that title.
If the page cannot be found, report "N/A".
Answer with JSON only.
JSON Schema: { "popcorn_score": "String (e.g. 95%% or N/A)" }`, PopcornQuery(ec))
}

func reportPrompt(ec models.EntityContext) string {
	return fmt.Sprintf(`TASK: Act as the chief analyst of a movie evaluation laboratory examining the %s "%s" (%s). Genres: %s.
1. Run a Google Search for "%s" and read the Popcornmeter percentage and its number of verified ratings.
2. Weigh the audience reception against a critic average of %.1f/10 from %d votes.
3. Deliver a one-line verdict and a short viewing suggestion (who should watch it and when).
Answer with JSON only.
JSON Schema: { "popcorn_score": "String (e.g. 95%% or N/A)", "popcorn_votes": "String (e.g. 250,000+ Ratings or N/A)", "verdict": "String", "suggestion": "String" }`,
		ec.SearchContext, ec.Name, ec.Year, ec.Genres, PopcornQuery(ec), ec.VoteAverage, ec.VoteCount)
}

// Tone guides keyed by genre; the first genre in the list that matches wins
var tones = []struct {
	genres []string
	guide  string
}{
	{[]string{"comedy", "animation"}, "Use dry wit, irony and observational humor. Treat absurd situations with deadpan seriousness."},
	{[]string{"horror", "thriller"}, "Be cold, unsettling and clinically detailed about the terror."},
	{[]string{"action", "adventure", "war"}, "Use punchy, dynamic language for kinetic events and strategy."},
	{[]string{"drama", "romance"}, "Focus on psychological depth, emotional causality and relationship dynamics."},
}

const defaultTone = "Write as a meticulous archivist: precise, vivid and even-handed."

// ToneFor picks the writing voice for a comma-separated genre list
func ToneFor(genres string) string {
	for _, g := range strings.Split(genres, ",") {
		g = strings.ToLower(strings.TrimSpace(g))
		for _, t := range tones {
			for _, match := range t.genres {
				if g == match {
					return t.guide
				}
			}
		}
	}
	return defaultTone
}

// synopsisTarget names what the dossier is about. A season only applies to series.
func synopsisTarget(ec models.EntityContext, season string) string {
	if season != "" && ec.MediaType == models.MediaTypeTV {
		return fmt.Sprintf("%s of the TV Series '%s'", season, ec.Name)
	}
	return fmt.Sprintf("the %s '%s' (%s)", ec.SearchContext, ec.Name, ec.Year)
}

func synopsisPrompt(ec models.EntityContext, season string) string {
	return fmt.Sprintf(`TASK: Write a "Declassified Specimen File" for %s.
GENRE CONTEXT: %s

VOICE: %s
Keep the rigid laboratory dossier structure regardless of voice. Refer to characters by name.

'full_plot' FORMAT:
1. Begin with exactly three header lines:
   SPECIMEN FILE: %s
   SUBJECT: [Protagonist Name(s)]
   NARRATIVE START: [Date or Initial Setting]
2. Then 5-7 substantial paragraphs covering the main plot.
3. Open every paragraph with a short BOLD UPPERCASE phase title and a colon (e.g. **THE INCITING INCIDENT:**).

'detailed_ending' FORMAT:
1. The full resolution, emotional climax and final scene. Spoilers are expected.
2. 3-5 paragraphs, each opening with a BOLD UPPERCASE phase title (e.g. **FINAL REVELATION:**, **FILE CLOSED:**).

Answer with JSON only.
JSON Schema: { "full_plot": "String", "detailed_ending": "String" }`,
		synopsisTarget(ec, season), ec.Genres, ToneFor(ec.Genres), strings.ToUpper(ec.Name))
}

func compositionPrompt(ec models.EntityContext) string {
	return fmt.Sprintf(`TASK: Act as a senior film pathologist analysing the %s "%s" (%s). Genres: %s.
Estimate the INTENSITY (integer 0-100, 0 = none, 100 = extreme) of each of these 16 attributes.

1. EMOTIONAL EXPERIENCE
- thrill: excitement, adrenaline, kinetic energy
- glee: amusement, humor, delight
- love: romance, chemistry, longing
- terror: fear, suspense, dread
2. NARRATIVE STRUCTURE
- twist: shock value and unpredictability of plot turns
- complexity: layered storytelling that demands focus
- pacing: speed of plot progression
- novelty: originality of the concept
3. CONTENT INTENSITY (parental advisory)
- gore: visceral violence, blood
- nudity: sexual content, nudity
- profanity: frequency and severity of language
- substance: drug and alcohol use
4. TECHNICAL DIAGNOSTICS
- cinematography: visual beauty, shot composition
- score: impact of the music
- performance: acting quality, cast chemistry
- immersion: world-building, atmosphere

Answer with JSON only.
JSON Schema:
{
  "emotional": { "thrill": Int, "glee": Int, "love": Int, "terror": Int },
  "narrative": { "twist": Int, "complexity": Int, "pacing": Int, "novelty": Int },
  "content": { "gore": Int, "nudity": Int, "profanity": Int, "substance": Int },
  "technical": { "cinematography": Int, "score": Int, "performance": Int, "immersion": Int }
}`, ec.SearchContext, ec.Name, ec.Year, ec.Genres)
}

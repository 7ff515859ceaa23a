package heatindex

// Difficulty classifies how painful a reservation is to get.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
	DifficultyBrutal   Difficulty = "Brutal"
)

// Entry is one restaurant record. Extractors build it incrementally,
// Merge folds duplicates across publishers, scoring fills the derived
// fields, and from there it is handed to rendering read-only.
type Entry struct {
	// display name, leading listicle numbering already stripped
	Name string
	// best non-booking "details" link
	CanonicalURL string
	// booking platform link that passed the venue gate
	ReserveURL string
	ImageURL   string
	// provenance label of the publisher the image came from,
	// consulted by the merge precedence rule
	ImageSource  string
	Neighborhood string
	Cuisine      string
	// first qualifying descriptive paragraph
	Blurb string
	// provenance labels, sorted, never empty on an accepted entry
	Sources []string

	// derived, recomputed on every run
	HeatScore  int
	Difficulty Difficulty
	BookingTip string
	// walk-in style annotation shown instead of a booking call to
	// action; only meaningful while ReserveURL is empty
	ActionText string
}

// HasSource reports whether the entry carries the given provenance
// label.
func (e Entry) HasSource(label string) bool {
	for _, s := range e.Sources {
		if s == label {
			return true
		}
	}
	return false
}

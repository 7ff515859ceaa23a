package heatindex

// SmtpConfig mirrors the delivery secrets; usually supplied through
// config.local.json5.
type SmtpConfig struct {
	Server      string   `json:"server"`
	Port        int      `json:"port"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	FromName    string   `json:"from_name"`
	FromEmail   string   `json:"from_email"`
	ReplyTo     string   `json:"reply_to"`
	Subscribers []string `json:"subscribers"`
}

// Config is the full runtime configuration of the newsletter engine.
type Config struct {
	Sources   []SourceConfig  `json:"sources"`
	Weights   Weights         `json:"weights"`
	Intensity []KeywordBucket `json:"intensity"`
	Scarcity  []KeywordBucket `json:"scarcity"`
	Smtp      SmtpConfig      `json:"smtp"`
	// sqlite file holding issue history; ":memory:" works for tests
	Database  string `json:"database"`
	OutputDir string `json:"output_dir"`
}

// Scoring assembles the scoring view of the config, falling back to
// defaults for anything the file left unset.
func (c Config) Scoring() ScoringConfig {
	out := ScoringConfig{
		Weights:   c.Weights,
		Intensity: c.Intensity,
		Scarcity:  c.Scarcity,
	}
	defaults := DefaultScoring()
	if out.Weights == (Weights{}) {
		out.Weights = defaults.Weights
	}
	if len(out.Intensity) == 0 {
		out.Intensity = defaults.Intensity
	}
	if len(out.Scarcity) == 0 {
		out.Scarcity = defaults.Scarcity
	}
	for _, s := range c.Sources {
		out.SourceLabels = append(out.SourceLabels, s.Label)
	}
	if len(out.SourceLabels) == 0 {
		out.SourceLabels = defaults.SourceLabels
	}
	return out
}

// DefaultScoring carries the tuned production weights and keyword
// tables.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		Weights: Weights{
			BothSourcesBonus:       40,
			NewThisMonthBonus:      20,
			CarriedOverBonus:       10,
			LanguageIntensityMax:   15,
			ReservationScarcityMax: 15,
		},
		Intensity: []KeywordBucket{
			{Value: 5, Keywords: []string{"buzz", "buzzy", "hype", "hot", "hottest", "must-try", "viral"}},
			{Value: 8, Keywords: []string{"line", "lines", "packed", "crowded", "always full", "slam", "slammed"}},
			{Value: 12, Keywords: []string{"hard to book", "tough reservation", "impossible", "sold out", "booked up"}},
			{Value: 15, Keywords: []string{"the hardest", "nearly impossible", "months out"}},
		},
		Scarcity: []KeywordBucket{
			{Value: 5, Keywords: []string{"reservations recommended", "book ahead", "limited seating"}},
			{Value: 8, Keywords: []string{"reservation release", "drops", "at noon", "at 10am", "set your alarm"}},
			{Value: 12, Keywords: []string{"walk-in only", "walk ins only", "no reservations", "bar seats", "counter seats"}},
			{Value: 15, Keywords: []string{"ticketed", "prepaid", "waiting list"}},
		},
		SourceLabels: []string{SourceResy, SourceEater},
	}
}

// DefaultSources is the current publisher lineup.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Label: SourceResy,
			Name:  "Resy Hit List (NYC)",
			Url:   "https://blog.resy.com/the-hit-list/nyc-restaurants/",
		},
		{
			Label: SourceEater,
			Name:  "Eater Heatmap (Manhattan)",
			Url:   "https://ny.eater.com/maps/best-new-nyc-restaurants-heatmap",
		},
	}
}

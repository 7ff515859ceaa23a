package heatindex

import (
	"sort"
	"strings"

	"heatindex-backend/lib/textutil"
)

// Weights are the named scoring knobs. Kept together so a config file
// can tune them without touching code.
type Weights struct {
	BothSourcesBonus       int `json:"both_sources_bonus"`
	NewThisMonthBonus      int `json:"new_this_month_bonus"`
	CarriedOverBonus       int `json:"carried_over_bonus"`
	LanguageIntensityMax   int `json:"language_intensity_max"`
	ReservationScarcityMax int `json:"reservation_scarcity_max"`
}

// KeywordBucket maps a severity value to the keywords that earn it.
type KeywordBucket struct {
	Value    int      `json:"value"`
	Keywords []string `json:"keywords"`
}

// ScoringConfig is everything heat scoring depends on besides the
// entry itself; passing it explicitly keeps the scorer a pure,
// independently testable function.
type ScoringConfig struct {
	Weights      Weights         `json:"weights"`
	Intensity    []KeywordBucket `json:"intensity"`
	Scarcity     []KeywordBucket `json:"scarcity"`
	SourceLabels []string        `json:"source_labels"`
}

// KeywordScore takes the highest bucket value whose keywords appear in
// the text, clamped to max. Zero when the text matches nothing.
func KeywordScore(text string, buckets []KeywordBucket, max int) int {
	if text == "" {
		return 0
	}
	best := 0
	for _, bucket := range buckets {
		if bucket.Value > best && textutil.ContainsAny(text, bucket.Keywords) {
			best = bucket.Value
		}
	}
	if best > max {
		return max
	}
	return best
}

var brutalSignals = []string{"impossible", "sold out", "months out", "hardest", "booked up"}
var hardSignals = []string{"hard to book", "tough reservation", "set your alarm", "reservation release", "drops"}
var easySignals = []string{"walk-in friendly", "plenty of seats", "easy to book", "no problem getting in"}

func classifyDifficulty(blurb string) Difficulty {
	switch {
	case textutil.ContainsAny(blurb, brutalSignals):
		return DifficultyBrutal
	case textutil.ContainsAny(blurb, hardSignals):
		return DifficultyHard
	case textutil.ContainsAny(blurb, easySignals):
		return DifficultyEasy
	default:
		return DifficultyModerate
	}
}

const genericBookingTip = "Book ahead where possible; otherwise aim for off-peak (early/late) and consider bar seating."

var platformTips = map[string]string{
	"resy.com":        "Use Resy: check common drop times (often mornings), enable notifications, and target bar/counter seats.",
	"opentable.com":   "Use OpenTable: book 1-2 weeks out, then set alerts for earlier times and watch for last-minute openings.",
	"exploretock.com": "Use Tock: releases are often calendar-based, so check the venue's booking window and set a reminder.",
}

var platformTextHints = map[string]string{
	"resy.com":        "resy",
	"opentable.com":   "opentable",
	"exploretock.com": "tock",
}

// checked in fixed order so scoring stays deterministic
var platformOrder = []string{"resy.com", "opentable.com", "exploretock.com"}

func detectPlatform(e Entry) string {
	for _, u := range []string{e.ReserveURL, e.CanonicalURL} {
		if u == "" {
			continue
		}
		for _, domain := range platformOrder {
			if strings.Contains(u, domain) {
				return domain
			}
		}
	}
	blurb := strings.ToLower(e.Blurb)
	for _, domain := range platformOrder {
		if strings.Contains(blurb, platformTextHints[domain]) {
			return domain
		}
	}
	return ""
}

// reservationIntel derives the difficulty classification and booking
// tip. Tip priority: explicit walk-in annotation, then detected
// platform, then the generic fallback.
func reservationIntel(e Entry) (Difficulty, string) {
	difficulty := classifyDifficulty(e.Blurb)

	blurb := strings.ToLower(e.Blurb)
	if e.ActionText != "" || strings.Contains(blurb, "walk-in") || strings.Contains(blurb, "walk ins") {
		return difficulty, "Treat it like a walk-in: go early (before 6pm) or late, and be flexible on party size."
	}
	if platform := detectPlatform(e); platform != "" {
		return difficulty, platformTips[platform]
	}
	return difficulty, genericBookingTip
}

// ComputeHeat scores every entry in place and orders the list by
// descending heat, ties keeping their prior relative order. Pure with
// respect to (entries, lastMonthNames, config): identical inputs give
// bit-identical scores, difficulties and tips.
func ComputeHeat(entries []Entry, lastMonthNames []string, config ScoringConfig) {
	lastSet := map[string]bool{}
	for _, n := range lastMonthNames {
		lastSet[NormalizeName(n)] = true
	}

	for i := range entries {
		e := &entries[i]
		score := 0

		everySource := len(config.SourceLabels) > 0
		for _, label := range config.SourceLabels {
			if !e.HasSource(label) {
				everySource = false
				break
			}
		}
		if everySource {
			score += config.Weights.BothSourcesBonus
		}

		if lastSet[NormalizeName(e.Name)] {
			score += config.Weights.CarriedOverBonus
		} else {
			score += config.Weights.NewThisMonthBonus
		}

		score += KeywordScore(e.Blurb, config.Intensity, config.Weights.LanguageIntensityMax)
		score += KeywordScore(e.Blurb, config.Scarcity, config.Weights.ReservationScarcityMax)

		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		e.HeatScore = score
		e.Difficulty, e.BookingTip = reservationIntel(*e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].HeatScore > entries[j].HeatScore
	})
}

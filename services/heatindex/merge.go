package heatindex

import (
	"log/slog"
	"sort"

	"github.com/antzucaro/matchr"
)

// publisher trust ranking for image precedence; a higher-trust
// publisher's photo always replaces a lower-trust one
var imageTrust = map[string]int{
	SourceResy:  2,
	SourceEater: 1,
}

func sortedUnion(a, b []string) []string {
	set := map[string]bool{}
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		set[s] = true
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// mergeEntry folds incoming into existing. Pure; monotonic: populated
// fields are never cleared, later values never override earlier ones
// except an image from a higher-trust publisher.
func mergeEntry(existing, incoming Entry) Entry {
	out := existing
	out.Sources = sortedUnion(existing.Sources, incoming.Sources)
	out.CanonicalURL = firstNonEmpty(existing.CanonicalURL, incoming.CanonicalURL)
	out.ReserveURL = firstNonEmpty(existing.ReserveURL, incoming.ReserveURL)
	out.Blurb = firstNonEmpty(existing.Blurb, incoming.Blurb)
	out.Neighborhood = firstNonEmpty(existing.Neighborhood, incoming.Neighborhood)
	out.Cuisine = firstNonEmpty(existing.Cuisine, incoming.Cuisine)
	out.ActionText = firstNonEmpty(existing.ActionText, incoming.ActionText)

	switch {
	case existing.ImageURL == "":
		out.ImageURL = incoming.ImageURL
		out.ImageSource = incoming.ImageSource
	case incoming.ImageURL != "" &&
		imageTrust[incoming.ImageSource] > imageTrust[existing.ImageSource]:
		out.ImageURL = incoming.ImageURL
		out.ImageSource = incoming.ImageSource
	}

	// the walk-in annotation only makes sense while no booking link
	// exists on the merged record
	if out.ReserveURL != "" {
		out.ActionText = ""
	}
	return out
}

// Merge unifies entries by normalized name, preserving first-encounter
// order. Entries whose names normalize to "" are dropped. Idempotent:
// merging the same entry twice equals merging it once.
func Merge(entries []Entry) []Entry {
	seen := map[string]int{}
	var out []Entry
	for _, e := range entries {
		key := NormalizeName(e.Name)
		if key == "" {
			continue
		}
		if idx, ok := seen[key]; ok {
			out[idx] = mergeEntry(out[idx], e)
			continue
		}
		seen[key] = len(out)
		merged := mergeEntry(Entry{Name: e.Name}, e)
		out = append(out, merged)
	}

	warnNearDuplicates(out)
	return out
}

// warnNearDuplicates logs suspiciously similar names across distinct
// keys. Diagnostics only; identity is exact normalized-name equality
// and fuzzy similarity must never merge records.
func warnNearDuplicates(entries []Entry) {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			left := NormalizeName(entries[i].Name)
			right := NormalizeName(entries[j].Name)
			if matchr.JaroWinkler(left, right, false) > 0.95 {
				slog.Warn(
					"near-duplicate restaurant names kept separate",
					"left", entries[i].Name,
					"right", entries[j].Name,
				)
			}
		}
	}
}

package heatindex

import (
	"net/url"
	"strings"

	"heatindex-backend/lib/htmlutil"
	"heatindex-backend/lib/textutil"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ui chrome that editorial CMSes inject into entry paragraphs
var blurbUIPhrases = []string{
	"view in map",
	"open in google maps",
	"read more",
	"view this post on instagram",
}

const blurbMinLength = 40

func stripFold(s, phrase string) string {
	for {
		idx := strings.Index(strings.ToLower(s), phrase)
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len(phrase):]
	}
}

// pickBlurb scans the slice for the first paragraph that still reads
// like a description once UI phrases are trimmed away. Short or
// UI-only paragraphs are skipped, never truncated into a blurb.
func pickBlurb(slice []*html.Node) string {
	for _, node := range slice {
		if node.DataAtom != atom.P {
			continue
		}
		txt := htmlutil.Text(node)
		if strings.EqualFold(strings.TrimSpace(txt), "map") {
			continue
		}
		for _, phrase := range blurbUIPhrases {
			txt = stripFold(txt, phrase)
		}
		txt = textutil.CollapseWhitespace(txt)
		if len(txt) >= blurbMinLength {
			return txt
		}
	}
	return ""
}

// booking platforms recognized in outbound links, checked in order
var reservationHosts = []string{
	"resy.com",
	"opentable.com",
	"exploretock.com",
}

func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func reservationHost(u *url.URL) (string, bool) {
	for _, domain := range reservationHosts {
		if hostMatches(u.Hostname(), domain) {
			return domain, true
		}
	}
	return "", false
}

// path fragments that mark a booking-platform URL as marketing or
// account plumbing rather than a venue page
var bookingRejectPaths = []string{
	"/about",
	"/pricing",
	"/careers",
	"/legal",
	"/privacy",
	"/terms",
	"/blog",
	"/dashboard",
	"/login",
	"/signup",
	"/business",
	"/gift",
	"/events",
	"/press",
}

// venueLinkGate validates that a booking-platform URL plausibly points
// at an actual venue or booking page. Links failing the gate are
// discarded entirely.
func venueLinkGate(u *url.URL) bool {
	domain, ok := reservationHost(u)
	if !ok {
		return false
	}
	path := strings.ToLower(u.EscapedPath())
	for _, bad := range bookingRejectPaths {
		if strings.HasPrefix(path, bad) {
			return false
		}
	}
	switch domain {
	case "resy.com":
		return strings.Contains(path, "/cities/") || strings.Contains(path, "/venues/")
	case "opentable.com":
		return strings.Contains(path, "/r/") || strings.Contains(path, "/restaurant/")
	default:
		// tock-style platforms put the venue slug at the path root
		return path != "" && path != "/"
	}
}

func isUsefulOutbound(u *url.URL, baseDomain string) bool {
	if !strings.HasPrefix(u.Scheme, "http") {
		return false
	}
	return !hostMatches(u.Hostname(), baseDomain)
}

// pickLinks collects the absolute links inside the slice and splits
// them into a reservation link (first gated booking-platform URL) and a
// canonical details link (first useful outbound, else first link seen,
// booking platforms excluded from both fallbacks).
func pickLinks(slice []*html.Node, base *url.URL, baseDomain string) (canonical, reserve string) {
	var parsed []*url.URL
	for _, node := range slice {
		if node.DataAtom != atom.A {
			continue
		}
		abs := htmlutil.AbsURL(base, htmlutil.Attr(node, "href"))
		if abs == "" || !strings.HasPrefix(abs, "http") {
			continue
		}
		u, err := url.Parse(abs)
		if err != nil {
			continue
		}
		parsed = append(parsed, u)
	}

	for _, u := range parsed {
		if _, ok := reservationHost(u); !ok {
			continue
		}
		if venueLinkGate(u) {
			reserve = u.String()
			break
		}
	}

	for _, u := range parsed {
		if _, ok := reservationHost(u); ok {
			continue
		}
		if isUsefulOutbound(u, baseDomain) {
			canonical = u.String()
			break
		}
	}
	if canonical == "" {
		for _, u := range parsed {
			if _, ok := reservationHost(u); ok {
				continue
			}
			canonical = u.String()
			break
		}
	}
	return canonical, reserve
}

// ImagePolicy tunes the image picker per publisher.
type ImagePolicy struct {
	// url prefixes that earn a large trust bonus
	GoodPrefixes []string
	// when non-empty, only urls with one of these prefixes are
	// considered at all
	AllowedPrefixes []string
	// candidates scoring below this are rejected
	MinScore int
	// bounds the scan; the final entry's slice extends to the end of
	// the scope
	MaxNodes int
}

var imageBadFragments = []string{
	"logo",
	"icon",
	"avatar",
	"spinner",
	"placeholder",
	"sprite",
	"default-social",
	"og-image",
}

// tags that signal the entry's content module has ended
var imageBoundaryTags = map[atom.Atom]bool{
	atom.Nav:    true,
	atom.Footer: true,
	atom.Aside:  true,
}

var imageBoundaryPhrases = []string{
	"see more",
	"more maps",
	"related",
}

func scoreImageURL(u, alt, normName string, policy ImagePolicy) int {
	low := strings.ToLower(u)
	score := 0
	if normName != "" && strings.Contains(NormalizeName(alt), normName) {
		score += 50
	}
	for _, prefix := range policy.GoodPrefixes {
		if strings.HasPrefix(low, strings.ToLower(prefix)) {
			score += 40
			break
		}
	}
	if textutil.ContainsAny(low, imageBadFragments) {
		score -= 40
	}
	if strings.HasSuffix(low, ".svg") {
		score -= 30
	}
	return score
}

func imageAllowed(u string, policy ImagePolicy) bool {
	if len(policy.AllowedPrefixes) == 0 {
		return true
	}
	low := strings.ToLower(u)
	for _, prefix := range policy.AllowedPrefixes {
		if strings.HasPrefix(low, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

// pickImage chooses the best thumbnail inside the entry slice. Scoring
// rewards alt text that matches the restaurant name and publisher CDN
// hosts, and punishes chrome assets and vector art. Ties keep the
// first-encountered candidate.
func pickImage(slice []*html.Node, base *url.URL, name string, policy ImagePolicy) string {
	maxNodes := policy.MaxNodes
	if maxNodes == 0 {
		maxNodes = 80
	}
	normName := NormalizeName(name)

	best := ""
	bestScore := 0
	found := false

	consider := func(raw, alt string) {
		// lazy-load placeholders
		if strings.HasPrefix(raw, "data:") {
			return
		}
		abs := htmlutil.AbsURL(base, raw)
		if abs == "" || !imageAllowed(abs, policy) {
			return
		}
		score := scoreImageURL(abs, alt, normName, policy)
		if score < policy.MinScore {
			return
		}
		if !found || score > bestScore {
			best = abs
			bestScore = score
			found = true
		}
	}

scan:
	for i, node := range slice {
		if i >= maxNodes {
			break
		}
		if imageBoundaryTags[node.DataAtom] {
			break
		}
		switch node.DataAtom {
		case atom.H2, atom.H3, atom.H4:
			if textutil.EqualsAny(htmlutil.Text(node), imageBoundaryPhrases) {
				break scan
			}
		case atom.Source:
			consider(htmlutil.SourceSrc(node), "")
		case atom.Img:
			consider(htmlutil.ImgSrc(node), htmlutil.Attr(node, "alt"))
		}
	}
	return best
}

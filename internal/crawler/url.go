package crawler

import (
	"net/url"
	"strings"
)

// NormalizeURL resolves a possibly-relative href against base and returns the
// canonical absolute form with query string and fragment stripped. It returns
// "" for empty hrefs, unparseable hrefs, and non-HTTP(S) schemes. The result
// is a fixed point: normalizing it again yields the same string.
func NormalizeURL(href string, base *url.URL) string {
	if strings.TrimSpace(href) == "" || base == nil {
		return ""
	}
	resolved, err := base.Parse(href)
	if err != nil {
		return ""
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.RawQuery = ""
	resolved.Fragment = ""
	return resolved.String()
}

// ClassifyURL places a normalized URL in the directory hierarchy. URLs on a
// different host, or whose first path segment does not match the directory
// root marker (case-insensitive), are URLClassNone. Otherwise exactly one
// further segment means a region (state) page and two or more mean a locality
// (city) page.
func ClassifyURL(u *url.URL, baseHost, root string) URLClass {
	if u == nil || !strings.EqualFold(u.Host, baseHost) {
		return URLClassNone
	}
	segments := pathSegments(u.Path)
	if len(segments) == 0 || !strings.EqualFold(segments[0], root) {
		return URLClassNone
	}
	switch {
	case len(segments) == 2:
		return URLClassRegion
	case len(segments) >= 3:
		return URLClassLocality
	default:
		return URLClassNone
	}
}

// LocationFromPath derives default state/city labels from a directory URL by
// title-casing its 2nd and 3rd path segments. It returns the zero Location
// when the first segment is not the directory root marker.
func LocationFromPath(u *url.URL, root string) Location {
	if u == nil {
		return Location{}
	}
	segments := pathSegments(u.Path)
	if len(segments) == 0 || !strings.EqualFold(segments[0], root) {
		return Location{}
	}
	var loc Location
	if len(segments) >= 2 {
		loc.State = slugToName(segments[1])
	}
	if len(segments) >= 3 {
		loc.City = slugToName(segments[2])
	}
	return loc
}

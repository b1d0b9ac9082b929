// Package links resolves content-supplied paths against the deployment base
// and turns contact strings into usable hrefs.
package links

import (
	"regexp"
	"strings"
)

// DefaultStaticLabels are the contact labels rendered as plain label/value
// pairs instead of buttons.
var DefaultStaticLabels = []string{"phone", "email"}

var (
	schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
	phoneRe  = regexp.MustCompile(`^[+0-9][0-9\s-]*$`)
	hostRe   = regexp.MustCompile(`^[\w-]+(\.[\w-]+)+(/\S*)?$`)
	spaceRe  = regexp.MustCompile(`[\s-]+`)
)

// Base describes where the site is deployed.
type Base struct {
	// Origin is scheme://host without a trailing slash. Empty keeps links
	// origin-relative.
	Origin string
	// Path is the subdirectory prefix, e.g. "/portfolio/".
	Path string
	// StaticLabels overrides DefaultStaticLabels when non-nil.
	StaticLabels []string
}

// NewBase returns a Base with the path normalized to "/.../".
func NewBase(origin, path string) Base {
	return Base{
		Origin: strings.TrimRight(strings.TrimSpace(origin), "/"),
		Path:   NormalizePath(path),
	}
}

// NormalizePath makes p start and end with a single slash. Empty becomes "/".
func NormalizePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}

// WithBase resolves p against the base. Absolute URLs, mailto:, tel: and
// in-page anchors pass through unchanged.
func (b Base) WithBase(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if isAbsolute(p) || strings.HasPrefix(p, "#") {
		return p
	}
	return b.Origin + NormalizePath(b.Path) + strings.TrimLeft(p, "/")
}

func isAbsolute(p string) bool {
	lower := strings.ToLower(p)
	for _, prefix := range []string{"http://", "https://", "mailto:", "tel:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// NormalizeContactHref infers the protocol of a contact value.
//
// Values with a scheme pass through. Strings containing "@" become mailto:,
// phone-looking strings become tel: with whitespace and hyphens removed.
// A bare host such as "github.com/me" is taken as an external URL missing its
// scheme. Anything else returns "" and should be shown as plain text.
func NormalizeContactHref(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return ""
	case schemeRe.MatchString(v):
		return v
	case strings.Contains(v, "@"):
		return "mailto:" + v
	case phoneRe.MatchString(v):
		return "tel:" + spaceRe.ReplaceAllString(v, "")
	case hostRe.MatchString(v):
		return "https://" + v
	default:
		return ""
	}
}

// IsStaticContact reports whether a contact with this label is rendered as a
// non-clickable label/value pair.
func (b Base) IsStaticContact(label string) bool {
	labels := b.StaticLabels
	if labels == nil {
		labels = DefaultStaticLabels
	}
	label = strings.TrimSpace(label)
	for _, l := range labels {
		if label == l {
			return true
		}
	}
	return false
}

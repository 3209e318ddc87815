package domain

import (
	"net/url"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

const (
	githubHost   = "github.com"
	sshPrefix    = "git@github.com:"
	gitSuffix    = ".git"
	refSeparator = "/"
)

var (
	validOwnerRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
	validNameRegex  = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// RepositoryRef is the canonical identity of a scan target.
type RepositoryRef struct {
	Owner string
	Name  string
}

// String returns the owner/name form used as the listing cache key and in reports.
func (r RepositoryRef) String() string {
	return r.Owner + refSeparator + r.Name
}

// ParseRepositoryRef normalizes a raw input line into a RepositoryRef.
// It accepts the bare owner/name form as well as https, scheme-less and
// SSH GitHub URLs. Anything else fails with ErrMalformedIdentifier.
func ParseRepositoryRef(raw string) (RepositoryRef, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RepositoryRef{}, zerr.With(ErrMalformedIdentifier, "input", raw)
	}

	parts, isURL, ok := splitIdentifier(trimmed)
	if !ok {
		return RepositoryRef{}, zerr.With(ErrMalformedIdentifier, "input", raw)
	}

	// A bare identifier has exactly two segments; URLs may carry
	// trailing paths such as /tree/main or /issues.
	if len(parts) < 2 || (!isURL && len(parts) != 2) {
		return RepositoryRef{}, zerr.With(ErrMalformedIdentifier, "input", raw)
	}

	ref := RepositoryRef{
		Owner: parts[0],
		Name:  strings.TrimSuffix(parts[1], gitSuffix),
	}

	if !validOwnerRegex.MatchString(ref.Owner) || !validNameRegex.MatchString(ref.Name) ||
		ref.Name == "." || ref.Name == ".." {
		return RepositoryRef{}, zerr.With(ErrMalformedIdentifier, "input", raw)
	}

	return ref, nil
}

// splitIdentifier returns the non-empty path segments of an identifier and
// whether it was written as a URL.
func splitIdentifier(s string) ([]string, bool, bool) {
	if rest, found := strings.CutPrefix(s, sshPrefix); found {
		return segments(rest), true, true
	}

	lower := strings.ToLower(s)
	hasScheme := strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
	if !hasScheme && !strings.HasPrefix(lower, githubHost+"/") && !strings.HasPrefix(lower, "www."+githubHost+"/") {
		if strings.Contains(s, ":") {
			return nil, false, false
		}
		return segments(s), false, true
	}

	if !hasScheme {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, false, false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host != githubHost {
		return nil, false, false
	}

	return segments(u.Path), true, true
}

func segments(path string) []string {
	var out []string
	for _, p := range strings.Split(path, refSeparator) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ContributorRef identifies an account on the hosting service.
type ContributorRef string

// String returns the contributor login.
func (c ContributorRef) String() string {
	return string(c)
}

// Location is a contributor's self-reported location.
// A zero Location is the absent marker: the profile declares no location.
type Location struct {
	Name     string
	Declared bool
}

// NoLocation is the absent marker.
var NoLocation = Location{}

// DeclaredLocation returns a Location for a non-empty profile value.
// Whitespace-only values are treated as absent.
func DeclaredLocation(name string) Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return NoLocation
	}
	return Location{Name: name, Declared: true}
}

// String returns the location text, or an empty string when absent.
func (l Location) String() string {
	if !l.Declared {
		return ""
	}
	return l.Name
}

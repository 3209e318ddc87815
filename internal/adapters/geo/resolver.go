// Package geo resolves free-form profile locations to country names using an
// embedded gazetteer.
package geo

import (
	_ "embed"
	"slices"
	"strings"
	"unicode"

	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed data/gazetteer.yaml
var gazetteerYAML []byte

// maxWindow is the longest run of words tried when no segment matches as a whole.
const maxWindow = 3

// Resolver implements ports.CountryResolver.
// It is immutable after construction and safe for concurrent use.
//
// Every index maps a key to the countries it may denote, most likely first.
type Resolver struct {
	codes   map[string][]string
	iso     map[string][]string
	names   map[string][]string
	regions map[string][]string
	cities  map[string][]string
}

// NewResolver creates a Resolver from the embedded gazetteer.
func NewResolver() (*Resolver, error) {
	return newResolverFromYAML(gazetteerYAML)
}

func newResolverFromYAML(data []byte) (*Resolver, error) {
	var g gazetteer
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGazetteerLoadFailed.Error())
	}

	r := &Resolver{
		codes:   make(map[string][]string),
		iso:     make(map[string][]string),
		names:   make(map[string][]string),
		regions: make(map[string][]string),
		cities:  make(map[string][]string),
	}

	for _, c := range g.Countries {
		if c.Name == "" {
			return nil, zerr.With(domain.ErrGazetteerLoadFailed, "reason", "country without name")
		}
		addKey(r.names, normalize(c.Name), c.Name)
		for _, alias := range c.Aliases {
			addKey(r.names, normalize(alias), c.Name)
		}
		for _, code := range c.Codes {
			addKey(r.codes, code, c.Name)
		}
		addKey(r.iso, c.ISO, c.Name)
	}

	for _, reg := range g.Regions {
		if reg.Name != "" {
			addKey(r.regions, normalize(reg.Name), reg.Country)
		}
		if reg.Code != "" {
			addKey(r.codes, reg.Code, reg.Country)
		}
	}

	// Sorted so that colliding spellings resolve the same way on every run.
	cityNames := make([]string, 0, len(g.Cities))
	for name := range g.Cities {
		cityNames = append(cityNames, name)
	}
	slices.Sort(cityNames)
	for _, name := range cityNames {
		addKey(r.cities, normalize(name), g.Cities[name])
	}

	return r, nil
}

// ResolveCountry maps loc to a country name, or domain.UnknownCountry.
//
// The whole text is tried first, then its separated segments, then runs of
// up to three words from the right of each segment. The last segment that
// matches decides; when it may denote several countries, the one another
// segment agrees with wins, so "Berlin, DE" is Germany and "Atlanta, Georgia"
// is the United States.
func (r *Resolver) ResolveCountry(loc domain.Location) string {
	if !loc.Declared {
		return domain.UnknownCountry
	}

	text := strings.TrimSpace(loc.Name)
	if text == "" {
		return domain.UnknownCountry
	}

	if found := r.match(text, true); len(found) > 0 {
		return found[0]
	}

	segs := splitSegments(text)
	hits := make([][]string, len(segs))
	for i, seg := range segs {
		hits[i] = r.match(seg, true)
	}
	if country, ok := prefer(hits); ok {
		return country
	}

	for i, seg := range segs {
		hits[i] = r.matchWords(strings.Fields(seg))
	}
	if country, ok := prefer(hits); ok {
		return country
	}

	return domain.UnknownCountry
}

// prefer picks from the last non-empty hit list the first country that some
// other list also contains, falling back to its most likely country.
func prefer(hits [][]string) (string, bool) {
	for i := len(hits) - 1; i >= 0; i-- {
		if len(hits[i]) == 0 {
			continue
		}
		for _, country := range hits[i] {
			for j, other := range hits {
				if j != i && slices.Contains(other, country) {
					return country, true
				}
			}
		}
		return hits[i][0], true
	}
	return "", false
}

func (r *Resolver) matchWords(words []string) []string {
	for size := min(maxWindow, len(words)); size >= 1; size-- {
		for start := len(words) - size; start >= 0; start-- {
			if found := r.match(strings.Join(words[start:start+size], " "), false); len(found) > 0 {
				return found
			}
		}
	}
	return nil
}

// match returns the countries candidate may denote. ISO codes are only
// considered when candidate is a whole segment.
func (r *Resolver) match(candidate string, whole bool) []string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil
	}

	var found []string
	collect := func(countries []string) {
		for _, c := range countries {
			if !slices.Contains(found, c) {
				found = append(found, c)
			}
		}
	}

	code := strings.TrimSuffix(candidate, ".")
	collect(r.codes[code])
	if whole {
		collect(r.iso[code])
	}

	key := normalize(candidate)
	for _, index := range []map[string][]string{r.names, r.regions, r.cities} {
		collect(index[key])
	}
	return found
}

func addKey(index map[string][]string, key, country string) {
	if key == "" || slices.Contains(index[key], country) {
		return
	}
	index[key] = append(index[key], country)
}

func splitSegments(s string) []string {
	s = strings.ReplaceAll(s, " - ", ",")
	parts := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', ';', '|', '/', '(', ')', '·', '•', '\n':
			return true
		}
		return false
	})

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize folds case and accents, drops dots and collapses whitespace.
func normalize(s string) string {
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

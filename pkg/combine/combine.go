// Package combine synthesizes the union type of the alternatives reachable at one grammar position.
package combine

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/staged/pkg/algebra"
	"github.com/aretw0/staged/pkg/domain"
)

const keySeparator = "#"

// Recorder observes combiner activity.
type Recorder interface {
	CacheHit()
	Combined(members int)
	Excluded(n int)
}

type nopRecorder struct{}

func (nopRecorder) CacheHit()    {}
func (nopRecorder) Combined(int) {}
func (nopRecorder) Excluded(int) {}

// Combiner produces canonical combined types backed by a run-scoped Cache.
type Combiner struct {
	cache    *Cache
	logger   *slog.Logger
	recorder Recorder
}

// Option configures a Combiner.
type Option func(*Combiner)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Combiner) {
		c.logger = logger
	}
}

// WithRecorder registers an activity observer.
func WithRecorder(r Recorder) Option {
	return func(c *Combiner) {
		c.recorder = r
	}
}

// New returns a Combiner that memoizes into cache.
// A nil cache gets a fresh one.
func New(cache *Cache, opts ...Option) *Combiner {
	c := &Combiner{cache: cache}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewCache()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.recorder == nil {
		c.recorder = nopRecorder{}
	}
	return c
}

// Cache returns the cache the combiner memoizes into.
func (c *Combiner) Cache() *Cache {
	return c.cache
}

// Combine returns the single type standing for any one of alternatives.
//
// Alternatives whose whole interface contract is already provided by the other members
// are excluded. When one member survives it is returned as is; when none survives the
// most redundant member is returned; otherwise a new interface extending the survivors
// is synthesized. Equal alternative sets always yield the same pointer.
func (c *Combiner) Combine(alternatives []*domain.TypeRef) (*domain.TypeRef, error) {
	if len(alternatives) == 0 {
		return nil, domain.ErrEmptyAlternatives
	}
	alternatives = algebra.NewSet(alternatives...).Items()

	key := Key(alternatives)
	if cached, ok := c.cache.get(key); ok {
		c.recorder.CacheHit()
		return cached, nil
	}

	var (
		kept     []*domain.TypeRef
		fallback *domain.TypeRef
		excluded int
	)
	for _, alt := range alternatives {
		if !CanBeExcluded(alt, alternatives) {
			kept = append(kept, alt)
			continue
		}
		excluded++
		if fallback == nil || CanBeExcluded(fallback, []*domain.TypeRef{alt}) {
			fallback = alt
		}
	}
	if excluded > 0 {
		c.recorder.Excluded(excluded)
	}

	switch len(kept) {
	case 0:
		c.logger.Debug("all alternatives redundant, using fallback", "key", key, "fallback", fallback.Key())
		return c.cache.put(key, fallback, false), nil
	case 1:
		return c.cache.put(key, kept[0], false), nil
	}

	terminating := &algebra.Set{}
	generics := &algebra.Set{}
	for _, k := range kept {
		terminating.Add(algebra.TerminatingTypes(k)...)
		for _, g := range k.Generics {
			generics.Add(algebra.GenericReferences(g)...)
		}
	}

	combined := &domain.TypeRef{
		Package:          kept[0].Package,
		Name:             ClassName(kept),
		Kind:             domain.KindInterface,
		Interfaces:       kept,
		Generics:         generics.Items(),
		Terminal:         false,
		Composite:        false,
		TerminatingTypes: terminating.Items(),
		Transparent:      true,
	}
	combined = c.cache.put(key, combined, true)
	c.recorder.Combined(len(kept))
	c.logger.Debug("synthesized combination", "union", Describe(combined))
	return combined, nil
}

// CanBeExcluded reports whether every leaf interface of candidate is provided by the
// members of provided other than candidate itself.
func CanBeExcluded(candidate *domain.TypeRef, provided []*domain.TypeRef) bool {
	var others []*domain.TypeRef
	for _, p := range provided {
		if p.Key() != candidate.Key() {
			others = append(others, p)
		}
	}
	available := algebra.NewSet(algebra.ExtractAllInterfaces(others)...)
	return available.ContainsAll(algebra.ExtractInterfaces(candidate))
}

// Key returns the cache key of a set of alternatives: their keys sorted by fully
// qualified name and joined with a fixed separator.
func Key(alternatives []*domain.TypeRef) string {
	sorted := make([]*domain.TypeRef, len(alternatives))
	copy(sorted, alternatives)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := sorted[i].FullyQualifiedName(), sorted[j].FullyQualifiedName()
		if li != lj {
			return li < lj
		}
		return sorted[i].Key() < sorted[j].Key()
	})
	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = t.Key()
	}
	return strings.Join(parts, keySeparator)
}

// ClassName derives the name of the union of types: the common camel-case prefix of the
// suffix-stripped names once, followed by the remainders joined with "Or".
func ClassName(types []*domain.TypeRef) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = domain.StripSuffix(t.Name)
	}
	prefix := commonPrefix(names)
	rest := make([]string, len(names))
	for i, n := range names {
		rest[i] = n[len(prefix):]
	}
	return domain.ToInterfaceName(prefix + strings.Join(rest, "Or"))
}

// commonPrefix returns the longest run of leading camel-case words shared by all names,
// leaving at least one word in each name.
func commonPrefix(names []string) string {
	if len(names) < 2 {
		return ""
	}
	words := make([][]string, len(names))
	limit := -1
	for i, n := range names {
		words[i] = splitWords(n)
		if limit < 0 || len(words[i])-1 < limit {
			limit = len(words[i]) - 1
		}
	}
	var sb strings.Builder
	for w := 0; w < limit; w++ {
		word := words[0][w]
		for _, ws := range words[1:] {
			if ws[w] != word {
				return sb.String()
			}
		}
		sb.WriteString(word)
	}
	return sb.String()
}

// splitWords splits a camel-case identifier: "HTTPServerConfig" -> HTTP, Server, Config.
func splitWords(s string) []string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		prev, cur := s[i-1], s[i]
		next := byte(0)
		if i+1 < len(s) {
			next = s[i+1]
		}
		boundary := isUpper(cur) && (isLower(prev) || isDigit(prev) || (isUpper(prev) && isLower(next)))
		if boundary {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Describe renders a combination for log output.
func Describe(t *domain.TypeRef) string {
	if !t.Transparent {
		return t.SimpleName()
	}
	members := make([]string, len(t.Interfaces))
	for i, m := range t.Interfaces {
		members[i] = m.SimpleName()
	}
	return fmt.Sprintf("%s{%s}", t.Name, strings.Join(members, " | "))
}

package normalizer

import (
	"maps"
	"regexp"

	"dadeserasmus/internal/models"
)

// builtinOrigins maps known misspellings found in the source sheet to canonical city names.
var builtinOrigins = map[string]string{
	"Bilbo":          "Bilbao",
	"Grana":          "Granada",
	"San Sebastiána": "San Sebastián",
}

// canonicalEngineering replaces the engineering variants matched by programPattern.
const canonicalEngineering = "Ingeniería"

var programPattern = regexp.MustCompile(`(?i)\b(?:Enginyeria|Ingenieria|Ingenería|Ingeneria|Ing\.)`)

// Options configures a Normalizer.
type Options struct {
	// OriginAliases adds alias -> canonical entries. Built-in entries always win.
	OriginAliases map[string]string
	// NormalizePrograms enables rewriting engineering program variants.
	NormalizePrograms bool
}

// Normalizer corrects known variant spellings. It is read-only after construction.
type Normalizer struct {
	origins  map[string]string
	programs bool
}

// NewNormalizer creates a normalizer from the built-in origin map plus opts.
func NewNormalizer(opts Options) *Normalizer {
	origins := make(map[string]string, len(builtinOrigins)+len(opts.OriginAliases))
	maps.Copy(origins, opts.OriginAliases)
	maps.Copy(origins, builtinOrigins)

	return &Normalizer{
		origins:  origins,
		programs: opts.NormalizePrograms,
	}
}

// BuiltinOrigins returns a copy of the built-in origin corrections.
func BuiltinOrigins() map[string]string {
	return maps.Clone(builtinOrigins)
}

// NormalizeOrigin returns the canonical origin for an exact alias match.
// Any other cell, absent ones included, is returned unchanged.
func (n *Normalizer) NormalizeOrigin(origin models.Cell) models.Cell {
	if !origin.IsText() {
		return origin
	}

	if canonical, ok := n.origins[origin.Value]; ok {
		return models.Text(canonical)
	}

	return origin
}

// NormalizeProgram rewrites engineering variants when program normalization is enabled.
func (n *Normalizer) NormalizeProgram(program string) string {
	if !n.programs {
		return program
	}

	return programPattern.ReplaceAllString(program, canonicalEngineering)
}

// Len returns the number of origin entries.
func (n *Normalizer) Len() int {
	return len(n.origins)
}

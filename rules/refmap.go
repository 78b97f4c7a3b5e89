package rules

// RefMap is a keyed lookup of JSON values used by the Reference rule.
// Implementations format stored values through a clone pass at lookup
// time, so resolved references are already rendered for the given
// context.
type RefMap interface {
	Has(key string) bool
	Keys() []string

	// Resolve returns the formatted value stored at key. The outcome is
	// Edited when found, Inapplicable when the key is unknown, and
	// Failed when the value could not be formatted.
	Resolve(key string, ctx *Context) Outcome

	// ResolveObject is Resolve restricted to object values; a non-object
	// stored value is a Failed outcome.
	ResolveObject(key string, ctx *Context) Outcome
}

package refmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsonedit/go-jsonedit/rules"
)

var ErrInvalidKey = errors.New("invalid reference map key")

// KeyPolicy validates and normalizes every key inserted into a Map.
type KeyPolicy interface {
	IsValid(key string) bool
	// Validate returns the key to store, or an error when the key
	// cannot be made valid.
	Validate(key string) (string, error)
}

// DefaultPolicy rejects empty keys, keys containing a template marker,
// and keys starting with the conditional prefix.
type DefaultPolicy struct{}

func (DefaultPolicy) IsValid(key string) bool {
	if key == "" {
		return false
	}
	if strings.Contains(key, rules.TemplateMarker) {
		return false
	}
	return !strings.HasPrefix(key, rules.ConditionalPrefix)
}

func (p DefaultPolicy) Validate(key string) (string, error) {
	if p.IsValid(key) {
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
}

// PrefixPolicy requires keys to carry a fixed prefix. With MakeValid
// set, the prefix is added to keys that lack it. A key equal to the
// bare prefix is invalid.
type PrefixPolicy struct {
	Prefix    string
	MakeValid bool
}

func (p PrefixPolicy) IsValid(key string) bool {
	if !(DefaultPolicy{}).IsValid(key) {
		return false
	}
	return strings.HasPrefix(key, p.Prefix) && len(key) > len(p.Prefix)
}

func (p PrefixPolicy) Validate(key string) (string, error) {
	if p.IsValid(key) {
		return key, nil
	}
	// prefixing must not legitimize a key the base policy rejects
	if p.MakeValid && (DefaultPolicy{}).IsValid(key) && !strings.HasPrefix(key, p.Prefix) {
		candidate := p.Prefix + key
		if p.IsValid(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
}

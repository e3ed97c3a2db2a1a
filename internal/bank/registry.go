package bank

import (
	"fmt"
	"strings"

	"coursekit/internal/domain"
)

// Registry holds bank rules in declaration order.
type Registry struct {
	rules []Rule
	index map[string]int
}

// NewRegistry builds a registry; names are unique ignoring case.
func NewRegistry(rules []Rule) (*Registry, error) {
	registry := &Registry{index: make(map[string]int, len(rules))}
	for _, rule := range rules {
		key := strings.ToLower(rule.Name)
		if _, exists := registry.index[key]; exists {
			return nil, fmt.Errorf("duplicate bank type %q", rule.Name)
		}
		registry.index[key] = len(registry.rules)
		registry.rules = append(registry.rules, rule)
	}
	return registry, nil
}

// Lookup finds a rule by name, ignoring case.
func (r *Registry) Lookup(name string) (Rule, error) {
	i, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Rule{}, domain.NewUnknownBankTypeError(name, r.Names())
	}
	return r.rules[i], nil
}

// Names returns rule names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Rules returns a copy of every rule in declaration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

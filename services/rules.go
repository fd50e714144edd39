package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rule maps any of its lower-case substring triggers to a label.
type rule[T any] struct {
	triggers []string
	label    T
}

// firstMatch evaluates rules in order against already lower-cased text.
func firstMatch[T any](text string, rules []rule[T]) (T, bool) {
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(text, trigger) {
				return r.label, true
			}
		}
	}
	var zero T
	return zero, false
}

// titleCase capitalises the first letter of each word and lower-cases the rest.
// Casers are stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

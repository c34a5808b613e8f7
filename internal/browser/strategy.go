package browser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrElementNotFound = errors.New("element not found in time")
	ErrNoMatch         = errors.New("no strategy matched")
)

// Strategy is one way of locating an element. Selector is handed to
// playwright as is: a leading "//" makes it XPath, anything else is CSS.
type Strategy struct {
	Name     string
	Selector string
}

// FirstMatch tries strategies in order and returns the first one for which
// try succeeds. When all of them fail the error wraps ErrNoMatch together
// with every individual miss.
func FirstMatch(strategies []Strategy, try func(Strategy) error) (Strategy, error) {
	var misses []error
	for _, s := range strategies {
		err := try(s)
		if err == nil {
			return s, nil
		}
		misses = append(misses, fmt.Errorf("%s %q: %w", s.Name, s.Selector, err))
	}
	if len(misses) == 0 {
		return Strategy{}, ErrNoMatch
	}
	return Strategy{}, fmt.Errorf("%w: %w", ErrNoMatch, errors.Join(misses...))
}

// FieldStrategies lists the lookups for a form identifier: exact id, then
// name attribute, then the identifier used as a selector.
func FieldStrategies(identifier string) []Strategy {
	quoted := quoteAttr(identifier)
	return []Strategy{
		{Name: "id", Selector: `[id=` + quoted + `]`},
		{Name: "name", Selector: `[name=` + quoted + `]`},
		{Name: "selector", Selector: identifier},
	}
}

// SelectorStrategies wraps an ordered selector list.
func SelectorStrategies(selectors []string) []Strategy {
	out := make([]Strategy, 0, len(selectors))
	for _, sel := range selectors {
		name := "css"
		if strings.HasPrefix(sel, "//") {
			name = "xpath"
		}
		out = append(out, Strategy{Name: name, Selector: sel})
	}
	return out
}

func quoteAttr(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(v) + `"`
}

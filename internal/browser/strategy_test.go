package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMatch_ShortCircuits(t *testing.T) {
	strategies := SelectorStrategies([]string{"#a", "//button[contains(text(), 'Apply')]", "#c"})
	var tried []string

	got, err := FirstMatch(strategies, func(s Strategy) error {
		tried = append(tried, s.Selector)
		if s.Name == "xpath" {
			return nil
		}
		return ErrElementNotFound
	})

	require.NoError(t, err)
	assert.Equal(t, "//button[contains(text(), 'Apply')]", got.Selector)
	assert.Equal(t, []string{"#a", "//button[contains(text(), 'Apply')]"}, tried, "#c must not be tried")
}

func TestFirstMatch_AllFail(t *testing.T) {
	_, err := FirstMatch(SelectorStrategies([]string{"#a", "#b"}), func(Strategy) error {
		return ErrElementNotFound
	})

	assert.ErrorIs(t, err, ErrNoMatch)
	assert.ErrorIs(t, err, ErrElementNotFound)
	assert.Contains(t, err.Error(), `"#b"`)
}

func TestFirstMatch_Empty(t *testing.T) {
	_, err := FirstMatch(nil, func(Strategy) error { return errors.New("unreachable") })
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFieldStrategies(t *testing.T) {
	got := FieldStrategies(`cover"letter`)

	require.Len(t, got, 3)
	assert.Equal(t, Strategy{Name: "id", Selector: `[id="cover\"letter"]`}, got[0])
	assert.Equal(t, Strategy{Name: "name", Selector: `[name="cover\"letter"]`}, got[1])
	assert.Equal(t, Strategy{Name: "selector", Selector: `cover"letter`}, got[2])
}

package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"raceoverlay/internal/telemetry"
)

func TestRenderContactsTruncatesNamesOnRunes(t *testing.T) {
	cars := []telemetry.Contact{
		{RelX: 3, RelY: 4, Distance: 5, Name: "Čtyřkolka Šárka Žofie"},
		{RelX: 0, RelY: 20, Distance: 20, Name: "ŠŠŠŠŠŠŠŠŠŠŠŠŠ"},
	}
	out := RenderContacts(cars, 30, 10)

	assert.True(t, utf8.ValidString(out), "truncation must not split a rune")
	assert.Contains(t, out, "Čtyřkolka Šá")
	assert.Contains(t, out, "ŠŠŠŠŠŠŠŠŠŠŠŠ")
	assert.NotContains(t, out, "Žofie")
}

func TestRenderContactsEmpty(t *testing.T) {
	out := RenderContacts(nil, 30, 10)
	assert.Contains(t, out, "no contacts")
}

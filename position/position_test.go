package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.IsValid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.IsValid())
	assert.False(t, Position{Row: -1, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: -1}.IsValid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.IsValid())
}

func TestColumnLetters(t *testing.T) {
	cases := map[int]string{
		0:  "A",
		1:  "B",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
		52: "BA",
		701: "ZZ",
		702: "AAA",
	}
	for col, want := range cases {
		assert.Equal(t, want, ColumnLetters(col), "col=%d", col)
	}
}

func TestColumnIndexRoundTrip(t *testing.T) {
	for col := 0; col < 2000; col++ {
		letters := ColumnLetters(col)
		got, err := ColumnIndex(letters)
		require.NoError(t, err)
		assert.Equal(t, col, got, "letters=%s", letters)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range []Position{{0, 0}, {16, 27}, {0, 701}, {9999, 5}} {
		s := p.String()
		got, err := ParsePosition(s)
		require.NoError(t, err)
		assert.Equal(t, p, got, "s=%s", s)
	}
}

func TestParsePositionRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "1", "A", "A0", "1A", "A-1", "A1B2"} {
		_, err := ParsePosition(s)
		assert.Error(t, err, "s=%q", s)
	}
}

func TestLess(t *testing.T) {
	assert.True(t, Position{0, 0}.Less(Position{0, 1}))
	assert.True(t, Position{0, 5}.Less(Position{1, 0}))
	assert.False(t, Position{1, 0}.Less(Position{0, 5}))
	assert.False(t, Position{2, 2}.Less(Position{2, 2}))
}

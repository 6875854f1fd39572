package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-policy-service/internal/calendar"
)

func newTestConsole(input string) *console {
	return &console{reader: bufio.NewReader(strings.NewReader(input))}
}

func TestReadInt_RepromptsUntilValid(t *testing.T) {
	c := newTestConsole("abc\n2022\n")

	value, err := c.readInt("Year: ")
	require.NoError(t, err)
	assert.Equal(t, 2022, value)
}

func TestReadInt_StopsWhenInputEnds(t *testing.T) {
	c := newTestConsole("abc\n")

	_, err := c.readInt("Year: ")

	assert.ErrorIs(t, err, errInputClosed,
		"an exhausted input stream must end the re-prompt loop")
}

func TestReadPositiveFloat_StopsWhenInputEnds(t *testing.T) {
	c := newTestConsole("-5\n")

	_, err := c.readPositiveFloat("Value: ")

	assert.ErrorIs(t, err, errInputClosed)
}

func TestReadDate_ParsesValidDate(t *testing.T) {
	c := newTestConsole("15 03 2024\n")

	date, err := c.readDate("Enter Date")
	require.NoError(t, err)
	assert.Equal(t, calendar.Date{Day: 15, Month: 3, Year: 2024}, date)
}

func TestReadDate_StopsWhenInputEnds(t *testing.T) {
	c := newTestConsole("31 13 2024\n")

	_, err := c.readDate("Enter Date")

	assert.ErrorIs(t, err, errInputClosed,
		"invalid dates followed by end of input must not loop forever")
}

package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestWeekOf(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantYear  int
		wantWeek  int
		wantStart string
		wantEnd   string
	}{
		{
			name:      "sunday belongs to the week that started on monday",
			input:     "2024-01-07T23:59:59.999Z",
			wantYear:  2024,
			wantWeek:  1,
			wantStart: "2024-01-01T00:00:00Z",
			wantEnd:   "2024-01-07T23:59:59.999Z",
		},
		{
			name:      "monday midnight opens the next week",
			input:     "2024-01-08T00:00:00Z",
			wantYear:  2024,
			wantWeek:  2,
			wantStart: "2024-01-08T00:00:00Z",
			wantEnd:   "2024-01-14T23:59:59.999Z",
		},
		{
			name:      "iso week-year differs from calendar year",
			input:     "2021-01-02T12:00:00Z",
			wantYear:  2020,
			wantWeek:  53,
			wantStart: "2020-12-28T00:00:00Z",
			wantEnd:   "2021-01-03T23:59:59.999Z",
		},
		{
			name:      "non utc input is normalised",
			input:     "2024-01-08T01:00:00+02:00",
			wantYear:  2024,
			wantWeek:  1,
			wantStart: "2024-01-01T00:00:00Z",
			wantEnd:   "2024-01-07T23:59:59.999Z",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			week := WeekOf(mustParse(t, testCase.input))
			assert.Equal(t, testCase.wantYear, week.Year)
			assert.Equal(t, testCase.wantWeek, week.Week)
			assert.True(t, mustParse(t, testCase.wantStart).Equal(week.Start))
			assert.True(t, mustParse(t, testCase.wantEnd).Equal(week.End))
		})
	}
}

func TestWeeksBetween(t *testing.T) {
	weeks := WeeksBetween(mustParse(t, "2024-01-01T00:00:00Z"), mustParse(t, "2024-01-14T00:00:00Z"))
	assert.Len(t, weeks, 2)
	assert.Equal(t, 1, weeks[0].Week)
	assert.Equal(t, 2, weeks[1].Week)

	weeks = WeeksBetween(mustParse(t, "2024-01-03T10:00:00Z"), mustParse(t, "2024-01-03T11:00:00Z"))
	assert.Len(t, weeks, 1)

	weeks = WeeksBetween(mustParse(t, "2024-12-30T00:00:00Z"), mustParse(t, "2025-01-06T00:00:00Z"))
	assert.Len(t, weeks, 2)
	assert.Equal(t, 2025, weeks[0].Year)
	assert.Equal(t, 1, weeks[0].Week)
	assert.Equal(t, 2, weeks[1].Week)

	assert.Nil(t, WeeksBetween(mustParse(t, "2024-01-02T00:00:00Z"), mustParse(t, "2024-01-01T00:00:00Z")))
}

func TestMonthsBetween(t *testing.T) {
	months := MonthsBetween(mustParse(t, "2023-11-15T00:00:00Z"), mustParse(t, "2024-02-01T00:00:00Z"))

	var names []string
	for _, m := range months {
		names = append(names, m.String())
	}
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, names)

	feb := NewMonth(2024, time.February)
	assert.True(t, mustParse(t, "2024-02-29T23:59:59.999Z").Equal(feb.End))
	assert.True(t, feb.Contains(mustParse(t, "2024-02-29T23:59:59.999Z")))
	assert.False(t, feb.Contains(mustParse(t, "2024-03-01T00:00:00Z")))
	assert.True(t, feb.Contains(mustParse(t, "2024-02-29T23:59:59.9995Z")))
	assert.True(t, mustParse(t, "2024-03-01T00:00:00Z").Equal(feb.Next()))

	dec := NewMonth(2023, time.December+1)
	assert.Equal(t, "2024-01", dec.String())

	assert.Nil(t, MonthsBetween(mustParse(t, "2024-02-01T00:00:00Z"), mustParse(t, "2024-01-01T00:00:00Z")))
}

func TestWeek_Contains(t *testing.T) {
	first := WeekOf(mustParse(t, "2024-01-03T12:00:00Z"))
	second := WeekOf(mustParse(t, "2024-01-08T00:00:00Z"))

	testCases := []struct {
		name     string
		instant  string
		inFirst  bool
		inSecond bool
	}{
		{name: "last millisecond of sunday", instant: "2024-01-07T23:59:59.999Z", inFirst: true},
		{name: "below millisecond resolution before monday", instant: "2024-01-07T23:59:59.9995Z", inFirst: true},
		{name: "monday midnight", instant: "2024-01-08T00:00:00Z", inSecond: true},
		{name: "monday midnight of the first week", instant: "2024-01-01T00:00:00Z", inFirst: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := mustParse(t, tc.instant)
			assert.Equal(t, tc.inFirst, first.Contains(ts))
			assert.Equal(t, tc.inSecond, second.Contains(ts))
		})
	}

	assert.True(t, second.Start.Equal(first.Next()))
}

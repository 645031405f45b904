package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2026-09-09 15:00 in Rome.
var (
	rome    = mustLoad("Europe/Rome")
	wedBase = time.Date(2026, 9, 9, 15, 0, 0, 0, rome)
)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func TestParse_Expressions(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"tomorrow at 7pm", time.Date(2026, 9, 10, 19, 0, 0, 0, rome)},
		{"tomorrow at 7", time.Date(2026, 9, 10, 19, 0, 0, 0, rome)},
		{"tomorrow 9am", time.Date(2026, 9, 10, 9, 0, 0, 0, rome)},
		{"today 16:30", time.Date(2026, 9, 9, 16, 30, 0, 0, rome)},
		{"friday 6:30", time.Date(2026, 9, 11, 18, 30, 0, 0, rome)},
		{"Friday at 18:30", time.Date(2026, 9, 11, 18, 30, 0, 0, rome)},
		{"saturday 12", time.Date(2026, 9, 12, 12, 0, 0, 0, rome)},
		{"next wednesday at 20:00", time.Date(2026, 9, 16, 20, 0, 0, 0, rome)},
		{"2026-09-20 at 13:00", time.Date(2026, 9, 20, 13, 0, 0, 0, rome)},
		{"20/09 19:00", time.Date(2026, 9, 20, 19, 0, 0, 0, rome)},
		{"20/09/2026 at 8pm", time.Date(2026, 9, 20, 20, 0, 0, 0, rome)},
		{"in 2 hours", wedBase.Add(2 * time.Hour)},
		{"in 45 minutes", wedBase.Add(45 * time.Minute)},
		{"in an hour", wedBase.Add(time.Hour)},
		// 19:00 is still ahead of the 15:00 base
		{"19:00", time.Date(2026, 9, 9, 19, 0, 0, 0, rome)},
		// 7 with no meridiem reads as evening
		{"7", time.Date(2026, 9, 9, 19, 0, 0, 0, rome)},
		// 14:00 passed at base time, so it rolls to tomorrow
		{"14:00", time.Date(2026, 9, 10, 14, 0, 0, 0, rome)},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			res, err := Parse(tc.text, wedBase, rome)
			require.NoError(t, err)
			require.False(t, res.DateOnly)
			assert.True(t, tc.want.Equal(res.At), "want %s, got %s", tc.want, res.At)
		})
	}
}

func TestParse_DateOnly(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"tomorrow", time.Date(2026, 9, 10, 0, 0, 0, 0, rome)},
		{"friday", time.Date(2026, 9, 11, 0, 0, 0, 0, rome)},
		{"2026-09-20", time.Date(2026, 9, 20, 0, 0, 0, 0, rome)},
		{"25/12", time.Date(2026, 12, 25, 0, 0, 0, 0, rome)},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			res, err := Parse(tc.text, wedBase, rome)
			require.NoError(t, err)
			assert.True(t, res.DateOnly)
			assert.True(t, tc.want.Equal(res.At), "want %s, got %s", tc.want, res.At)
		})
	}
}

func TestParse_WeekdayRollsForward(t *testing.T) {
	// The base is a Wednesday; asking for wednesday 6:30 means next week
	// because 18:30 today... still ahead. Ask for an earlier time instead.
	res, err := Parse("wednesday 2pm", wedBase, rome)
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 9, 16, 14, 0, 0, 0, rome).Equal(res.At))

	// Still ahead today stays today
	res, err = Parse("wednesday 6:30", wedBase, rome)
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 9, 9, 18, 30, 0, 0, rome).Equal(res.At))
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		text string
		code string
	}{
		{"yesterday's date", "2026-09-08 at 12:00", CodePastDateTime},
		{"earlier today", "today 9am", CodePastDateTime},
		{"date already gone", "2026-01-05", CodePastDateTime},
		{"gibberish", "when the moon is full", CodeInvalidDateFormat},
		{"empty", "   ", CodeInvalidDateFormat},
		{"impossible clock", "today at 25:00", CodeInvalidDateFormat},
		{"impossible date", "31/02", CodeInvalidDateFormat},
		{"bad minutes", "today 12:75", CodeInvalidDateFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text, wedBase, rome)
			require.Error(t, err)
			assert.Equal(t, tc.code, CodeOf(err))
		})
	}
}

func TestParse_TimezoneMatters(t *testing.T) {
	tokyo := mustLoad("Asia/Tokyo")
	// 22:00 in Tokyo while Rome is at 15:00
	res, err := Parse("today 23:00", wedBase, tokyo)
	require.NoError(t, err)
	assert.Equal(t, 23, res.At.In(tokyo).Hour())

	// 16:00 Tokyo has already passed
	_, err = Parse("today 16:00", wedBase, tokyo)
	require.Error(t, err)
	assert.Equal(t, CodePastDateTime, CodeOf(err))
}

func TestCodeOf_ForeignError(t *testing.T) {
	assert.Empty(t, CodeOf(assert.AnError))
}

// Package schedule turns customer-supplied scheduling text into concrete
// instants in the business timezone and checks them against opening hours
// and per-item notice requirements.
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Issue codes carried by parse and validation failures.
const (
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	CodePastDateTime      = "PAST_DATE_TIME"
	CodeBusinessClosed    = "BUSINESS_CLOSED"
)

// Error is a scheduling failure with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// CodeOf extracts the schedule code from err, empty for foreign errors.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func invalid(format string, args ...interface{}) error {
	return &Error{Code: CodeInvalidDateFormat, Message: fmt.Sprintf(format, args...)}
}

func past(format string, args ...interface{}) error {
	return &Error{Code: CodePastDateTime, Message: fmt.Sprintf(format, args...)}
}

// Result is a resolved scheduling expression. DateOnly marks inputs that
// carried no clock time; At then points at midnight of the requested day and
// the caller substitutes the opening time.
type Result struct {
	At       time.Time
	DateOnly bool
}

var (
	relativeRe = regexp.MustCompile(`^in\s+(\d+|an?)\s+(hour|hours|hr|hrs|minute|minutes|min|mins)$`)
	clockRe    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
	isoDateRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	dmyDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse resolves a natural-language scheduling expression relative to now in
// the given location. Supported day anchors: "today", "tomorrow", weekday
// names, ISO dates, and D/M or D/M/YYYY dates; clock forms: "HH:MM", bare
// hours, and am/pm suffixes. A bare hour from 1 to 11 with no meridiem is
// read as evening. A bare clock time that already passed today rolls over to
// tomorrow; everything else in the past is rejected.
func Parse(text string, now time.Time, loc *time.Location) (*Result, error) {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil, invalid("no date or time given")
	}

	if m := relativeRe.FindStringSubmatch(s); m != nil {
		return parseRelative(m, now)
	}

	dayText, clockText := splitDayClock(s)

	var day time.Time
	haveDay := dayText != ""
	if haveDay {
		d, err := parseDay(dayText, now, loc)
		if err != nil {
			return nil, err
		}
		day = d
	}

	if clockText == "" {
		if !haveDay {
			return nil, invalid("could not read %q as a date or time", text)
		}
		if day.Before(startOfDay(now)) {
			return nil, past("%s is already past", dayText)
		}
		return &Result{At: day, DateOnly: true}, nil
	}

	hour, minute, err := parseClock(clockText)
	if err != nil {
		return nil, err
	}

	if !haveDay {
		day = startOfDay(now)
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)

	// Weekday anchors land on the next occurrence when today's slot passed
	if haveDay && at.Before(now) {
		if _, isWeekday := weekdays[dayText]; isWeekday && at.YearDay() == now.YearDay() {
			at = at.AddDate(0, 0, 7)
		}
	}
	// A bare clock time rolls over to tomorrow once passed
	if !haveDay && at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}

	if at.Before(now) {
		return nil, past("%s has already passed", at.Format("Monday 15:04"))
	}
	return &Result{At: at}, nil
}

func parseRelative(m []string, now time.Time) (*Result, error) {
	n := 1
	if m[1] != "a" && m[1] != "an" {
		parsed, err := strconv.Atoi(m[1])
		if err != nil || parsed < 1 {
			return nil, invalid("unreadable amount %q", m[1])
		}
		n = parsed
	}
	switch {
	case strings.HasPrefix(m[2], "hour"), strings.HasPrefix(m[2], "hr"):
		return &Result{At: now.Add(time.Duration(n) * time.Hour)}, nil
	default:
		return &Result{At: now.Add(time.Duration(n) * time.Minute)}, nil
	}
}

// splitDayClock cuts the expression into a day anchor and a clock part. The
// connective "at" between them is dropped.
func splitDayClock(s string) (string, string) {
	fields := strings.Fields(s)

	dayLen := 0
	switch {
	case fields[0] == "today" || fields[0] == "tomorrow":
		dayLen = 1
	case isWeekdayWord(fields[0]):
		dayLen = 1
	case fields[0] == "next" && len(fields) > 1 && isWeekdayWord(fields[1]):
		dayLen = 2
	case isoDateRe.MatchString(fields[0]) || dmyDateRe.MatchString(fields[0]):
		dayLen = 1
	}

	rest := fields[dayLen:]
	if len(rest) > 0 && rest[0] == "at" {
		rest = rest[1:]
	}
	return strings.Join(fields[:dayLen], " "), strings.Join(rest, " ")
}

func isWeekdayWord(w string) bool {
	_, ok := weekdays[w]
	return ok
}

func parseDay(dayText string, now time.Time, loc *time.Location) (time.Time, error) {
	today := startOfDay(now)

	switch {
	case dayText == "today":
		return today, nil
	case dayText == "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if target, ok := weekdays[strings.TrimPrefix(dayText, "next ")]; ok {
		ahead := (int(target) - int(now.Weekday()) + 7) % 7
		if strings.HasPrefix(dayText, "next ") && ahead == 0 {
			ahead = 7
		}
		return today.AddDate(0, 0, ahead), nil
	}

	if isoDateRe.MatchString(dayText) {
		d, err := time.ParseInLocation("2006-01-02", dayText, loc)
		if err != nil {
			return time.Time{}, invalid("%q is not a real date", dayText)
		}
		return d, nil
	}

	if m := dmyDateRe.FindStringSubmatch(dayText); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, invalid("%q is not a real date", dayText)
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		// Normalization moving the date means the day never existed
		if d.Day() != day || d.Month() != time.Month(month) {
			return time.Time{}, invalid("%q is not a real date", dayText)
		}
		return d, nil
	}

	return time.Time{}, invalid("could not read %q as a date", dayText)
}

// parseClock reads a clock expression. Hours 1 to 11 with no meridiem are
// taken as evening.
func parseClock(clockText string) (int, int, error) {
	m := clockRe.FindStringSubmatch(clockText)
	if m == nil {
		return 0, 0, invalid("could not read %q as a time", clockText)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return 0, 0, invalid("%q is not a valid time", clockText)
	}

	switch m[3] {
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, invalid("%q is not a valid time", clockText)
		}
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, invalid("%q is not a valid time", clockText)
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, 0, invalid("%q is not a valid time", clockText)
		}
		if hour >= 1 && hour <= 11 {
			hour += 12
		}
	}
	return hour, minute, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

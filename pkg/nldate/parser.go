package nldate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Parser extracts concrete dates and times from free-form scheduling text
// ("add a team lunch next tuesday from 12pm to 1:30pm"). It is stateless
// and safe for concurrent use.
type Parser struct {
	fuzzy *when.Parser
}

// New creates a new natural-language date/time Parser.
func New() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{fuzzy: w}
}

// Parse extracts date/time information from text anchored at the current
// system time.
func (p *Parser) Parse(text string) Result {
	return p.ParseAt(text, time.Now())
}

// ParseAt extracts date/time information from text anchored at now.
// It never fails: text with no recognizable date/time content resolves to
// now unchanged, and callers decide whether that is usable (HasDateHint).
func (p *Parser) ParseAt(text string, now time.Time) Result {
	raw := strings.TrimSpace(text)
	lower := strings.ToLower(raw)

	allDay := allDayRe.MatchString(lower)

	base := p.resolveDay(lower, raw, now)
	base, end, timeFound := resolveTime(lower, base)

	// Day keyword with no time at all means a date, not an instant.
	if !timeFound && !allDay && containsDayKeyword(lower) {
		allDay = true
		end = nil
	}

	if allDay {
		return Result{AllDay: true, StartDate: startOfDay(base)}
	}
	return Result{Start: base, End: end}
}

// HasDateHint reports whether text contains any day keyword, explicit
// all-day marker, or time expression the extractor understands. Callers
// use it to distinguish a real parse from the now-fallback.
func (p *Parser) HasDateHint(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if allDayRe.MatchString(lower) || containsDayKeyword(lower) {
		return true
	}
	for _, rp := range rangePatterns {
		if rp.re.MatchString(lower) {
			return true
		}
	}
	for _, sp := range singlePatterns {
		if sp.re.MatchString(lower) {
			return true
		}
	}
	return false
}

// --- day resolution ---

var allDayRe = regexp.MustCompile(`\b(all[-\s]?day|full[-\s]?day)\b`)

// Offsets follow the Monday=0 weekday convention. The table starts at 7 and
// the raw difference offset-weekday (1..13 days, no modulo) is applied, so
// "next <weekday>" always lands in the following week, never this one.
var weekdayRules = []struct {
	re     *regexp.Regexp
	offset int
}{
	{regexp.MustCompile(`next\s+monday`), 7},
	{regexp.MustCompile(`next\s+tuesday`), 8},
	{regexp.MustCompile(`next\s+wednesday`), 9},
	{regexp.MustCompile(`next\s+thursday`), 10},
	{regexp.MustCompile(`next\s+friday`), 11},
	{regexp.MustCompile(`next\s+saturday`), 12},
	{regexp.MustCompile(`next\s+sunday`), 13},
}

var weekendRe = regexp.MustCompile(`this\s+weekend`)

var dayKeywords = []string{
	"tomorrow", "today", "monday", "tuesday", "wednesday",
	"thursday", "friday", "saturday", "sunday", "next week", "weekend",
}

// fuzzyLayouts are tried before the fuzzy matcher so canonical timestamps
// round-trip exactly.
var fuzzyLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// resolveDay maps day-referring phrases to a concrete date, first match
// wins. The result keeps now's clock fields until a time is resolved.
func (p *Parser) resolveDay(lower, raw string, now time.Time) time.Time {
	switch {
	case strings.Contains(lower, "day after tomorrow"):
		return now.AddDate(0, 0, 2)
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1)
	case strings.Contains(lower, "today"):
		return now
	}

	for _, wd := range weekdayRules {
		if wd.re.MatchString(lower) {
			return now.AddDate(0, 0, wd.offset-mondayBasedWeekday(now))
		}
	}

	if weekendRe.MatchString(lower) {
		// Upcoming Saturday; a Saturday today counts as this weekend.
		daysAhead := ((5 - mondayBasedWeekday(now)) % 7 + 7) % 7
		return now.AddDate(0, 0, daysAhead)
	}

	if strings.Contains(lower, "next week") {
		return now.AddDate(0, 0, 7)
	}
	if strings.Contains(lower, "next month") {
		return addOneMonth(now)
	}

	return p.parseFuzzy(raw, now)
}

// parseFuzzy is the best-effort fallback for text without a recognized day
// phrase. Anything unparseable resolves to now unchanged.
func (p *Parser) parseFuzzy(raw string, now time.Time) time.Time {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range fuzzyLayouts {
		if ts, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return ts
		}
	}

	res, err := p.fuzzy.Parse(raw, now)
	if err != nil || res == nil {
		return now
	}
	return res.Time
}

// mondayBasedWeekday converts Go's Sunday=0 weekday to the Monday=0
// convention the offset table uses.
func mondayBasedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// addOneMonth advances t by one calendar month, clamping the day-of-month
// to the target month's length (Jan 31 -> Feb 28/29).
func addOneMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	h, min, s := t.Clock()
	lastDay := time.Date(y, m+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(y, m+1, d, h, min, s, t.Nanosecond(), t.Location())
}

// --- time resolution ---

// clock is a parsed wall-clock time before 12h/24h normalization.
type clock struct {
	hour, minute int
	meridiem     string
}

// normalize applies the 12-hour to 24-hour conversion.
func (c clock) normalize() (int, int) {
	h := c.hour
	switch {
	case c.meridiem == "pm" && h != 12:
		h += 12
	case c.meridiem == "am" && h == 12:
		h = 0
	}
	return h, c.minute
}

const rangeSep = `\s*(?:to|until|till|-)\s*`

// rangePatterns are tried in order, first match wins. The first two mirror
// the single-time grammar on both sides; the mixed forms allow minutes on
// one side only ("12pm to 1:30pm"). Do not merge these: the bare-digit
// forms rely on try-order for disambiguation.
var rangePatterns = []struct {
	re          *regexp.Regexp
	startHasMin bool
	endHasMin   bool
}{
	{regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?` + rangeSep + `(\d{1,2}):(\d{2})\s*(am|pm)?`), true, true},
	{regexp.MustCompile(`(\d{1,2})\s*(am|pm)` + rangeSep + `(\d{1,2})\s*(am|pm)`), false, false},
	{regexp.MustCompile(`(\d{1,2})\s*(am|pm)` + rangeSep + `(\d{1,2}):(\d{2})\s*(am|pm)?`), false, true},
	{regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?` + rangeSep + `(\d{1,2})\s*(am|pm)`), true, false},
	{regexp.MustCompile(`from\s*(\d{1,2}):(\d{2})\s*(am|pm)?` + rangeSep + `(\d{1,2}):(\d{2})\s*(am|pm)?`), true, true},
	{regexp.MustCompile(`from\s*(\d{1,2})\s*(am|pm)` + rangeSep + `(\d{1,2})\s*(am|pm)`), false, false},
}

// singlePatterns are tried in order after no range matched. The bare HH:MM
// form comes last and takes the digits as given, with no am/pm inference.
var singlePatterns = []struct {
	re     *regexp.Regexp
	hasMin bool
	hasAP  bool
}{
	{regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)`), true, true},
	{regexp.MustCompile(`(\d{1,2})\s*(am|pm)`), false, true},
	{regexp.MustCompile(`at\s*(\d{1,2}):(\d{2})`), true, false},
	{regexp.MustCompile(`at\s*(\d{1,2})\s*(am|pm)`), false, true},
	{regexp.MustCompile(`(\d{1,2}):(\d{2})`), true, false},
}

// resolveTime extracts a start time and optional end time from lower,
// overwriting base's clock fields. Returns the updated base, the end
// instant when one applies, and whether any time expression matched.
func resolveTime(lower string, base time.Time) (time.Time, *time.Time, bool) {
	// Phase 1: explicit ranges.
	for _, rp := range rangePatterns {
		m := rp.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		groups := m[1:]
		start, rest := takeClock(groups, rp.startHasMin)
		end, _ := takeClock(rest, rp.endHasMin)

		sh, sm := start.normalize()
		eh, em := end.normalize()

		base = setClock(base, sh, sm)
		endDT := setClock(base, eh, em)
		if endDT.Before(base) {
			// Range crosses midnight ("10pm to 1am").
			endDT = endDT.AddDate(0, 0, 1)
		}
		return base, &endDT, true
	}

	// Phase 2: single time, default duration one hour.
	for _, sp := range singlePatterns {
		m := sp.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		c := clock{}
		idx := 0
		c.hour, _ = strconv.Atoi(m[idx+1])
		idx++
		if sp.hasMin {
			c.minute, _ = strconv.Atoi(m[idx+1])
			idx++
		}
		if sp.hasAP {
			c.meridiem = m[idx+1]
		}

		h, min := c.normalize()
		base = setClock(base, h, min)
		endDT := base.Add(time.Hour)
		return base, &endDT, true
	}

	return base, nil, false
}

// takeClock consumes one side of a range match: hour, optional minutes,
// optional meridiem. Returns the parsed clock and the remaining groups.
func takeClock(groups []string, hasMin bool) (clock, []string) {
	c := clock{}
	i := 0
	c.hour, _ = strconv.Atoi(groups[i])
	i++
	if hasMin {
		c.minute, _ = strconv.Atoi(groups[i])
		i++
	}
	// Meridiem group is present but may be empty when optional.
	if i < len(groups) {
		c.meridiem = groups[i]
		i++
	}
	return c, groups[i:]
}

func setClock(t time.Time, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return setClock(t, 0, 0)
}

func containsDayKeyword(lower string) bool {
	for _, kw := range dayKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

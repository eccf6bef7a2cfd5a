package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver converts natural-language date/time expressions, English or
// Indonesian, into absolute instants anchored at a reference time.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Jakarta".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// NewResolverIn creates a resolver bound to an already-loaded location.
// A nil location means UTC.
func NewResolverIn(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{location: loc}
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

var (
	reISO       = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reInDur     = regexp.MustCompile(`\bin (\d+) (days?|weeks?|months?)\b`)
	reDurLater  = regexp.MustCompile(`\b(\d+) (hari|minggu|bulan) lagi\b`)
	reNextWday  = regexp.MustCompile(`\bnext (monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reWdayDepan = regexp.MustCompile(`\b(senin|selasa|rabu|kamis|jum'?at|sabtu|minggu) depan\b`)
	reHariWday  = regexp.MustCompile(`\bhari (senin|selasa|rabu|kamis|jum'?at|sabtu|minggu)\b`)
	reNextWeek  = regexp.MustCompile(`\bnext week\b`)
	reDayWord   = regexp.MustCompile(`\b(day after tomorrow|nanti malam|hari ini|tomorrow|tonight|today|yesterday|besoknya|besok|lusa|kemarin)\b`)
	reMonthEN   = regexp.MustCompile(`\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.? (\d{1,2})(?:st|nd|rd|th)?\b`)
	reMonthID   = regexp.MustCompile(`\b(\d{1,2}) (januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember)\b`)
	reSlash     = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)

	reClock       = regexp.MustCompile(`\b(?:at |pada |pukul |jam )?(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	reHourAmPm    = regexp.MustCompile(`\b(?:at |pada )?(\d{1,2})\s*(am|pm)\b`)
	reJamHour     = regexp.MustCompile(`\b(?:jam|pukul)\s+(\d{1,2})(?:\s+(pagi|siang|sore|malam))?\b`)
	reHourDaypart = regexp.MustCompile(`\b(\d{1,2})\s+(pagi|siang|sore|malam)\b`)
	reDaypart     = regexp.MustCompile(`\b(pagi-pagi|tengah malam|pagi|siang|sore|malam|noon|midnight|morning|afternoon|evening)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
	"senin":  time.Monday, "selasa": time.Tuesday, "rabu": time.Wednesday,
	"kamis": time.Thursday, "jumat": time.Friday, "jum'at": time.Friday,
	"sabtu": time.Saturday, "minggu": time.Sunday,
}

var monthsEN = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

var monthsID = map[string]time.Month{
	"januari": time.January, "februari": time.February, "maret": time.March,
	"april": time.April, "mei": time.May, "juni": time.June, "juli": time.July,
	"agustus": time.August, "september": time.September, "oktober": time.October,
	"november": time.November, "desember": time.December,
}

// Day offsets for single-expression relative days. A negative implied hour
// means the word states no clock time.
var dayWords = map[string]struct {
	offset      int
	impliedHour int
}{
	"today":              {0, -1},
	"hari ini":           {0, -1},
	"tonight":            {0, 20},
	"nanti malam":        {0, 20},
	"tomorrow":           {1, -1},
	"besok":              {1, -1},
	"besoknya":           {1, -1},
	"lusa":               {2, -1},
	"day after tomorrow": {2, -1},
	"yesterday":          {-1, -1},
	"kemarin":            {-1, -1},
}

var dayparts = map[string]int{
	"pagi-pagi": 9, "pagi": 9, "morning": 9,
	"siang": 12, "noon": 12,
	"afternoon": 15, "sore": 17, "evening": 19,
	"malam": 20, "tengah malam": 0, "midnight": 0,
}

type dateHit struct {
	span        [2]int
	day         time.Time // midnight in the resolver's location
	impliedHour int       // -1 when the expression carries no time
}

type timeHit struct {
	span      [2]int
	hour, min int
}

// Resolve scans text for the first date expression and the first clock-time
// expression, and combines them against ref. A stated date without a time
// defaults to 09:00 local; a stated time without a date lands on ref's day.
// Returns nil when the text states neither.
func (r *Resolver) Resolve(text string, ref time.Time) *Resolution {
	lower := strings.ToLower(text)
	refLocal := ref.In(r.location)

	d := r.findDate(lower, refLocal)
	t := r.findTime(lower, d)

	if d == nil && t == nil {
		return nil
	}

	day := r.startOfDay(refLocal)
	if d != nil {
		day = d.day
	}

	hour, min := 9, 0
	hasTime := false
	switch {
	case t != nil:
		hour, min = t.hour, t.min
		hasTime = true
	case d != nil && d.impliedHour >= 0:
		hour = d.impliedHour
		hasTime = true
	}

	res := &Resolution{
		At:      time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, r.location).UTC(),
		HasDate: d != nil,
		HasTime: hasTime,
	}
	if d != nil {
		res.Spans = append(res.Spans, d.span)
	}
	if t != nil {
		res.Spans = append(res.Spans, t.span)
	}
	return res
}

func (r *Resolver) findDate(lower string, refLocal time.Time) *dateHit {
	base := r.startOfDay(refLocal)

	if m := reISO.FindStringSubmatchIndex(lower); m != nil {
		y, _ := strconv.Atoi(lower[m[2]:m[3]])
		mo, _ := strconv.Atoi(lower[m[4]:m[5]])
		dd, _ := strconv.Atoi(lower[m[6]:m[7]])
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         time.Date(y, time.Month(mo), dd, 0, 0, 0, 0, r.location),
			impliedHour: -1,
		}
	}

	if m := reInDur.FindStringSubmatchIndex(lower); m != nil {
		n, _ := strconv.Atoi(lower[m[2]:m[3]])
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         addUnit(base, lower[m[4]:m[5]], n),
			impliedHour: -1,
		}
	}

	if m := reDurLater.FindStringSubmatchIndex(lower); m != nil {
		n, _ := strconv.Atoi(lower[m[2]:m[3]])
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         addUnit(base, lower[m[4]:m[5]], n),
			impliedHour: -1,
		}
	}

	if m := reNextWeek.FindStringIndex(lower); m != nil {
		return &dateHit{span: [2]int{m[0], m[1]}, day: base.AddDate(0, 0, 7), impliedHour: -1}
	}

	if m := reNextWday.FindStringSubmatchIndex(lower); m != nil {
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         nextWeekday(base, weekdays[lower[m[2]:m[3]]]),
			impliedHour: -1,
		}
	}

	if m := reWdayDepan.FindStringSubmatchIndex(lower); m != nil {
		name := lower[m[2]:m[3]]
		day := base.AddDate(0, 0, 7) // "minggu depan" means next week
		if name != "minggu" {
			day = nextWeekday(base, weekdays[name])
		}
		return &dateHit{span: [2]int{m[0], m[1]}, day: day, impliedHour: -1}
	}

	if m := reHariWday.FindStringSubmatchIndex(lower); m != nil {
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         upcomingWeekday(base, weekdays[lower[m[2]:m[3]]]),
			impliedHour: -1,
		}
	}

	if m := reDayWord.FindStringSubmatchIndex(lower); m != nil {
		w := dayWords[lower[m[2]:m[3]]]
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         base.AddDate(0, 0, w.offset),
			impliedHour: w.impliedHour,
		}
	}

	if m := reMonthEN.FindStringSubmatchIndex(lower); m != nil {
		mo := monthsEN[lower[m[2]:m[3]][:3]]
		dd, _ := strconv.Atoi(lower[m[4]:m[5]])
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         r.rollForward(time.Date(base.Year(), mo, dd, 0, 0, 0, 0, r.location), base),
			impliedHour: -1,
		}
	}

	if m := reMonthID.FindStringSubmatchIndex(lower); m != nil {
		dd, _ := strconv.Atoi(lower[m[2]:m[3]])
		mo := monthsID[lower[m[4]:m[5]]]
		return &dateHit{
			span:        [2]int{m[0], m[1]},
			day:         r.rollForward(time.Date(base.Year(), mo, dd, 0, 0, 0, 0, r.location), base),
			impliedHour: -1,
		}
	}

	if m := reSlash.FindStringSubmatchIndex(lower); m != nil {
		dd, _ := strconv.Atoi(lower[m[2]:m[3]])
		mo, _ := strconv.Atoi(lower[m[4]:m[5]])
		if mo < 1 || mo > 12 || dd < 1 || dd > 31 {
			return nil
		}
		year := base.Year()
		explicitYear := false
		if m[6] != -1 {
			year, _ = strconv.Atoi(lower[m[6]:m[7]])
			if year < 100 {
				year += 2000
			}
			explicitYear = true
		}
		day := time.Date(year, time.Month(mo), dd, 0, 0, 0, 0, r.location)
		if !explicitYear {
			day = r.rollForward(day, base)
		}
		return &dateHit{span: [2]int{m[0], m[1]}, day: day, impliedHour: -1}
	}

	return nil
}

func (r *Resolver) findTime(lower string, d *dateHit) *timeHit {
	if m := reClock.FindStringSubmatchIndex(lower); m != nil && !overlaps(m, d) {
		h, _ := strconv.Atoi(lower[m[2]:m[3]])
		min, _ := strconv.Atoi(lower[m[4]:m[5]])
		if m[6] != -1 {
			h = meridiemHour(h, lower[m[6]:m[7]])
		}
		if h <= 23 && min <= 59 {
			return &timeHit{span: [2]int{m[0], m[1]}, hour: h, min: min}
		}
	}

	if m := reHourAmPm.FindStringSubmatchIndex(lower); m != nil && !overlaps(m, d) {
		h, _ := strconv.Atoi(lower[m[2]:m[3]])
		if h >= 1 && h <= 12 {
			return &timeHit{span: [2]int{m[0], m[1]}, hour: meridiemHour(h, lower[m[4]:m[5]])}
		}
	}

	if m := reJamHour.FindStringSubmatchIndex(lower); m != nil && !overlaps(m, d) {
		h, _ := strconv.Atoi(lower[m[2]:m[3]])
		if m[4] != -1 {
			h = daypartHour(h, lower[m[4]:m[5]])
		}
		if h <= 23 {
			return &timeHit{span: [2]int{m[0], m[1]}, hour: h}
		}
	}

	if m := reHourDaypart.FindStringSubmatchIndex(lower); m != nil && !overlaps(m, d) {
		h, _ := strconv.Atoi(lower[m[2]:m[3]])
		h = daypartHour(h, lower[m[4]:m[5]])
		if h <= 23 {
			return &timeHit{span: [2]int{m[0], m[1]}, hour: h}
		}
	}

	if m := reDaypart.FindStringSubmatchIndex(lower); m != nil && !overlaps(m, d) {
		return &timeHit{span: [2]int{m[0], m[1]}, hour: dayparts[lower[m[2]:m[3]]]}
	}

	return nil
}

// meridiemHour converts a 12-hour clock value.
func meridiemHour(h int, meridiem string) int {
	if meridiem == "pm" && h != 12 {
		return h + 12
	}
	if meridiem == "am" && h == 12 {
		return 0
	}
	return h
}

// daypartHour shifts an Indonesian 12-hour value by its day part:
// "jam 3 sore" is 15:00, "jam 8 malam" is 20:00, "jam 12 siang" stays noon.
func daypartHour(h int, part string) int {
	switch part {
	case "siang":
		if h < 11 {
			return h + 12
		}
	case "sore", "malam":
		if h < 12 {
			return h + 12
		}
	}
	return h
}

func addUnit(base time.Time, unit string, n int) time.Time {
	switch {
	case strings.HasPrefix(unit, "day"), unit == "hari":
		return base.AddDate(0, 0, n)
	case strings.HasPrefix(unit, "week"), unit == "minggu":
		return base.AddDate(0, 0, n*7)
	default: // months / bulan
		return base.AddDate(0, n, 0)
	}
}

// nextWeekday returns the next occurrence of w strictly after base.
func nextWeekday(base time.Time, w time.Weekday) time.Time {
	days := int(w - base.Weekday())
	if days <= 0 {
		days += 7
	}
	return base.AddDate(0, 0, days)
}

// upcomingWeekday allows base's own day to count.
func upcomingWeekday(base time.Time, w time.Weekday) time.Time {
	days := (int(w-base.Weekday()) + 7) % 7
	return base.AddDate(0, 0, days)
}

// rollForward pushes a yearless date into the future when it has already
// passed relative to base.
func (r *Resolver) rollForward(day, base time.Time) time.Time {
	if day.Before(base) {
		return day.AddDate(1, 0, 0)
	}
	return day
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

func overlaps(m []int, d *dateHit) bool {
	return d != nil && m[0] < d.span[1] && d.span[0] < m[1]
}

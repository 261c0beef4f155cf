package datefmt

import (
	"strconv"
	"strings"
	"time"
)

// RenderPattern formats t against a concrete locale pattern, substituting
// field runs from the calendar's name tables and copying literal text through.
// Offsets and zone names come straight from the time.Time; no timezone
// database work happens here.
func RenderPattern(pattern string, names NameTable, t time.Time) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						b.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				b.WriteByte(pattern[j])
				j++
			}
			i = j + 1
		case isASCIILetter(c):
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			b.WriteString(renderField(c, n, names, t))
			i += n
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

func renderField(symbol byte, count int, names NameTable, t time.Time) string {
	switch symbol {
	case 'G':
		return eraName(names, t.Year(), count)
	case 'y':
		return yearString(t.Year(), count)
	case 'Y':
		isoYear, _ := t.ISOWeek()
		return yearString(isoYear, count)
	case 'u', 'r':
		return padNumber(t.Year(), count)
	case 'Q', 'q':
		quarter := (int(t.Month())-1)/3 + 1
		switch {
		case count <= 2:
			return padNumber(quarter, count)
		case count == 3:
			return indexName(names.Quarters, quarter-1, "Q"+strconv.Itoa(quarter))
		default:
			return indexName(names.QuartersWide, quarter-1, "Q"+strconv.Itoa(quarter))
		}
	case 'M', 'L':
		month := int(t.Month())
		switch {
		case count <= 2:
			return padNumber(month, count)
		case count == 3:
			return indexName(names.MonthsAbbrev, month-1, strconv.Itoa(month))
		case count == 4:
			return indexName(names.MonthsWide, month-1, strconv.Itoa(month))
		default:
			return indexName(names.MonthsNarrow, month-1, indexName(names.MonthsAbbrev, month-1, strconv.Itoa(month)))
		}
	case 'w':
		_, week := t.ISOWeek()
		return padNumber(week, count)
	case 'W':
		return padNumber((t.Day()+6)/7, count)
	case 'd':
		return padNumber(t.Day(), count)
	case 'D':
		return padNumber(t.YearDay(), count)
	case 'F':
		return strconv.Itoa((t.Day()-1)/7 + 1)
	case 'E', 'e', 'c':
		weekday := int(t.Weekday())
		if symbol != 'E' && count <= 2 {
			// Local numeric weekday, Monday-first per ISO.
			iso := weekday
			if iso == 0 {
				iso = 7
			}
			return padNumber(iso, count)
		}
		switch {
		case count >= 5:
			return indexName(names.WeekdaysNarrow, weekday, indexName(names.WeekdaysAbbrev, weekday, ""))
		case count == 4:
			return indexName(names.WeekdaysWide, weekday, indexName(names.WeekdaysAbbrev, weekday, ""))
		default:
			return indexName(names.WeekdaysAbbrev, weekday, "")
		}
	case 'a', 'b':
		return dayPeriodName(names, t.Hour(), false)
	case 'B':
		return dayPeriodName(names, t.Hour(), true)
	case 'h':
		return padNumber((t.Hour()+11)%12+1, count)
	case 'H':
		return padNumber(t.Hour(), count)
	case 'K':
		return padNumber(t.Hour()%12, count)
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return padNumber(hour, count)
	case 'm':
		return padNumber(t.Minute(), count)
	case 's':
		return padNumber(t.Second(), count)
	case 'S':
		return fractionalSeconds(t.Nanosecond(), count)
	case 'A':
		millis := (t.Hour()*3600+t.Minute()*60+t.Second())*1000 + t.Nanosecond()/1e6
		return padNumber(millis, count)
	case 'z', 'v', 'V':
		if count >= 4 {
			return gmtOffset(t, true)
		}
		name, _ := t.Zone()
		if name == "" {
			return gmtOffset(t, false)
		}
		return name
	case 'O':
		return gmtOffset(t, count >= 4)
	case 'Z', 'x', 'X':
		return isoOffset(t, symbol, count)
	default:
		return ""
	}
}

func yearString(year int, count int) string {
	if year < 0 {
		year = -year
	}
	if count == 2 {
		return padNumber(year%100, 2)
	}
	return padNumber(year, count)
}

func eraName(names NameTable, year, count int) string {
	idx := 1
	if year <= 0 {
		idx = 0
	}
	if count >= 4 {
		if name := indexName(names.ErasWide, idx, ""); name != "" {
			return name
		}
	}
	return indexName(names.Eras, idx, "")
}

func dayPeriodName(names NameTable, hour int, flexible bool) string {
	if flexible && len(names.DayPeriods) > 0 {
		key := ""
		switch {
		case hour >= 6 && hour < 12:
			key = "morning1"
		case hour >= 12 && hour < 18:
			key = "afternoon1"
		case hour >= 18 && hour < 21:
			key = "evening1"
		default:
			key = "night1"
		}
		if name, ok := names.DayPeriods[key]; ok && name != "" {
			return name
		}
	}

	key := "pm"
	if hour < 12 {
		key = "am"
	}
	if name, ok := names.DayPeriods[key]; ok {
		return name
	}
	if key == "am" {
		return "AM"
	}
	return "PM"
}

func indexName(names []string, idx int, fallback string) string {
	if idx >= 0 && idx < len(names) && names[idx] != "" {
		return names[idx]
	}
	return fallback
}

func padNumber(value, width int) string {
	s := strconv.Itoa(value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func fractionalSeconds(nanos, count int) string {
	s := padNumber(nanos, 9)
	if count < len(s) {
		return s[:count]
	}
	return s + strings.Repeat("0", count-len(s))
}

func gmtOffset(t time.Time, long bool) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := offset % 3600 / 60

	if long {
		return "GMT" + sign + padNumber(hours, 2) + ":" + padNumber(minutes, 2)
	}
	if minutes == 0 {
		return "GMT" + sign + strconv.Itoa(hours)
	}
	return "GMT" + sign + strconv.Itoa(hours) + ":" + padNumber(minutes, 2)
}

func isoOffset(t time.Time, symbol byte, count int) string {
	_, offset := t.Zone()
	if symbol == 'X' && offset == 0 {
		return "Z"
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := offset % 3600 / 60

	switch {
	case symbol == 'Z' && count >= 4:
		return gmtOffset(t, true)
	case count == 1 && minutes == 0:
		return sign + padNumber(hours, 2)
	case count >= 3 || symbol == 'Z' && count >= 5:
		return sign + padNumber(hours, 2) + ":" + padNumber(minutes, 2)
	default:
		return sign + padNumber(hours, 2) + padNumber(minutes, 2)
	}
}

// applyGluePattern joins a date and time pattern through a CLDR glue pattern
// such as "{1}, {0}".
func applyGluePattern(glue, datePattern, timePattern string) string {
	result := strings.ReplaceAll(glue, "{1}", datePattern)
	return strings.ReplaceAll(result, "{0}", timePattern)
}

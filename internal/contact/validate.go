package contact

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/contactbook/internal/config"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*$`)

// ValidatePhone accepts 9 to 14 decimal digits and returns the value unchanged.
func ValidatePhone(raw string) (string, error) {
	if raw == "" || strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "", invalid(ErrInvalidPhone, raw, config.ReasonPhoneDigits)
	}
	if n := len(raw); n < config.PhoneMinDigits || n > config.PhoneMaxDigits {
		return "", invalid(ErrInvalidPhone, raw, config.ReasonPhoneLength)
	}
	return raw, nil
}

// ValidateBirthday parses a DD.MM.YYYY date. The result is midnight UTC.
func ValidateBirthday(raw string) (time.Time, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return time.Time{}, invalid(ErrInvalidBirthday, raw, config.ReasonDateFormat)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if !isDigits(p) {
			return time.Time{}, invalid(ErrInvalidBirthday, raw, config.ReasonDateFormat)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, invalid(ErrInvalidBirthday, raw, config.ReasonDateFormat)
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]

	if month < 1 || month > 12 {
		return time.Time{}, invalid(ErrInvalidBirthday, raw, config.ReasonMonthRange)
	}
	if len(parts[2]) != config.BirthdayYearDigits {
		return time.Time{}, invalid(ErrInvalidBirthday, raw, config.ReasonYearDigits)
	}
	maxDay := DaysInMonth(year, time.Month(month))
	if day < 1 || day > maxDay {
		return time.Time{}, invalid(ErrInvalidBirthday, raw, fmt.Sprintf(config.ReasonDayRangeFmt, maxDay))
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ValidateEmail reports whether raw is a syntactically valid address.
// No DNS or MX lookup is performed.
func ValidateEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}

// CheckEmail is ValidateEmail returning a ValidationError on failure.
func CheckEmail(raw string) error {
	if !ValidateEmail(raw) {
		return invalid(ErrInvalidEmail, raw, config.ReasonEmailPattern)
	}
	return nil
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FormatBirthday renders a date as DD.MM.YYYY.
func FormatBirthday(t time.Time) string {
	return t.Format(config.DateFormatBirthday)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	ErrInvalidPhone = errors.New("phone number must be entered in the format '+999999999', up to 15 digits")
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime  = errors.New("time must be in HH:MM format")
	ErrInvalidMonth = errors.New("month must be a valid month name")
)

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

var monthNames = map[string]bool{
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
}

// validatePhone accepts empty values; the field is optional everywhere.
func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

func validMonth(month string) bool {
	return monthNames[month]
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func parseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format(timeLayout), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func rangeError(field string, min, max any) error {
	return fmt.Errorf("%s must be between %v and %v", field, min, max)
}

func clampPage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}

func totalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}

func searchPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

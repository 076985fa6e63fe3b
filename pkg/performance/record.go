package performance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one performance measurement for a month, keyed "YYYY-MM".
type Record struct {
	ID          string
	Performance float32
	YearMonth   string
}

func NewRecord(performance float32, yearMonth string) Record {
	return Record{
		ID:          uuid.NewString(),
		Performance: performance,
		YearMonth:   yearMonth,
	}
}

// MonthKey formats the lookup key for a year and month.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

// ParseRecord parses "YYYY-MM=value".
func ParseRecord(s string) (Record, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return Record{}, fmt.Errorf("invalid record %q: want YYYY-MM=value", s)
	}
	key = strings.TrimSpace(key)
	if _, err := time.Parse("2006-01", key); err != nil {
		return Record{}, fmt.Errorf("invalid month %q: %w", key, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid performance %q: %w", value, err)
	}
	return NewRecord(float32(v), key), nil
}

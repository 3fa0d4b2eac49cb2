package request

import (
	"strings"
	"time"

	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("invalid date")

// ParseDay accepts a bare calendar date, read in loc, or a full RFC 3339
// timestamp. nil and blank input give nil.
func ParseDay(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*s)
	if t, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	return &t, nil
}

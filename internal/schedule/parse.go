package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCountRange parses the "min,max" form used on the command line.
func ParseCountRange(s string) (CountRange, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return CountRange{}, fmt.Errorf("%w: commits per day %q must look like \"min,max\"", ErrInvalidConfiguration, s)
	}

	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return CountRange{}, fmt.Errorf("%w: commits per day min %q: %v", ErrInvalidConfiguration, parts[0], err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return CountRange{}, fmt.Errorf("%w: commits per day max %q: %v", ErrInvalidConfiguration, parts[1], err)
	}

	r := CountRange{Min: lo, Max: hi}
	if err := (Options{CommitsPerDay: r}).Validate(); err != nil {
		return CountRange{}, err
	}
	return r, nil
}

func (r CountRange) String() string {
	return fmt.Sprintf("%d,%d", r.Min, r.Max)
}

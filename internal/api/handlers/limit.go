package handlers

import (
	"errors"
	"fmt"
	"log-tail-service/internal/api/dto"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 1000
)

// parseLimit validates the optional "limit" query parameter.
// It returns a non-nil issue when the value is not an integer in [MinLimit, MaxLimit].
func parseLimit(q url.Values) (int, *dto.ValidationIssue) {
	values, ok := q["limit"]
	if !ok || len(values) == 0 {
		return DefaultLimit, nil
	}

	// The last occurrence wins when the parameter is repeated.
	raw := values[len(values)-1]
	loc := []string{"query", "limit"}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		// Atoi saturates to the int bounds, which the range checks below reject.
		err = nil
	}
	if err != nil {
		return 0, &dto.ValidationIssue{
			Loc:   loc,
			Msg:   "Input should be a valid integer",
			Type:  "int_parsing",
			Input: raw,
		}
	}

	if n < MinLimit {
		return 0, &dto.ValidationIssue{
			Loc:   loc,
			Msg:   fmt.Sprintf("Input should be greater than or equal to %d", MinLimit),
			Type:  "greater_than_equal",
			Input: raw,
		}
	}
	if n > MaxLimit {
		return 0, &dto.ValidationIssue{
			Loc:   loc,
			Msg:   fmt.Sprintf("Input should be less than or equal to %d", MaxLimit),
			Type:  "less_than_equal",
			Input: raw,
		}
	}

	return n, nil
}

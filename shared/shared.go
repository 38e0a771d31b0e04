package shared

import (
	"math"
	"strconv"
	"strings"

	"bookspace/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// CalculateTotalPage returns ceil(total/limit). An empty collection still has zero pages.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// BuildCacheKey joins a prefix and its parts into a single redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// ConvertStringToInt returns nil for empty or non-numeric input.
func ConvertStringToInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

// ConvertStringToNumber mirrors a browser Number() conversion on form input:
// blank is zero and anything non-numeric is nil.
func ConvertStringToNumber(value string) *int {
	if strings.TrimSpace(value) == "" {
		zero := 0

		return &zero
	}

	return ConvertStringToInt(value)
}

// ParseID parses a positive path id.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

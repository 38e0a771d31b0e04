package timezone

import (
	"fmt"
	"strings"
	"time"

	"bookspace/config"
	"bookspace/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

// layouts accepted for timestamps coming back from the API.
var apiLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	constant.DateTimeLocalFormat,
}

// datetime-local values carry seconds, and optionally a fraction, once the
// input's step allows them. Parsing with seconds also accepts a fraction.
var localLayouts = []string{
	constant.DateTimeLocalFormat,
	"2006-01-02T15:04:05",
}

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// SetLocation overrides the application timezone.
func SetLocation(loc *time.Location) {
	appLocation = loc
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")

		return time.UTC
	}

	return appLocation
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ToISO reads a datetime-local value as wall time in the application timezone
// and returns the UTC instant with millisecond precision.
func ToISO(value string) (string, error) {
	var lastErr error

	for _, layout := range localLayouts {
		t, err := Parse(layout, value)
		if err == nil {
			return t.UTC().Format(constant.ISOFormat), nil
		}

		lastErr = err
	}

	return constant.Empty, fmt.Errorf("invalid date time %q: %w", value, lastErr)
}

// ParseAPI parses a timestamp produced by the booking API. Values without an
// offset are taken as UTC.
func ParseAPI(value string) (time.Time, error) {
	for _, layout := range apiLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// ToDateTimeLocal renders an API timestamp as a datetime-local value in the
// application timezone. Unparseable input is cut to the first 16 characters.
func ToDateTimeLocal(value string) string {
	t, err := ParseAPI(value)
	if err != nil {
		if len(value) > len(constant.DateTimeLocalFormat) {
			return value[:len(constant.DateTimeLocalFormat)]
		}

		return value
	}

	return Format(t, constant.DateTimeLocalFormat)
}

// Display renders an API timestamp for tables and detail dialogs.
func Display(value string) string {
	if strings.TrimSpace(value) == "" {
		return constant.MessageNotAvailable
	}

	t, err := ParseAPI(value)
	if err != nil {
		return value
	}

	return Format(t, constant.DisplayFormat)
}

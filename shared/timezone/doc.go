// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Converting an <input type="datetime-local"> value for the API:
//     iso, err := timezone.ToISO("2024-01-01T10:00") // "2024-01-01T10:00:00.000Z" when APP_TIMEZONE=UTC
//
//  2. Filling a datetime-local input from an API timestamp:
//     value := timezone.ToDateTimeLocal("2024-01-01T10:00:00Z")
//
//  3. Rendering a timestamp in a table cell:
//     text := timezone.Display(booking.StartTime)
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported. It plays the
// role a browser's local timezone plays for datetime-local inputs.
package timezone

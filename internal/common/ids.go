package common

import (
	"fmt"
	"strconv"
)

// Discord snowflakes are unsigned 64-bit integers, but Postgres only has a
// signed BIGINT type. IDs are stored by reinterpreting the bits, never by
// numeric conversion, so the full unsigned range survives a round trip.

// ParseID parses a Discord snowflake string into its numeric form.
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", raw, err)
	}
	return id, nil
}

// FormatID renders a numeric snowflake back into its wire form.
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// IDToDB reinterprets a snowflake as a signed 64-bit integer for storage.
func IDToDB(id uint64) int64 {
	return int64(id)
}

// DBToID reinterprets a stored signed 64-bit integer back into a snowflake.
func DBToID(db int64) uint64 {
	return uint64(db)
}

// Package timelib formats the microsecond timestamps carried by events.
package timelib

import (
	"strconv"
	"time"
)

// ToISO8601 renders a microsecond POSIX timestamp as ISO 8601 in UTC. The
// zero timestamp renders as "N/A": plugins emit it for events that carry a
// byte location but no time of their own.
func ToISO8601(usec int64) string {
	if usec == 0 {
		return "N/A"
	}
	return time.UnixMicro(usec).UTC().Format(time.RFC3339)
}

// FormatOffset renders a byte offset for table output.
func FormatOffset(offset int64) string {
	return "0x" + strconv.FormatInt(offset, 16)
}

package subtitles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ristryder/subtrack/common"
)

// ParseTimestamp converts "H:MM:SS.ff" text to milliseconds. Parsing is
// deliberately lenient for compatibility with malformed files: a field that
// is not a number counts as zero, and input that does not split into exactly
// three colon-separated fields yields 0 rather than an error.
func ParseTimestamp(text string) uint64 {
	fields := strings.Split(strings.TrimSpace(text), ":")
	if len(fields) != 3 {
		return 0
	}

	hours := common.FloatOrDefault(fields[0], 0)
	minutes := common.FloatOrDefault(fields[1], 0)
	seconds := common.FloatOrDefault(fields[2], 0)

	return uint64(math.Round(hours*3600000 + minutes*60000 + seconds*1000))
}

// ParseTimestampStrict is the error-reporting variant of ParseTimestamp for
// callers that want malformed timestamps surfaced instead of zeroed.
func ParseTimestampStrict(text string) (uint64, error) {
	fields := strings.Split(strings.TrimSpace(text), ":")
	if len(fields) != 3 {
		return 0, errors.Newf("timestamp %q does not have exactly three fields", text)
	}

	hours, hoursErr := strconv.ParseUint(fields[0], 10, 64)
	if hoursErr != nil {
		return 0, errors.Wrapf(hoursErr, "invalid hours in timestamp %q", text)
	}

	minutes, minutesErr := strconv.ParseUint(fields[1], 10, 64)
	if minutesErr != nil {
		return 0, errors.Wrapf(minutesErr, "invalid minutes in timestamp %q", text)
	}

	seconds, secondsErr := strconv.ParseFloat(fields[2], 64)
	if secondsErr != nil || seconds < 0 {
		return 0, errors.Newf("invalid seconds in timestamp %q", text)
	}

	return hours*3600000 + minutes*60000 + uint64(math.Round(seconds*1000)), nil
}

// FormatTimestamp renders milliseconds in the "H:MM:SS.ff" form used by the
// subtitle format, with hundredths precision.
func FormatTimestamp(ms uint64) string {
	hours := ms / 3600000
	minutes := ms % 3600000 / 60000
	seconds := ms % 60000 / 1000
	hundredths := ms % 1000 / 10

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, hundredths)
}

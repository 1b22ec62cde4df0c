package weather

import "time"

const wallClockLayout = "15:04:05"

// ToLocalTimeString renders a Unix timestamp as HH:MM:SS wall-clock time in zone.
func ToLocalTimeString(epochSeconds int64, zone *time.Location) string {
	if zone == nil {
		zone = time.Local
	}
	return time.Unix(epochSeconds, 0).In(zone).Format(wallClockLayout)
}

// ShortTime drops the seconds suffix of a ToLocalTimeString result.
func ShortTime(s string) string {
	if len(s) < 3 {
		return ""
	}
	return s[:len(s)-3]
}

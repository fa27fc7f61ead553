package timer

import "fmt"

// FormatTime renders seconds as zero-padded MM:SS. Minutes do not roll over
// into hours, so 3600 is "60:00".
func FormatTime(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

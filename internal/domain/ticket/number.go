package ticket

import (
	"fmt"
	"time"
)

// FormatNumber renders TB-YYYYMMDD-NNNN.
func FormatNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("TB-%s-%04d", day.Format("20060102"), seq)
}

package dashboard

import (
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
)

// BusinessDays counts the days in [start, end] that are neither a weekend nor a holiday.
// start and end are calendar dates at UTC midnight. An inverted range counts as zero.
func BusinessDays(start, end time.Time, holidays holiday.Set) int {
	count := 0
	for d := start; !d.After(end); d = utils.AddDays(d, 1) {
		if utils.IsWeekend(d) || holidays.Contains(d) {
			continue
		}
		count++
	}
	return count
}

package dashboard

import (
	"sort"
	"strings"

	"github.com/paracal/paracal-backend-go/internal/domain/dashboard"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
)

// Aggregate folds already-filtered events into the summary. Each event counts in
// full with its own span, never clipped to the requested range.
//
// An employee's display name is the first non-empty name stored on their events
// in the order given (the store returns id order), then names[employeeID], then "Unknown".
func Aggregate(events []event.LeaveEvent, holidays holiday.Set, names map[int64]string) dashboard.SummaryResponse {
	byEmployee := make(map[int64]*dashboard.EmployeeRanking)
	typeCounts := make(map[string]int)
	totalBusinessDays := 0

	for _, e := range events {
		start, end := e.EffectiveRange()
		days := BusinessDays(start, end, holidays)
		leaveType := string(e.LeaveType)

		acc, ok := byEmployee[e.EmployeeID]
		if !ok {
			acc = &dashboard.EmployeeRanking{
				EmployeeID: e.EmployeeID,
				EventTypes: make(map[string]int),
			}
			byEmployee[e.EmployeeID] = acc
		}
		if acc.Name == "" {
			acc.Name = strings.TrimSpace(e.EmployeeName)
		}
		acc.TotalEvents++
		acc.TotalBusinessDays += days
		acc.EventTypes[leaveType]++

		typeCounts[leaveType]++
		totalBusinessDays += days
	}

	ranking := make([]dashboard.EmployeeRanking, 0, len(byEmployee))
	for id, acc := range byEmployee {
		if acc.Name == "" {
			acc.Name = names[id]
		}
		if acc.Name == "" {
			acc.Name = dashboard.UnknownEmployeeName
		}
		ranking = append(ranking, *acc)
	}
	sort.Slice(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		if a.TotalEvents != b.TotalEvents {
			return a.TotalEvents > b.TotalEvents
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.EmployeeID < b.EmployeeID
	})

	return dashboard.SummaryResponse{
		MonthlyStats: dashboard.MonthlyStats{
			TotalEvents:       len(events),
			TotalEmployees:    len(byEmployee),
			TotalBusinessDays: totalBusinessDays,
			MostCommonType:    mostCommonType(typeCounts),
		},
		EmployeeRanking: ranking,
	}
}

// mostCommonType picks the highest count. Ties go to the lexically smallest key.
func mostCommonType(counts map[string]int) string {
	best, bestCount := dashboard.NoMostCommonType, 0
	for t, c := range counts {
		if c > bestCount || (c == bestCount && t < best) {
			best, bestCount = t, c
		}
	}
	return best
}

package publicholiday

import (
	"sort"
	"time"
)

type defaultHoliday struct {
	month time.Month
	day   int
	name  string
	typ   Type
}

var defaultHolidays = []defaultHoliday{
	{time.January, 1, "วันขึ้นปีใหม่", TypePublic},
	{time.February, 26, "วันมาฆบูชา", TypeReligious},
	{time.April, 6, "วันจักรี", TypePublic},
	{time.April, 13, "วันสงกรานต์", TypePublic},
	{time.April, 14, "วันสงกรานต์", TypePublic},
	{time.April, 15, "วันสงกรานต์", TypePublic},
	{time.May, 1, "วันแรงงานแห่งชาติ", TypePublic},
	{time.May, 4, "วันฉัตรมงคล", TypePublic},
	{time.May, 22, "วันวิสาขบูชา", TypeReligious},
	{time.June, 3, "วันเฉลิมพระชนมพรรษาสมเด็จพระนางเจ้าสุทิดา", TypePublic},
	{time.July, 20, "วันอาสาฬหบูชา", TypeReligious},
	{time.July, 21, "วันเข้าพรรษา", TypeReligious},
	{time.July, 28, "วันเฉลิมพระชนมพรรษาพระบาทสมเด็จพระเจ้าอยู่หัว", TypePublic},
	{time.August, 12, "วันแม่แห่งชาติ", TypePublic},
	{time.October, 13, "วันคล้ายวันสวรรคตพระบาทสมเด็จพระบรมชนกาธิเบศร มหาภูมิพลอดุลยเดชมหาราช", TypePublic},
	{time.October, 23, "วันปิยมหาราช", TypePublic},
	{time.December, 5, "วันพ่อแห่งชาติ", TypePublic},
	{time.December, 10, "วันรัฐธรรมนูญ", TypePublic},
	{time.December, 31, "วันสิ้นปี", TypePublic},
}

// Substitution days announced for specific years.
var substituteHolidays = map[int][]defaultHoliday{
	2024: {
		{time.July, 22, "วันหยุดชดเชยวันเข้าพรรษา", TypePublic},
		{time.December, 30, "วันหยุดชดเชยวันสิ้นปี", TypePublic},
	},
	2025: {
		{time.January, 2, "วันหยุดชดเชยวันขึ้นปีใหม่", TypePublic},
		{time.April, 16, "วันหยุดชดเชยวันสงกรานต์", TypePublic},
		{time.May, 2, "วันหยุดชดเชยวันแรงงานแห่งชาติ", TypePublic},
		{time.May, 5, "วันหยุดชดเชยวันฉัตรมงคล", TypePublic},
		{time.October, 14, "วันหยุดชดเชยวันคล้ายวันสวรรคตฯ", TypePublic},
	},
}

// Defaults returns the built-in Thai holiday list for year, ordered by date.
// Lunar holidays use fixed approximate dates.
func Defaults(year int) []PublicHoliday {
	entries := append(append([]defaultHoliday{}, defaultHolidays...), substituteHolidays[year]...)

	out := make([]PublicHoliday, 0, len(entries))
	for _, e := range entries {
		out = append(out, PublicHoliday{
			Date: time.Date(year, e.month, e.day, 0, 0, 0, 0, time.UTC),
			Name: e.name,
			Type: e.typ,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

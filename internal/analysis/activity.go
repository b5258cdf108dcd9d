package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/spacesedan/redlytics/internal/models"
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	MONTH_KEY_LAYOUT = "2006-01"
	DAY_KEY_LAYOUT   = "2006-01-02"
	YEARLY_WINDOW    = 365 * 24 * time.Hour
)

func applyActivity(r *models.AnalysisResult, items []models.ActivityItem, now time.Time) {
	hours := make([]models.HourActivity, 24)
	for h := range hours {
		hours[h].Hour = fmt.Sprintf("%d:00", h)
	}
	days := make([]models.DayActivity, 7)
	for d := range days {
		days[d].Day = dayNames[d]
	}

	months := map[string]*models.MonthActivity{}
	yearly := map[string]int{}
	windowStart := now.Add(-YEARLY_WINDOW)

	for _, it := range items {
		created := it.Created()
		hour := created.Hour()
		day := int(created.Weekday())

		key := created.Format(MONTH_KEY_LAYOUT)
		month, ok := months[key]
		if !ok {
			month = &models.MonthActivity{Date: key}
			months[key] = month
		}

		switch it.Kind {
		case models.ItemKindPost:
			hours[hour].Posts++
			days[day].Posts++
			month.Posts++
			month.PostKarma += it.Score()
		case models.ItemKindComment:
			hours[hour].Comments++
			days[day].Comments++
			month.Comments++
			month.CommentKarma += it.Score()
		}

		if !created.Before(windowStart) {
			yearly[created.Format(DAY_KEY_LAYOUT)]++
		}
	}

	r.ActivityByHour = hours
	r.ActivityByDay = days
	r.ActivityOverTime = sortedMonths(months)
	r.YearlyActivity = yearly

	busiestHour := 0
	for h := range hours {
		if hours[h].Posts+hours[h].Comments > hours[busiestHour].Posts+hours[busiestHour].Comments {
			busiestHour = h
		}
	}
	r.MostActiveHour = hours[busiestHour].Hour

	busiestDay := 0
	for d := range days {
		if days[d].Posts+days[d].Comments > days[busiestDay].Posts+days[busiestDay].Comments {
			busiestDay = d
		}
	}
	r.MostActiveDay = days[busiestDay].Day
}

func sortedMonths(months map[string]*models.MonthActivity) []models.MonthActivity {
	out := make([]models.MonthActivity, 0, len(months))
	for _, m := range months {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

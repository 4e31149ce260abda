package stats

import (
	"fmt"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

const dateLayout = "2006-01-02"

// DailyPoint is one calendar-day bucket of the charging chart.
type DailyPoint struct {
	Date        string  `json:"date"`
	QuantityKWh float64 `json:"quantity_kwh"`
	Cost        float64 `json:"cost"`
}

// WeeklyPoint is one week bucket of the cost chart.
type WeeklyPoint struct {
	Week  string  `json:"week"`
	Cost  float64 `json:"cost"`
	Count int     `json:"count"`
}

// DailySeries buckets completed orders by the calendar day of their end time
// over the trailing `days` window ending at `now`, oldest bucket first. Days
// are taken in now's location, so stored UTC timestamps land on the caller's
// calendar. The result always has exactly `days` entries so charts get a full
// x-axis; days without orders stay zero. Orders without an end time, or ending
// outside the window, are dropped.
func DailySeries(orders []models.Order, days int, now time.Time) []DailyPoint {
	if days <= 0 {
		return nil
	}

	points := make([]DailyPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-days+1)
		key := day.Format(dateLayout)
		points[i] = DailyPoint{Date: key}
		index[key] = i
	}

	for _, order := range orders {
		if order.Status != models.OrderStatusCompleted || order.EndTime == nil {
			continue
		}
		i, ok := index[order.EndTime.In(now.Location()).Format(dateLayout)]
		if !ok {
			continue
		}
		points[i].QuantityKWh += order.EnergyKWh
		points[i].Cost += order.Amount
	}

	for i := range points {
		points[i].QuantityKWh = round2(points[i].QuantityKWh)
		points[i].Cost = round2(points[i].Cost)
	}
	return points
}

// WeeklySeries buckets completed orders by ISO week over the trailing `weeks`
// window ending at `now`, oldest bucket first. Unlike DailySeries, weeks
// without any orders are omitted from the result, so it holds at most `weeks`
// entries.
func WeeklySeries(orders []models.Order, weeks int, now time.Time) []WeeklyPoint {
	if weeks <= 0 {
		return nil
	}

	points := make([]WeeklyPoint, weeks)
	index := make(map[string]int, weeks)
	for i := 0; i < weeks; i++ {
		week := weekLabel(now.AddDate(0, 0, (i-weeks+1)*7))
		points[i] = WeeklyPoint{Week: week}
		index[week] = i
	}

	for _, order := range orders {
		if order.Status != models.OrderStatusCompleted || order.EndTime == nil {
			continue
		}
		i, ok := index[weekLabel(order.EndTime.In(now.Location()))]
		if !ok {
			continue
		}
		points[i].Cost += order.Amount
		points[i].Count++
	}

	populated := points[:0]
	for _, p := range points {
		if p.Count == 0 {
			continue
		}
		p.Cost = round2(p.Cost)
		populated = append(populated, p)
	}
	return populated
}

func weekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

package orders

import (
	"sort"
	"time"

	"github.com/masalabox/orderflow/internal/pricing"
)

// DailyStat is one day's order count and revenue.
type DailyStat struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ItemStat aggregates sales of one product name.
type ItemStat struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// Analytics is the admin dashboard summary.
type Analytics struct {
	TotalOrders       int            `json:"totalOrders"`
	TotalRevenue      float64        `json:"totalRevenue"`
	AverageOrderValue float64        `json:"averageOrderValue"`
	OrdersByStatus    map[string]int `json:"ordersByStatus"`
	OrdersByDate      []DailyStat    `json:"ordersByDate"`
	TopItems          []ItemStat     `json:"topItems"`
}

// ComputeAnalytics aggregates orders in Go; the document store has no
// aggregation pipeline. OrdersByDate covers the seven days ending at now.
func ComputeAnalytics(all []Order, now time.Time) Analytics {
	a := Analytics{
		OrdersByStatus: map[string]int{},
		OrdersByDate:   []DailyStat{},
		TopItems:       []ItemStat{},
	}

	a.TotalOrders = len(all)

	byDate := map[string]*DailyStat{}
	byItem := map[string]*ItemStat{}
	sevenDaysAgo := startOfDay(now.AddDate(0, 0, -6))

	for i := range all {
		o := &all[i]
		a.TotalRevenue += o.Pricing.FinalTotal
		a.OrdersByStatus[o.OrderStatus]++

		if !o.CreatedAt.Before(sevenDaysAgo) {
			day := o.CreatedAt.Format("2006-01-02")
			ds, ok := byDate[day]
			if !ok {
				ds = &DailyStat{Date: day}
				byDate[day] = ds
			}
			ds.Count++
			ds.Revenue += o.Pricing.FinalTotal
		}

		for _, it := range o.Items {
			is, ok := byItem[it.ProductName]
			if !ok {
				is = &ItemStat{Name: it.ProductName}
				byItem[it.ProductName] = is
			}
			is.TotalQuantity += it.Quantity
			is.TotalRevenue += it.TotalPrice
		}
	}

	a.TotalRevenue = pricing.Round2(a.TotalRevenue)
	if a.TotalOrders > 0 {
		a.AverageOrderValue = pricing.Round2(a.TotalRevenue / float64(a.TotalOrders))
	}

	for _, ds := range byDate {
		ds.Revenue = pricing.Round2(ds.Revenue)
		a.OrdersByDate = append(a.OrdersByDate, *ds)
	}
	sort.Slice(a.OrdersByDate, func(i, j int) bool { return a.OrdersByDate[i].Date < a.OrdersByDate[j].Date })

	for _, is := range byItem {
		is.TotalRevenue = pricing.Round2(is.TotalRevenue)
		a.TopItems = append(a.TopItems, *is)
	}
	sort.Slice(a.TopItems, func(i, j int) bool {
		if a.TopItems[i].TotalQuantity != a.TopItems[j].TotalQuantity {
			return a.TopItems[i].TotalQuantity > a.TopItems[j].TotalQuantity
		}
		return a.TopItems[i].Name < a.TopItems[j].Name
	})
	if len(a.TopItems) > 5 {
		a.TopItems = a.TopItems[:5]
	}

	return a
}

package view

import (
	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/utils"
)

type KPI struct {
	Label   string
	Value   string
	Caption string
}

// Bar is one bar of a server-rendered chart. Percent is relative to the
// largest value of its chart.
type Bar struct {
	Label   string
	Value   string
	Percent int
}

type Pending struct {
	Primary   string
	Secondary string
}

type Dashboard struct {
	KPIs             []KPI
	Revenue          []Bar
	Categories       []Bar
	LatestOrders     []Row
	PendingCerts     []Pending
	PendingSubsidies []Pending
}

func (p *Presenter) Dashboard(stats *usecase.DashboardStats) Dashboard {
	if stats == nil {
		stats = usecase.EmptyDashboardStats()
	}

	d := Dashboard{
		KPIs: []KPI{
			{Label: "Total Pendapatan", Value: "Rp " + utils.Number(stats.TotalRevenue), Caption: "Dari pesanan selesai"},
			{Label: "Jumlah Pengguna", Value: utils.Number(float64(stats.TotalUsers)), Caption: "Terdaftar"},
			{Label: "Total Pesanan", Value: utils.Number(float64(stats.TotalOrders)), Caption: "Semua status"},
			{Label: "Sertifikasi Pending", Value: utils.Number(float64(stats.PendingCertifications)), Caption: "Perlu ditinjau"},
		},
	}

	var maxRevenue float64
	for _, m := range stats.MonthlyRevenue {
		if m.Revenue > maxRevenue {
			maxRevenue = m.Revenue
		}
	}
	for _, m := range stats.MonthlyRevenue {
		d.Revenue = append(d.Revenue, Bar{Label: m.Month, Value: "Rp " + utils.Number(m.Revenue), Percent: percent(m.Revenue, maxRevenue)})
	}

	var maxCount float64
	for _, c := range stats.Categories {
		if float64(c.Count) > maxCount {
			maxCount = float64(c.Count)
		}
	}
	for _, c := range stats.Categories {
		d.Categories = append(d.Categories, Bar{Label: c.Category, Value: utils.Number(float64(c.Count)), Percent: percent(float64(c.Count), maxCount)})
	}

	for _, o := range stats.LatestOrders {
		d.LatestOrders = append(d.LatestOrders, Row{
			ID: o.ID,
			Cells: []Cell{
				{Kind: CellMono, Text: o.ID},
				text(orNA(o.UserName)),
				text("Rp " + utils.Number(o.TotalPrice)),
				{Kind: CellBadge, Text: utils.OrDash(o.Status), Tone: orderTone(o.Status)},
			},
		})
	}

	for _, c := range stats.PendingCertList {
		d.PendingCerts = append(d.PendingCerts, Pending{Primary: utils.OrDash(c.CertificationType), Secondary: c.Email})
	}
	for _, s := range stats.PendingSubsidyList {
		d.PendingSubsidies = append(d.PendingSubsidies, Pending{Primary: utils.OrDash(s.SubsidyType), Secondary: s.UserName})
	}
	return d
}

func orderTone(status string) string {
	switch status {
	case entity.OrderCompleted:
		return "success"
	case entity.OrderCancelled:
		return "error"
	}
	return "warning"
}

func percent(v, max float64) int {
	if max <= 0 {
		return 0
	}
	return int(v/max*100 + 0.5)
}

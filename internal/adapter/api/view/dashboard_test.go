package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/infrastructure/storage"
	"pasaratsiri/internal/usecase"
)

func TestDashboardView(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})

	d := p.Dashboard(&usecase.DashboardStats{
		TotalRevenue:    1500000,
		TotalUsers:      1200,
		MonthlyRevenue:  []usecase.MonthlyRevenue{{Month: "Jan", Revenue: 500000}, {Month: "Feb", Revenue: 1000000}},
		Categories:      []usecase.CategoryCount{{Category: "Minyak Atsiri", Count: 2}, {Category: "Lainnya", Count: 1}},
		LatestOrders:    []*entity.Order{{ID: "o1", TotalPrice: 25000, Status: entity.OrderCancelled}},
		PendingCertList: []*entity.Certification{{ID: "c1", CertificationType: "Organik", Email: "sari@example.com"}},
	})

	assert.Equal(t, "Rp 1.500.000", d.KPIs[0].Value)
	assert.Equal(t, "Dari pesanan selesai", d.KPIs[0].Caption)
	assert.Equal(t, "1.200", d.KPIs[1].Value)

	require.Len(t, d.Revenue, 2)
	assert.Equal(t, 50, d.Revenue[0].Percent)
	assert.Equal(t, 100, d.Revenue[1].Percent)
	assert.Equal(t, "Minyak Atsiri", d.Categories[0].Label)

	require.Len(t, d.LatestOrders, 1)
	assert.Equal(t, "N/A", d.LatestOrders[0].Cells[1].Text)
	assert.Equal(t, "error", d.LatestOrders[0].Cells[3].Tone)
	assert.Equal(t, []Pending{{Primary: "Organik", Secondary: "sari@example.com"}}, d.PendingCerts)
	assert.Empty(t, d.PendingSubsidies)
}

func TestDashboardViewZeroRevenue(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})

	d := p.Dashboard(nil)

	assert.Equal(t, "Rp 0", d.KPIs[0].Value)
	assert.Empty(t, d.Revenue)
	assert.Empty(t, d.LatestOrders)
}

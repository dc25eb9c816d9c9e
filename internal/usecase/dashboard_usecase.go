package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/logger"
	"pasaratsiri/pkg/utils"
)

const (
	latestOrdersLimit = 5
	pendingListLimit  = 3
)

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DashboardStats struct {
	TotalRevenue          float64                 `json:"total_revenue"`
	TotalUsers            int                     `json:"total_users"`
	TotalOrders           int                     `json:"total_orders"`
	PendingCertifications int                     `json:"pending_certifications"`
	PendingSubsidies      int                     `json:"pending_subsidies"`
	MonthlyRevenue        []MonthlyRevenue        `json:"monthly_revenue"`
	Categories            []CategoryCount         `json:"categories"`
	LatestOrders          []*entity.Order         `json:"latest_orders"`
	PendingCertList       []*entity.Certification `json:"pending_certification_list"`
	PendingSubsidyList    []*entity.Subsidy       `json:"pending_subsidy_list"`
}

// EmptyDashboardStats is what the dashboard shows when aggregation fails.
func EmptyDashboardStats() *DashboardStats {
	return &DashboardStats{
		MonthlyRevenue:     []MonthlyRevenue{},
		Categories:         []CategoryCount{},
		LatestOrders:       []*entity.Order{},
		PendingCertList:    []*entity.Certification{},
		PendingSubsidyList: []*entity.Subsidy{},
	}
}

type DashboardUseCase struct {
	store    repository.DocumentStore
	location *time.Location
}

func NewDashboardUseCase(store repository.DocumentStore, location *time.Location) *DashboardUseCase {
	if location == nil {
		location = time.UTC
	}
	return &DashboardUseCase{
		store:    store,
		location: location,
	}
}

// GetStats reads the dashboard collections once, in parallel. Any failed
// read is logged and the zeroed stats are returned instead.
func (uc *DashboardUseCase) GetStats(ctx context.Context) *DashboardStats {
	var (
		users, orders, certs, products, subsidies, latest []repository.Document
	)

	group, gctx := errgroup.WithContext(ctx)
	readAll := func(collection string, dst *[]repository.Document) {
		group.Go(func() error {
			docs, err := uc.store.All(gctx, collection)
			*dst = docs
			return err
		})
	}
	readAll(entity.CollectionUsers, &users)
	readAll(entity.CollectionOrders, &orders)
	readAll(entity.CollectionCertifications, &certs)
	readAll(entity.CollectionProducts, &products)
	readAll(entity.CollectionSubsidies, &subsidies)
	group.Go(func() error {
		docs, err := uc.store.Query(gctx, entity.CollectionOrders, "createdAt", repository.Desc, latestOrdersLimit)
		latest = docs
		return err
	})

	if err := group.Wait(); err != nil {
		logger.Err(err, "Gagal mengambil data dashboard")
		return EmptyDashboardStats()
	}

	warn := func(id string, err error) {
		logger.Warn("dashboard document %s: %v", id, err)
	}
	return ComputeDashboard(DashboardInput{
		UserCount:      len(users),
		OrderCount:     len(orders),
		Orders:         repository.Decode(orders, func(o *entity.Order, id string) { o.ID = id }, warn),
		Certifications: repository.Decode(certs, func(c *entity.Certification, id string) { c.ID = id }, warn),
		Products:       repository.Decode(products, func(p *entity.Product, id string) { p.ID = id }, warn),
		Subsidies:      repository.Decode(subsidies, func(s *entity.Subsidy, id string) { s.ID = id }, warn),
		LatestOrders:   repository.Decode(latest, func(o *entity.Order, id string) { o.ID = id }, warn),
	}, uc.location)
}

type DashboardInput struct {
	UserCount      int
	OrderCount     int
	Orders         []*entity.Order
	Certifications []*entity.Certification
	Products       []*entity.Product
	Subsidies      []*entity.Subsidy
	LatestOrders   []*entity.Order
}

// ComputeDashboard derives the dashboard figures. Revenue counts completed
// orders only and is bucketed by short month name in canonical month
// order; months without completed orders are absent.
func ComputeDashboard(in DashboardInput, location *time.Location) *DashboardStats {
	stats := EmptyDashboardStats()
	stats.TotalUsers = in.UserCount
	stats.TotalOrders = in.OrderCount

	monthly := make(map[string]float64)
	for _, o := range in.Orders {
		if !o.IsCompleted() || o.TotalPrice == 0 {
			continue
		}
		stats.TotalRevenue += o.TotalPrice
		if !o.CreatedAt.IsZero() {
			monthly[utils.ShortMonth(o.CreatedAt.In(location).Month())] += o.TotalPrice
		}
	}
	for month, revenue := range monthly {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthlyRevenue{Month: month, Revenue: revenue})
	}
	sort.Slice(stats.MonthlyRevenue, func(i, j int) bool {
		return utils.MonthIndex(stats.MonthlyRevenue[i].Month) < utils.MonthIndex(stats.MonthlyRevenue[j].Month)
	})

	for _, c := range in.Certifications {
		if c.IsPending() {
			stats.PendingCertifications++
			if len(stats.PendingCertList) < pendingListLimit {
				stats.PendingCertList = append(stats.PendingCertList, c)
			}
		}
	}
	for _, s := range in.Subsidies {
		if s.IsPending() {
			stats.PendingSubsidies++
			if len(stats.PendingSubsidyList) < pendingListLimit {
				stats.PendingSubsidyList = append(stats.PendingSubsidyList, s)
			}
		}
	}

	index := make(map[string]int)
	for _, p := range in.Products {
		category := p.CategoryOrDefault()
		i, ok := index[category]
		if !ok {
			i = len(stats.Categories)
			index[category] = i
			stats.Categories = append(stats.Categories, CategoryCount{Category: category})
		}
		stats.Categories[i].Count++
	}

	if in.LatestOrders != nil {
		stats.LatestOrders = in.LatestOrders
	}
	return stats
}

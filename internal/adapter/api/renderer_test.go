package api

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/infrastructure/storage"
	"pasaratsiri/internal/usecase"
	"pasaratsiri/web"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(web.Assets)
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *Renderer, name string, data view.Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, data, nil))
	return buf.String()
}

func adminPage(title, active string, data interface{}) view.Page {
	return view.Page{
		Title:   title,
		Session: entity.AdminSession(entity.AdminIdentity{UID: "admin-1", Name: "Dewi", Email: "admin@pasaratsiri.id"}),
		CSRF:    "token-123",
		Active:  active,
		Nav:     view.Nav(),
		Data:    data,
	}
}

func TestRenderLanding(t *testing.T) {
	r := newRenderer(t)

	html := render(t, r, "landing", view.Page{
		Title: "Beranda",
		Data:  view.Landing{Stats: entity.UserStats{Total: 1200, Petani: 800}},
	})

	assert.Contains(t, html, "<title>Beranda | Pasar Atsiri</title>")
	assert.Contains(t, html, "1.200")
	assert.Contains(t, html, "Petani Terdaftar")
	assert.NotContains(t, html, "csrf-token")
}

func TestRenderLogin(t *testing.T) {
	r := newRenderer(t)

	html := render(t, r, "login", view.Page{
		Title: "Login",
		CSRF:  "token-123",
		Data:  view.LoginForm{Email: "a@b.id", Reason: usecase.NotAdminReason, Error: "Email atau password salah."},
	})

	assert.Contains(t, html, `name="_csrf" value="token-123"`)
	assert.Contains(t, html, `value="a@b.id"`)
	assert.Contains(t, html, usecase.NotAdminReason)
	assert.Contains(t, html, "Email atau password salah.")
}

func TestRenderLoadingRefreshes(t *testing.T) {
	r := newRenderer(t)

	html := render(t, r, "loading", view.Page{Title: "Memuat", Data: view.Loading{RefreshSeconds: 2}})

	assert.Contains(t, html, `<meta http-equiv="refresh" content="2">`)
}

func TestRenderError(t *testing.T) {
	r := newRenderer(t)

	html := render(t, r, "error", view.Page{Title: "Not Found", Data: view.ErrorPage{Status: 404, Message: "Halaman tidak ditemukan.", Back: "/admin"}})

	assert.Contains(t, html, "Halaman tidak ditemukan.")
	assert.Contains(t, html, `href="/admin"`)
}

func TestRenderDashboard(t *testing.T) {
	r := newRenderer(t)
	p := view.NewPresenter(time.UTC, storage.PassthroughLinker{})

	html := render(t, r, "dashboard", adminPage("Dashboard", view.NavDashboard, p.Dashboard(&usecase.DashboardStats{
		TotalRevenue:   2500000,
		MonthlyRevenue: []usecase.MonthlyRevenue{{Month: "Jan 2026", Revenue: 2500000}},
		LatestOrders:   []*entity.Order{{ID: "o-1", UserName: "Agus", TotalPrice: 2500000, Status: entity.OrderCompleted}},
	})))

	assert.Contains(t, html, "Rp 2.500.000")
	assert.Contains(t, html, "Jan 2026")
	assert.Contains(t, html, "width: 100%")
	assert.Contains(t, html, "Tidak ada sertifikasi pending.")
	assert.Contains(t, html, `class="nav-item active" href="/admin"`)
	assert.Contains(t, html, "admin@pasaratsiri.id")
}

func TestRenderResourceShell(t *testing.T) {
	r := newRenderer(t)

	html := render(t, r, "resource", adminPage("Pesanan", usecase.ResourceOrders, view.ResourcePage{
		Key:     usecase.ResourceOrders,
		Title:   "Manajemen Pesanan",
		Columns: []string{"ID", "Pengguna", "Aksi"},
		Socket:  "/admin/ws/orders",
	}))

	assert.Contains(t, html, `data-socket="/admin/ws/orders"`)
	assert.Contains(t, html, `<td colspan="3">`)
	assert.Contains(t, html, "/static/app.js")
	assert.NotContains(t, html, "price-form")
}

func TestRenderUnknownPage(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing", view.Page{}, nil))
}

func TestRowsFragment(t *testing.T) {
	r := newRenderer(t)
	p := view.NewPresenter(time.UTC, storage.PassthroughLinker{})
	res, _ := usecase.LookupResource(usecase.ResourceCertifications)

	html, err := r.Fragment("rows", view.Rows{
		Key:     res.Key,
		Columns: len(p.Columns(res)),
		Rows:    p.Rows(res, []usecase.Record{&entity.Certification{ID: "c-1", Email: "sari@example.com", Status: entity.StatusPending}}),
	})
	require.NoError(t, err)

	assert.Contains(t, html, `<tr data-id="c-1">`)
	assert.Contains(t, html, `data-status="Disetujui"`)
	assert.Contains(t, html, "badge-warning")

	empty, err := r.Fragment("rows", view.Rows{Key: res.Key, Columns: 5})
	require.NoError(t, err)
	assert.Contains(t, empty, `<td colspan="5">Belum ada data.</td>`)
}

func TestDetailFragment(t *testing.T) {
	r := newRenderer(t)
	p := view.NewPresenter(time.UTC, storage.PassthroughLinker{})
	res, _ := usecase.LookupResource(usecase.ResourceProducts)
	product := &entity.Product{ID: "p-1", Name: "Minyak Nilam"}

	loading, err := r.Fragment("detail", p.Detail(context.Background(), res, product, nil, true))
	require.NoError(t, err)
	assert.Contains(t, loading, "spinner")

	html, err := r.Fragment("detail", p.Detail(context.Background(), res, product, []usecase.Record{
		&entity.Review{ID: "r-1", UserName: "Agus", Rating: 4, Comment: "Harum"},
	}, false))
	require.NoError(t, err)
	assert.Contains(t, html, "Ulasan untuk: Minyak Nilam")
	assert.Contains(t, html, "★★★★☆")
	assert.Contains(t, html, "Harum")

	empty, err := r.Fragment("detail", p.Detail(context.Background(), res, product, nil, false))
	require.NoError(t, err)
	assert.Contains(t, empty, "Belum ada ulasan untuk produk ini.")
}

package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/infrastructure/storage"
	"pasaratsiri/internal/usecase"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func resource(t *testing.T, key string) *usecase.Resource {
	t.Helper()
	r, ok := usecase.LookupResource(key)
	require.True(t, ok)
	return r
}

type prefixLinker struct{}

func (prefixLinker) Link(_ context.Context, ref string) string {
	return "signed:" + ref
}

func TestUserRowFallbacks(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})
	r := resource(t, usecase.ResourceUsers)

	rows := p.Rows(r, []usecase.Record{&entity.User{ID: "u1", Email: "x@example.com"}})

	require.Len(t, rows, 1)
	assert.Equal(t, "u1", rows[0].ID)
	assert.Equal(t, "U", rows[0].Cells[0].Initial)
	assert.Equal(t, "-", rows[0].Cells[0].Text)
	assert.Equal(t, "-", rows[0].Cells[3].Text)
	require.Len(t, rows[0].Actions, 1)
	assert.Equal(t, ActionDelete, rows[0].Actions[0].Kind)
	assert.Equal(t, "Yakin ingin menghapus pengguna ini?", rows[0].Actions[0].Confirm)
	assert.Len(t, p.Columns(r), 5)
}

func TestOrderRow(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})
	created := time.Date(2026, time.January, 5, 3, 0, 0, 0, time.UTC)

	rows := p.Rows(resource(t, usecase.ResourceOrders), []usecase.Record{
		&entity.Order{ID: "o1", CreatedAt: created, TotalPrice: 1250000, Status: entity.OrderCompleted},
	})

	cells := rows[0].Cells
	assert.Equal(t, "o1", cells[0].Text)
	assert.Equal(t, "N/A", cells[1].Text)
	assert.Equal(t, "5/1/2026, 10.00.00", cells[2].Text)
	assert.Equal(t, "Rp 1.250.000", cells[3].Text)
	assert.Equal(t, ActionDetail, rows[0].Actions[0].Kind)
}

func TestStatusActionsOnlyForPending(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})
	r := resource(t, usecase.ResourceCertifications)

	rows := p.Rows(r, []usecase.Record{
		&entity.Certification{ID: "c1", Status: entity.StatusPending},
		&entity.Certification{ID: "c2", Status: entity.StatusApproved},
	})

	kinds := func(row Row) []string {
		var out []string
		for _, a := range row.Actions {
			out = append(out, a.Kind+":"+a.Status)
		}
		return out
	}
	assert.Equal(t, []string{"detail:", "status:Disetujui", "status:Ditolak", "delete:"}, kinds(rows[0]))
	assert.Equal(t, []string{"detail:", "delete:"}, kinds(rows[1]))
	assert.Equal(t, "warning", rows[0].Cells[2].Tone)
	assert.Equal(t, "success", rows[1].Cells[2].Tone)
}

func TestTrainingParticipants(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})

	rows := p.Rows(resource(t, usecase.ResourceTrainings), []usecase.Record{
		&entity.Training{ID: "t1", Description: "Penyulingan", CurrentParticipants: 3, MaxParticipants: 20},
	})

	assert.Equal(t, "3 / 20", rows[0].Cells[3].Text)
	assert.Equal(t, "-", rows[0].Cells[2].Text)
}

func TestMarketPriceRowHasEditAction(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})

	rows := p.Rows(resource(t, usecase.ResourceMarketPrices), []usecase.Record{
		&entity.MarketPrice{ID: "minyak_nilam", CommodityName: "Minyak Nilam", CurrentPrice: 120, PreviousPrice: 100, UpdatedBy: entity.MarketPriceActor},
	})

	assert.Equal(t, "Rp 120", rows[0].Cells[1].Text)
	assert.Equal(t, "Rp 100", rows[0].Cells[2].Text)
	assert.Equal(t, ActionEdit, rows[0].Actions[0].Kind)
	assert.Equal(t, "Minyak Nilam", rows[0].Actions[0].Name)
}

func TestProductDetailReviews(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})
	r := resource(t, usecase.ResourceProducts)
	product := &entity.Product{ID: "p1", Name: "Nilam"}

	loading := p.Detail(context.Background(), r, product, nil, true)
	assert.True(t, loading.Loading)
	assert.Equal(t, "Ulasan untuk: Nilam", loading.Title)

	d := p.Detail(context.Background(), r, product, []usecase.Record{
		&entity.Review{ID: "r1", Rating: 4, Comment: "Bagus"},
	}, false)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "Anonim", d.Items[0].Title)
	assert.Equal(t, 4.0, d.Items[0].Rating)
	assert.Equal(t, "Belum ada ulasan untuk produk ini.", d.EmptyText)
}

func TestOrderDetailItems(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})

	d := p.Detail(context.Background(), resource(t, usecase.ResourceOrders), &entity.Order{
		ID: "o1", UserName: "Agus",
		Items: []entity.OrderItem{{ProductName: "Nilam", Quantity: 2, Price: 320000}},
	}, nil, false)

	require.NotNil(t, d.Table)
	assert.Equal(t, "Item Pesanan", d.Table.Title)
	assert.Equal(t, [][]string{{"Nilam", "2", "Rp 320.000"}}, d.Table.Rows)
	assert.Equal(t, "Agus", d.Fields[0].Value)
	assert.Equal(t, "-", d.Fields[2].Value)
}

func TestCertificationDocumentLinks(t *testing.T) {
	p := NewPresenter(jakarta, prefixLinker{})
	r := resource(t, usecase.ResourceCertifications)

	d := p.Detail(context.Background(), r, &entity.Certification{
		ID: "c1", Documents: map[string]string{"NPWP": "gs://bucket/npwp.pdf"},
	}, nil, false)

	docs := d.Fields[len(d.Fields)-1]
	assert.Equal(t, "Dokumen Pendukung", docs.Label)
	assert.Equal(t, []Link{{Label: "Lihat Dokumen", URL: "signed:gs://bucket/npwp.pdf"}}, docs.Links)

	empty := p.Detail(context.Background(), r, &entity.Certification{ID: "c2"}, nil, false)
	assert.Equal(t, "-", empty.Fields[len(empty.Fields)-1].Value)
}

func TestSubsidyFarmArea(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})
	r := resource(t, usecase.ResourceSubsidies)

	d := p.Detail(context.Background(), r, &entity.Subsidy{ID: "s1", FarmArea: "2 ha"}, nil, false)
	assert.Equal(t, "2 ha", d.Fields[6].Value)

	d = p.Detail(context.Background(), r, &entity.Subsidy{ID: "s2"}, nil, false)
	assert.Equal(t, "-", d.Fields[6].Value)
	assert.Equal(t, "-", d.Fields[3].Value)
}

func TestTrainingAndPostDetail(t *testing.T) {
	p := NewPresenter(jakarta, storage.PassthroughLinker{})

	training := p.Detail(context.Background(), resource(t, usecase.ResourceTrainings),
		&entity.Training{ID: "t1", Organizer: "Dinas"},
		[]usecase.Record{&entity.Registrant{ID: "r1", UserName: "Sari"}}, false)
	assert.Equal(t, "Daftar Peserta (1)", training.ItemsTitle)
	assert.Equal(t, "Mendaftar pada: -", training.Items[0].Subtitle)

	post := p.Detail(context.Background(), resource(t, usecase.ResourcePosts),
		&entity.Post{ID: "p1", Category: "Harga", AuthorName: "Budi", Content: "Harga naik"}, nil, false)
	assert.Equal(t, "Harga", post.Title)
	assert.Equal(t, "Ditulis oleh: Budi", post.Subtitle)
	assert.Empty(t, post.Items)
	assert.Equal(t, "Belum ada komentar.", post.EmptyText)
}

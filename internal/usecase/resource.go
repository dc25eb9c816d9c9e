package usecase

import (
	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/logger"
)

// Resource keys double as the admin route segments.
const (
	ResourceUsers          = "users"
	ResourceProducts       = "products"
	ResourceOrders         = "orders"
	ResourceCertifications = "certifications"
	ResourceSubsidies      = "subsidies"
	ResourceTrainings      = "trainings"
	ResourcePosts          = "posts"
	ResourceMarketPrices   = "market-prices"
)

// Resource describes one admin list view over a collection.
type Resource struct {
	Key        string
	Collection string
	Title      string
	NavLabel   string

	// Nested is the sub-collection the detail modal subscribes to, if any.
	Nested    string
	HasDetail bool
	HasStatus bool

	ConfirmDelete string
	LoadError     string
	DeleteError   string

	decode       func([]repository.Document) []Record
	decodeNested func([]repository.Document) []Record
}

// Record is one decoded document: an *entity.User, *entity.Product and so on.
type Record interface{}

func (r *Resource) Decode(docs []repository.Document) ([]Record, map[string]Record) {
	records := r.decode(docs)
	byID := make(map[string]Record, len(records))
	for _, record := range records {
		byID[RecordID(record)] = record
	}
	return records, byID
}

func (r *Resource) DecodeNested(docs []repository.Document) []Record {
	if r.decodeNested == nil {
		return nil
	}
	return r.decodeNested(docs)
}

// NestedPath is the collection path of the sub-collection of parentID.
func (r *Resource) NestedPath(parentID string) string {
	return entity.NestedPath(r.Collection, parentID, r.Nested)
}

var resources = []*Resource{
	{
		Key: ResourceUsers, Collection: entity.CollectionUsers,
		Title: "Daftar Pengguna", NavLabel: "Users",
		ConfirmDelete: "Yakin ingin menghapus pengguna ini?",
		LoadError:     "Gagal memuat data pengguna.",
		DeleteError:   "Gagal menghapus pengguna.",
		decode:        decodeAs(func(u *entity.User, id string) { u.ID = id }),
	},
	{
		Key: ResourceProducts, Collection: entity.CollectionProducts,
		Title: "Manajemen Produk", NavLabel: "Products",
		Nested: entity.SubCollectionReviews, HasDetail: true,
		ConfirmDelete: "Apakah Anda yakin ingin menghapus produk ini?",
		LoadError:     "Gagal memuat data produk.",
		DeleteError:   "Gagal menghapus produk.",
		decode:        decodeAs(func(p *entity.Product, id string) { p.ID = id }),
		decodeNested:  decodeAs(func(r *entity.Review, id string) { r.ID = id }),
	},
	{
		Key: ResourceOrders, Collection: entity.CollectionOrders,
		Title: "Manajemen Pesanan", NavLabel: "Orders",
		HasDetail:     true,
		ConfirmDelete: "Apakah Anda yakin ingin menghapus pesanan ini?",
		LoadError:     "Gagal memuat data pesanan.",
		DeleteError:   "Gagal menghapus pesanan.",
		decode:        decodeAs(func(o *entity.Order, id string) { o.ID = id }),
	},
	{
		Key: ResourceCertifications, Collection: entity.CollectionCertifications,
		Title: "Manajemen Sertifikasi", NavLabel: "Certifications",
		HasDetail: true, HasStatus: true,
		ConfirmDelete: "Apakah Anda yakin ingin menghapus sertifikasi ini?",
		LoadError:     "Gagal memuat data sertifikasi.",
		DeleteError:   "Gagal menghapus sertifikasi.",
		decode:        decodeAs(func(c *entity.Certification, id string) { c.ID = id }),
	},
	{
		Key: ResourceSubsidies, Collection: entity.CollectionSubsidies,
		Title: "Manajemen Subsidi", NavLabel: "Subsidies",
		HasDetail: true, HasStatus: true,
		ConfirmDelete: "Apakah Anda yakin ingin menghapus pengajuan subsidi ini?",
		LoadError:     "Gagal memuat data subsidi.",
		DeleteError:   "Gagal menghapus pengajuan subsidi.",
		decode:        decodeAs(func(s *entity.Subsidy, id string) { s.ID = id }),
	},
	{
		Key: ResourceTrainings, Collection: entity.CollectionTrainings,
		Title: "Manajemen Pelatihan", NavLabel: "Trainings",
		Nested: entity.SubCollectionRegistrants, HasDetail: true,
		ConfirmDelete: "Apakah Anda yakin ingin menghapus pelatihan ini?",
		LoadError:     "Gagal memuat data pelatihan.",
		DeleteError:   "Gagal menghapus pelatihan.",
		decode:        decodeAs(func(t *entity.Training, id string) { t.ID = id }),
		decodeNested:  decodeAs(func(r *entity.Registrant, id string) { r.ID = id }),
	},
	{
		Key: ResourcePosts, Collection: entity.CollectionPosts,
		Title: "Manajemen Postingan Forum", NavLabel: "Posts",
		Nested: entity.SubCollectionComments, HasDetail: true,
		ConfirmDelete: "Apakah Anda yakin ingin menghapus post ini?",
		LoadError:     "Gagal memuat data postingan.",
		DeleteError:   "Gagal menghapus post.",
		decode:        decodeAs(func(p *entity.Post, id string) { p.ID = id }),
		decodeNested:  decodeAs(func(c *entity.Comment, id string) { c.ID = id }),
	},
	{
		Key: ResourceMarketPrices, Collection: entity.CollectionMarketPrices,
		Title: "Manajemen Harga Pasar", NavLabel: "Market Prices",
		ConfirmDelete: "Apakah Anda yakin ingin menghapus data harga ini?",
		LoadError:     "Gagal memuat data harga pasar.",
		DeleteError:   "Gagal menghapus data harga.",
		decode:        decodeAs(func(m *entity.MarketPrice, id string) { m.ID = id }),
	},
}

var resourcesByKey = func() map[string]*Resource {
	m := make(map[string]*Resource, len(resources))
	for _, r := range resources {
		m[r.Key] = r
	}
	return m
}()

// LookupResource finds a resource by its route key.
func LookupResource(key string) (*Resource, bool) {
	r, ok := resourcesByKey[key]
	return r, ok
}

// Resources lists every resource in sidebar order.
func Resources() []*Resource {
	out := make([]*Resource, len(resources))
	copy(out, resources)
	return out
}

// RecordID returns the document key of a decoded record.
func RecordID(record Record) string {
	switch r := record.(type) {
	case *entity.User:
		return r.ID
	case *entity.Product:
		return r.ID
	case *entity.Review:
		return r.ID
	case *entity.Order:
		return r.ID
	case *entity.Certification:
		return r.ID
	case *entity.Subsidy:
		return r.ID
	case *entity.Training:
		return r.ID
	case *entity.Registrant:
		return r.ID
	case *entity.Post:
		return r.ID
	case *entity.Comment:
		return r.ID
	case *entity.MarketPrice:
		return r.ID
	}
	return ""
}

func decodeAs[T any](setID func(*T, string)) func([]repository.Document) []Record {
	return func(docs []repository.Document) []Record {
		items := repository.Decode(docs, setID, func(id string, err error) {
			logger.Warn("malformed document %s: %v", id, err)
		})
		records := make([]Record, len(items))
		for i, item := range items {
			records[i] = item
		}
		return records
	}
}

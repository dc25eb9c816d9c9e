package memstore

import (
	"context"
	"time"

	"pasaratsiri/internal/domain/entity"
)

// Seed fills the store with a small demo data set for local development.
// adminUID becomes the only admin user.
func Seed(ctx context.Context, s *Store, adminUID, adminEmail string, now time.Time) error {
	day := 24 * time.Hour
	month := func(back int) time.Time { return now.AddDate(0, -back, 0) }

	users := map[string]map[string]interface{}{
		adminUID: {"name": "Admin Pasar Atsiri", "email": adminEmail, "role": entity.RoleAdmin},
		"u-sari": {"name": "Sari Wulandari", "email": "sari@example.com", "role": entity.RoleFarmer, "phoneNumber": "081234567890"},
		"u-budi": {"name": "Budi Santoso", "email": "budi@example.com", "role": entity.RoleDistiller, "phoneNumber": "081298765432"},
		"u-agus": {"name": "Agus Pratama", "email": "agus@example.com", "role": entity.RoleBuyer},
	}
	for id, fields := range users {
		if err := s.Set(ctx, entity.CollectionUsers, id, fields, false); err != nil {
			return err
		}
	}

	products := map[string]map[string]interface{}{
		"p-nilam": {"name": "Minyak Nilam Aceh", "category": "Minyak Atsiri", "price": 850000.0, "sellerId": "u-budi"},
		"p-serai": {"name": "Minyak Serai Wangi", "category": "Minyak Atsiri", "price": 320000.0, "sellerId": "u-budi"},
		"p-bibit": {"name": "Bibit Nilam", "category": "Bibit", "price": 2500.0, "sellerId": "u-sari"},
		"p-alat":  {"name": "Ketel Suling Mini", "price": 4750000.0},
	}
	for id, fields := range products {
		if err := s.Set(ctx, entity.CollectionProducts, id, fields, false); err != nil {
			return err
		}
	}
	if _, err := s.Add(ctx, entity.NestedPath(entity.CollectionProducts, "p-nilam", entity.SubCollectionReviews), map[string]interface{}{
		"userName": "Agus Pratama", "rating": 5.0, "comment": "Aroma kuat, pengiriman cepat.", "createdAt": now.Add(-2 * day),
	}); err != nil {
		return err
	}

	orders := []map[string]interface{}{
		{"userName": "Agus Pratama", "createdAt": month(2), "totalPrice": 850000.0, "status": entity.OrderCompleted,
			"shippingAddress": "Jl. Merdeka 10, Bandung", "paymentMethod": "Transfer Bank",
			"items": []interface{}{map[string]interface{}{"productName": "Minyak Nilam Aceh", "quantity": 1, "price": 850000.0}}},
		{"userName": "Agus Pratama", "createdAt": month(1), "totalPrice": 640000.0, "status": entity.OrderCompleted,
			"items": []interface{}{map[string]interface{}{"productName": "Minyak Serai Wangi", "quantity": 2, "price": 320000.0}}},
		{"userName": "Sari Wulandari", "createdAt": now.Add(-day), "totalPrice": 4750000.0, "status": entity.OrderProcessing},
		{"userName": "Budi Santoso", "createdAt": now.Add(-3 * day), "totalPrice": 25000.0, "status": entity.OrderCancelled},
	}
	for _, fields := range orders {
		if _, err := s.Add(ctx, entity.CollectionOrders, fields); err != nil {
			return err
		}
	}

	if _, err := s.Add(ctx, entity.CollectionCertifications, map[string]interface{}{
		"email": "budi@example.com", "applicantType": "Penyuling", "certificationType": "SNI Minyak Nilam",
		"location": "Aceh Jaya", "status": entity.StatusPending, "submittedDate": now.Add(-4 * day),
		"description": "Pengajuan sertifikasi mutu minyak nilam.",
		"documents":   map[string]interface{}{"NPWP": "https://example.com/npwp.pdf"},
	}); err != nil {
		return err
	}

	if _, err := s.Add(ctx, entity.CollectionSubsidies, map[string]interface{}{
		"userName": "Sari Wulandari", "applicantType": "Petani", "subsidyType": "Bibit",
		"subsidyAmount": 5000000.0, "status": entity.StatusPending, "submittedDate": now.Add(-5 * day),
		"farmArea": "2 Ha", "phoneNumber": "081234567890", "description": "Peremajaan kebun nilam.",
	}); err != nil {
		return err
	}

	if err := s.Set(ctx, entity.CollectionTrainings, "t-suling", map[string]interface{}{
		"description": "Pelatihan Penyulingan Efisien", "category": "Produksi", "date": now.Add(7 * day),
		"organizer": "Dinas Pertanian", "location": "Banda Aceh", "currentParticipants": 1, "maxParticipants": 30,
	}, false); err != nil {
		return err
	}
	if _, err := s.Add(ctx, entity.NestedPath(entity.CollectionTrainings, "t-suling", entity.SubCollectionRegistrants), map[string]interface{}{
		"userName": "Sari Wulandari", "createdAt": now.Add(-day),
	}); err != nil {
		return err
	}

	if err := s.Set(ctx, entity.CollectionPosts, "post-harga", map[string]interface{}{
		"authorName": "Budi Santoso", "category": "Diskusi", "content": "Harga nilam minggu ini naik, ada yang merasakan?",
		"commentCount": 1, "createdAt": now.Add(-2 * day),
	}, false); err != nil {
		return err
	}
	if _, err := s.Add(ctx, entity.NestedPath(entity.CollectionPosts, "post-harga", entity.SubCollectionComments), map[string]interface{}{
		"authorName": "Sari Wulandari", "content": "Di Aceh Jaya juga naik.", "createdAt": now.Add(-day),
	}); err != nil {
		return err
	}

	return s.Set(ctx, entity.CollectionMarketPrices, entity.CommodityKey("Minyak Nilam"), map[string]interface{}{
		"commodityName": "Minyak Nilam", "currentPrice": 850000.0, "previousPrice": 800000.0,
		"lastUpdate": now.Add(-day), "updatedBy": entity.MarketPriceActor,
	}, false)
}

package entity

import "time"

const DefaultCategory = "Lainnya"

type Product struct {
	ID       string  `json:"id" firestore:"-"`
	Name     string  `json:"name" firestore:"name,omitempty"`
	Category string  `json:"category" firestore:"category,omitempty"`
	Price    float64 `json:"price" firestore:"price,omitempty"`
	ImageURL string  `json:"image_url" firestore:"imageUrl,omitempty"`
	SellerID string  `json:"seller_id,omitempty" firestore:"sellerId,omitempty"`
}

// CategoryOrDefault groups uncategorized products under "Lainnya".
func (p *Product) CategoryOrDefault() string {
	if p.Category == "" {
		return DefaultCategory
	}
	return p.Category
}

// Review lives in products/{id}/reviews.
type Review struct {
	ID        string    `json:"id" firestore:"-"`
	UserName  string    `json:"user_name" firestore:"userName,omitempty"`
	Rating    float64   `json:"rating" firestore:"rating,omitempty"`
	Comment   string    `json:"comment" firestore:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,omitempty"`
}

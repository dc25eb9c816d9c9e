package entity

import "time"

const (
	OrderAwaitingPayment = "Menunggu Pembayaran"
	OrderProcessing      = "Diproses"
	OrderShipped         = "Dikirim"
	OrderCompleted       = "Selesai"
	OrderCancelled       = "Dibatalkan"
)

type OrderItem struct {
	ProductName string  `json:"product_name" firestore:"productName,omitempty"`
	Quantity    float64 `json:"quantity" firestore:"quantity,omitempty"`
	Price       float64 `json:"price" firestore:"price,omitempty"`
}

type Order struct {
	ID              string      `json:"id" firestore:"-"`
	UserName        string      `json:"user_name" firestore:"userName,omitempty"`
	CreatedAt       time.Time   `json:"created_at" firestore:"createdAt,omitempty"`
	TotalPrice      float64     `json:"total_price" firestore:"totalPrice,omitempty"`
	Status          string      `json:"status" firestore:"status,omitempty"`
	ShippingAddress string      `json:"shipping_address" firestore:"shippingAddress,omitempty"`
	PaymentMethod   string      `json:"payment_method" firestore:"paymentMethod,omitempty"`
	Items           []OrderItem `json:"items" firestore:"items,omitempty"`
}

func (o *Order) IsCompleted() bool {
	return o.Status == OrderCompleted
}

package entity

import (
	"regexp"
	"strings"
	"time"
)

// MarketPriceActor is recorded as updatedBy for every save from the dashboard.
const MarketPriceActor = "Admin Dashboard"

type MarketPrice struct {
	ID            string    `json:"id" firestore:"-"`
	CommodityName string    `json:"commodity_name" firestore:"commodityName,omitempty"`
	CurrentPrice  float64   `json:"current_price" firestore:"currentPrice,omitempty"`
	PreviousPrice float64   `json:"previous_price" firestore:"previousPrice,omitempty"`
	LastUpdate    time.Time `json:"last_update" firestore:"lastUpdate,omitempty"`
	UpdatedBy     string    `json:"updated_by" firestore:"updatedBy,omitempty"`
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonKeyChars   = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)
)

// CommodityKey derives the market_prices document key from a commodity
// name: "Minyak Nilam" becomes "minyak_nilam".
func CommodityKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = whitespaceRun.ReplaceAllString(key, "_")
	return nonKeyChars.ReplaceAllString(key, "")
}

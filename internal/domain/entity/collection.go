package entity

// Firestore collection names.
const (
	CollectionUsers          = "users"
	CollectionProducts       = "products"
	CollectionOrders         = "orders"
	CollectionCertifications = "certifications"
	CollectionSubsidies      = "subsidies"
	CollectionTrainings      = "trainings"
	CollectionPosts          = "posts"
	CollectionMarketPrices   = "market_prices"
	CollectionMetadata       = "metadata"

	SubCollectionReviews     = "reviews"
	SubCollectionRegistrants = "registrants"
	SubCollectionComments    = "comments"

	DocUserStats = "userStats"
)

// NestedPath returns the path of a sub-collection owned by one record.
func NestedPath(collection, parentID, sub string) string {
	return collection + "/" + parentID + "/" + sub
}

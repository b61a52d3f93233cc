package domain

type Host struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

// Offer is the summary representation used by list views (catalog, city
// filter, favorites, nearby).
type Offer struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Price        int      `json:"price"`
	City         City     `json:"city"`
	Location     Location `json:"location"`
	IsFavorite   bool     `json:"isFavorite"`
	IsPremium    bool     `json:"isPremium"`
	Rating       float64  `json:"rating"`
	PreviewImage string   `json:"previewImage"`
}

// OfferDetail is the full representation served for a single offer.
type OfferDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Price       int      `json:"price"`
	City        City     `json:"city"`
	Location    Location `json:"location"`
	IsFavorite  bool     `json:"isFavorite"`
	IsPremium   bool     `json:"isPremium"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Bedrooms    int      `json:"bedrooms"`
	Goods       []string `json:"goods"`
	Host        Host     `json:"host"`
	Images      []string `json:"images"`
	MaxAdults   int      `json:"maxAdults"`
}

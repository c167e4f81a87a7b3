package ebay

// ItemSummary represents a single item from the eBay Browse API search response.
// Only the fields the trend aggregation consumes are mapped.
type ItemSummary struct {
	ItemID     string         `json:"itemId"`
	Title      string         `json:"title"`
	Price      ItemPrice      `json:"price"`
	ItemWebURL string         `json:"itemWebUrl"`
	Image      *ItemImage     `json:"image,omitempty"`
	Condition  string         `json:"condition"`
	Categories []ItemCategory `json:"categories,omitempty"`
}

// ItemPrice holds eBay price information. The API returns the value as a
// decimal string.
type ItemPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemImage holds eBay image information.
type ItemImage struct {
	ImageURL string `json:"imageUrl"`
}

// ItemCategory holds eBay category information.
type ItemCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

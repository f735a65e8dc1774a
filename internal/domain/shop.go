package domain

// ShopItem is a static catalog entry purchasable with coins
type ShopItem struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Cost        int    `json:"cost" yaml:"cost"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

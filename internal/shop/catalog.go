package shop

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Items []domain.ShopItem `yaml:"items"`
}

// Catalog is the static, read-only list of purchasable items
type Catalog struct {
	items []domain.ShopItem
	byID  map[string]domain.ShopItem
}

// DefaultCatalog parses the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog from path, or the embedded default when path is empty
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyCatalog)
	}

	c := &Catalog{byID: make(map[string]domain.ShopItem, len(f.Items))}
	names := make(map[string]struct{}, len(f.Items))
	for _, item := range f.Items {
		if item.ID == "" || item.Name == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgItemMissingFields)
		}
		if item.Cost <= 0 {
			return nil, fmt.Errorf("%w: item %q cost must be positive", domain.ErrInvalidInput, item.ID)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %q", domain.ErrInvalidInput, item.ID)
		}
		// Names appear in ledger descriptions, which purchase replays are checked against
		if _, dup := names[item.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate item name %q", domain.ErrInvalidInput, item.Name)
		}
		names[item.Name] = struct{}{}
		c.byID[item.ID] = item
		c.items = append(c.items, item)
	}
	sort.SliceStable(c.items, func(i, j int) bool { return c.items[i].Cost < c.items[j].Cost })
	return c, nil
}

// Items returns the catalog ordered by cost ascending
func (c *Catalog) Items() []domain.ShopItem {
	out := make([]domain.ShopItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an item by id
func (c *Catalog) Get(id string) (domain.ShopItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return domain.ShopItem{}, fmt.Errorf("%w: %q", domain.ErrShopItemNotFound, id)
	}
	return item, nil
}

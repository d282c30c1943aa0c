// Package seed reads menu seed files and turns them into repository snapshots.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_menu.yaml
var defaultMenu []byte

// File is the on-disk seed format. Items are nested under their category so
// a seed file never has to spell out ids.
type File struct {
	Settings   SettingsEntry   `yaml:"settings"`
	Admins     []AdminEntry    `yaml:"admins"`
	Categories []CategoryEntry `yaml:"categories"`
}

type SettingsEntry struct {
	RestaurantName string          `yaml:"restaurant_name"`
	CurrencySymbol string          `yaml:"currency_symbol"`
	LBPRate        decimal.Decimal `yaml:"lbp_rate"`
}

type AdminEntry struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type CategoryEntry struct {
	Name   string      `yaml:"name"`
	NameAr string      `yaml:"name_ar"`
	Order  int         `yaml:"order"`
	Items  []ItemEntry `yaml:"items"`
}

type ItemEntry struct {
	Name          string          `yaml:"name"`
	NameAr        string          `yaml:"name_ar"`
	Description   string          `yaml:"description"`
	DescriptionAr string          `yaml:"description_ar"`
	Price         decimal.Decimal `yaml:"price"`
	Currency      string          `yaml:"currency"` // USD when empty
	ImageURL      string          `yaml:"image_url"`
	Unavailable   bool            `yaml:"unavailable"`
}

// Parse decodes a seed file. Unknown keys are rejected so typos do not
// silently drop data.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	return &f, nil
}

// LoadFile reads and parses the seed file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in Lava Resto menu.
func Default() (*File, error) {
	return Parse(defaultMenu)
}

// Snapshot assigns ids and converts the file into a MenuSnapshot. Missing
// settings fall back to the domain defaults.
func (f *File) Snapshot() (portsrepo.MenuSnapshot, error) {
	settings := domain.DefaultSettings(f.Settings.LBPRate)
	if name := strings.TrimSpace(f.Settings.RestaurantName); name != "" {
		settings.RestaurantName = name
	}
	if symbol := strings.TrimSpace(f.Settings.CurrencySymbol); symbol != "" {
		settings.CurrencySymbol = symbol
	}

	snapshot := portsrepo.MenuSnapshot{Settings: settings}

	for _, a := range f.Admins {
		snapshot.Admins = append(snapshot.Admins, domain.Admin{
			AdminID:  uuid.NewString(),
			Username: strings.TrimSpace(a.Username),
			Password: strings.TrimSpace(a.Password),
		})
	}

	for _, c := range f.Categories {
		category := domain.Category{
			CategoryID: uuid.NewString(),
			Name:       strings.TrimSpace(c.Name),
			NameAr:     strings.TrimSpace(c.NameAr),
			Order:      c.Order,
		}
		if category.Name == "" {
			return portsrepo.MenuSnapshot{}, fmt.Errorf("category with order %d has no name", c.Order)
		}
		if category.NameAr == "" {
			category.NameAr = category.Name
		}
		snapshot.Categories = append(snapshot.Categories, category)

		for i, it := range c.Items {
			currency := domain.USD
			if it.Currency != "" {
				parsed, ok := domain.ParseCurrency(it.Currency)
				if !ok {
					return portsrepo.MenuSnapshot{}, fmt.Errorf("item %q in %q: unsupported currency %q", it.Name, category.Name, it.Currency)
				}
				currency = parsed
			}
			item := domain.MenuItem{
				ItemID:        uuid.NewString(),
				CategoryID:    category.CategoryID,
				Name:          strings.TrimSpace(it.Name),
				NameAr:        strings.TrimSpace(it.NameAr),
				Description:   it.Description,
				DescriptionAr: it.DescriptionAr,
				Price:         it.Price,
				PriceCurrency: currency,
				ImageURL:      it.ImageURL,
				IsAvailable:   !it.Unavailable,
				Order:         i + 1,
			}
			if item.NameAr == "" {
				item.NameAr = item.Name
			}
			snapshot.Items = append(snapshot.Items, item)
		}
	}

	return snapshot, nil
}

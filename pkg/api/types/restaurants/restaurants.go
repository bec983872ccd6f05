package restaurants

import (
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/money"
	"github.com/opst/foodfab/pkg/utils/rfctime"
)

type Detail struct {
	Id          ids.ID           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	CuisineType string           `json:"cuisineType,omitempty"`
	Address     string           `json:"address,omitempty"`
	PhoneNumber string           `json:"phoneNumber,omitempty"`
	Rating      float64          `json:"rating"`
	ImageUrl    string           `json:"imageUrl,omitempty"`
	CreatedAt   *rfctime.RFC3339 `json:"createdAt,omitempty"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.Description == o.Description &&
		d.CuisineType == o.CuisineType &&
		d.Address == o.Address &&
		d.PhoneNumber == o.PhoneNumber &&
		d.Rating == o.Rating &&
		d.ImageUrl == o.ImageUrl &&
		rfctime.PEqual(d.CreatedAt, o.CreatedAt)
}

// Spec is a restaurant to be registered or updated.
//
// It is read from yaml files by the command line.
type Spec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CuisineType string `json:"cuisineType,omitempty" yaml:"cuisineType,omitempty"`
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
	ImageUrl    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

type MenuItem struct {
	Id           ids.ID       `json:"id"`
	RestaurantId ids.ID       `json:"restaurantId,omitempty"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Price        money.Amount `json:"price"`
	Category     string       `json:"category,omitempty"`
	IsAvailable  *bool        `json:"isAvailable,omitempty"`
}

func (m MenuItem) Equal(o MenuItem) bool {
	availEq := (m.IsAvailable == nil && o.IsAvailable == nil) ||
		(m.IsAvailable != nil && o.IsAvailable != nil && *m.IsAvailable == *o.IsAvailable)

	return m.Id == o.Id &&
		m.RestaurantId == o.RestaurantId &&
		m.Name == o.Name &&
		m.Description == o.Description &&
		m.Price.Equal(o.Price) &&
		m.Category == o.Category &&
		availEq
}

// Available reports the item can be ordered.
//
// Items without availability flag are available.
func (m MenuItem) Available() bool {
	return m.IsAvailable == nil || *m.IsAvailable
}

// MenuItemSpec is a menu item to be added to a restaurant.
type MenuItemSpec struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Price       money.Amount `json:"price" yaml:"price"`
	Category    string       `json:"category,omitempty" yaml:"category,omitempty"`
}

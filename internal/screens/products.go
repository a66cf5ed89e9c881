package screens

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/domain"
)

// ProductFromForm shapes validated product form values into a payload. The
// backend wants the full embedded category object, so the selected id is
// resolved against the categories companion collection; an unknown id is a
// form error.
func ProductFromForm(fc console.FormContext) (domain.Product, error) {
	var in struct {
		CategoryID  int64   `mapstructure:"categoryId"`
		Name        string  `mapstructure:"name"`
		Slug        string  `mapstructure:"slug"`
		Description string  `mapstructure:"description"`
		BasePrice   float64 `mapstructure:"basePrice"`
		Active      bool    `mapstructure:"active"`
	}
	if err := mapstructure.WeakDecode(fc.Values, &in); err != nil {
		return domain.Product{}, errors.Wrap(err, "decode product form")
	}

	categories, _ := fc.Companions["categories"].([]domain.Category)
	var category *domain.Category
	for i := range categories {
		if categories[i].ID != nil && *categories[i].ID == in.CategoryID {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return domain.Product{}, errors.New("Select a valid category")
	}

	slug := in.Slug
	if slug == "" {
		slug = domain.Slugify(in.Name)
	}
	return domain.Product{
		ID:          fc.EditingID,
		Category:    *category,
		Name:        in.Name,
		Slug:        optString(slug),
		Description: optString(in.Description),
		BasePrice:   in.BasePrice,
		Active:      in.Active,
	}, nil
}

// Products builds the product screen. It loads categories alongside the
// product list so the form can offer a category select.
func Products(
	client console.ResourceClient[domain.Product],
	categories interface {
		List(ctx context.Context) ([]domain.Category, error)
	},
	notifier *console.Notifier,
) *console.Screen[domain.Product] {
	cfg := console.Config[domain.Product]{
		Name:     "products",
		Singular: "product",
		PageSize: 10,
		Columns: []console.Column[domain.Product]{
			{Name: "id", Label: "ID", Value: func(p domain.Product) interface{} { return idOrZero(p.ID) }},
			{Name: "name", Label: "Name", Value: func(p domain.Product) interface{} { return p.Name }},
			{Name: "category", Label: "Category", Value: func(p domain.Product) interface{} { return p.CategoryName() }},
			{Name: "basePrice", Label: "Base price", Value: func(p domain.Product) interface{} { return p.BasePrice }},
			{Name: "active", Label: "Active", Value: func(p domain.Product) interface{} { return p.Active }},
		},
		Fields: []console.Field{
			{Name: "categoryId", Label: "Category ID", Kind: console.Number, Rules: "min=1"},
			{Name: "name", Label: "Name", Kind: console.Text, Rules: "required"},
			{Name: "slug", Label: "Slug", Kind: console.Text},
			{Name: "description", Label: "Description", Kind: console.Text},
			{Name: "basePrice", Label: "Base price", Kind: console.Decimal, Rules: "gte=0"},
			{Name: "active", Label: "Active", Kind: console.Bool, Default: true},
		},
		ID:    func(p domain.Product) *int64 { return p.ID },
		Build: ProductFromForm,
		Fill: func(p domain.Product) map[string]interface{} {
			return map[string]interface{}{
				"categoryId":  idOrZero(p.Category.ID),
				"name":        p.Name,
				"slug":        strOrEmpty(p.Slug),
				"description": strOrEmpty(p.Description),
				"basePrice":   p.BasePrice,
				"active":      p.Active,
			}
		},
		Companions: []console.Companion{
			{
				Name: "categories",
				Load: func(ctx context.Context) (interface{}, error) {
					rows, err := categories.List(ctx)
					if err != nil {
						return nil, err
					}
					return rows, nil
				},
			},
		},
	}
	return console.NewScreen(cfg, client, notifier)
}

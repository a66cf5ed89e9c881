package screens

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/domain"
)

// CategoryFromForm shapes validated category form values into a create/update
// payload. A blank slug is derived from the name; blank optionals are
// omitted; parentId 0 means no parent and is sent as null.
func CategoryFromForm(fc console.FormContext) (domain.Category, error) {
	var in struct {
		Name        string `mapstructure:"name"`
		Slug        string `mapstructure:"slug"`
		Description string `mapstructure:"description"`
		ParentID    int64  `mapstructure:"parentId"`
	}
	if err := mapstructure.WeakDecode(fc.Values, &in); err != nil {
		return domain.Category{}, errors.Wrap(err, "decode category form")
	}

	slug := in.Slug
	if slug == "" {
		slug = domain.Slugify(in.Name)
	}
	return domain.Category{
		ID:          fc.EditingID,
		ParentID:    optID(in.ParentID),
		Name:        in.Name,
		Slug:        optString(slug),
		Description: optString(in.Description),
	}, nil
}

// Categories builds the category screen.
func Categories(client console.ResourceClient[domain.Category], notifier *console.Notifier) *console.Screen[domain.Category] {
	cfg := console.Config[domain.Category]{
		Name:     "categories",
		Singular: "category",
		PageSize: 10,
		Columns: []console.Column[domain.Category]{
			{Name: "id", Label: "ID", Value: func(c domain.Category) interface{} { return idOrZero(c.ID) }},
			{Name: "name", Label: "Name", Value: func(c domain.Category) interface{} { return c.Name }},
			{Name: "slug", Label: "Slug", Value: func(c domain.Category) interface{} { return strOrEmpty(c.Slug) }},
			{Name: "parentId", Label: "Parent", Value: func(c domain.Category) interface{} { return idOrZero(c.ParentID) }},
			{Name: "description", Label: "Description", Value: func(c domain.Category) interface{} { return strOrEmpty(c.Description) }},
		},
		Fields: []console.Field{
			{Name: "name", Label: "Name", Kind: console.Text, Rules: "required"},
			{Name: "slug", Label: "Slug", Kind: console.Text},
			{Name: "description", Label: "Description", Kind: console.Text},
			{Name: "parentId", Label: "Parent category ID", Kind: console.Number, Rules: "gte=0"},
		},
		ID:    func(c domain.Category) *int64 { return c.ID },
		Build: CategoryFromForm,
		Fill: func(c domain.Category) map[string]interface{} {
			return map[string]interface{}{
				"name":        c.Name,
				"slug":        strOrEmpty(c.Slug),
				"description": strOrEmpty(c.Description),
				"parentId":    idOrZero(c.ParentID),
			}
		},
	}
	return console.NewScreen(cfg, client, notifier)
}

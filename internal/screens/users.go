package screens

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/domain"
)

// UserFromForm shapes validated user form values into a payload. On create a
// password is required; on edit a blank password is omitted from the payload
// entirely, which keeps the stored credential unchanged.
func UserFromForm(fc console.FormContext) (domain.User, error) {
	var in struct {
		Name         string `mapstructure:"name"`
		Email        string `mapstructure:"email"`
		PasswordHash string `mapstructure:"passwordHash"`
		Role         string `mapstructure:"role"`
		Phone        string `mapstructure:"phone"`
	}
	if err := mapstructure.WeakDecode(fc.Values, &in); err != nil {
		return domain.User{}, errors.Wrap(err, "decode user form")
	}
	if fc.EditingID == nil && in.PasswordHash == "" {
		return domain.User{}, errors.New("Password is required")
	}
	return domain.User{
		ID:           fc.EditingID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: optString(in.PasswordHash),
		Role:         in.Role,
		Phone:        optString(in.Phone),
	}, nil
}

// Users builds the user screen.
func Users(client console.ResourceClient[domain.User], notifier *console.Notifier) *console.Screen[domain.User] {
	cfg := console.Config[domain.User]{
		Name:     "users",
		Singular: "user",
		PageSize: 10,
		Columns: []console.Column[domain.User]{
			{Name: "id", Label: "ID", Value: func(u domain.User) interface{} { return idOrZero(u.ID) }},
			{Name: "name", Label: "Name", Value: func(u domain.User) interface{} { return u.Name }},
			{Name: "email", Label: "Email", Value: func(u domain.User) interface{} { return u.Email }},
			{Name: "role", Label: "Role", Value: func(u domain.User) interface{} { return u.Role }},
			{Name: "phone", Label: "Phone", Value: func(u domain.User) interface{} { return strOrEmpty(u.Phone) }},
		},
		Fields: []console.Field{
			{Name: "name", Label: "Name", Kind: console.Text, Rules: "required"},
			{Name: "email", Label: "Email", Kind: console.Email, Rules: "required,email"},
			{Name: "passwordHash", Label: "Password", Kind: console.Text},
			{Name: "role", Label: "Role", Kind: console.Select, Options: domain.Roles, Default: domain.RoleCustomer, Rules: "required"},
			{Name: "phone", Label: "Phone", Kind: console.Text},
		},
		ID:    func(u domain.User) *int64 { return u.ID },
		Build: UserFromForm,
		Fill: func(u domain.User) map[string]interface{} {
			return map[string]interface{}{
				"name":  u.Name,
				"email": u.Email,
				// the stored hash is never shown or resent; blank means keep
				"passwordHash": "",
				"role":         u.Role,
				"phone":        strOrEmpty(u.Phone),
			}
		},
	}
	return console.NewScreen(cfg, client, notifier)
}

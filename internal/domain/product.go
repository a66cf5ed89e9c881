package domain

// Product represents a catalog product. The backend contract embeds the full
// Category object on writes, not just its id.
type Product struct {
	ID          *int64   `json:"id,omitempty" csv:"id"`
	Category    Category `json:"category" csv:"-"`
	Name        string   `json:"name" csv:"name"`
	Slug        *string  `json:"slug,omitempty" csv:"slug"`
	Description *string  `json:"description,omitempty" csv:"description"`
	BasePrice   float64  `json:"basePrice" csv:"base_price"`
	Active      bool     `json:"active" csv:"active"`
	CreatedAt   string   `json:"createdAt,omitempty" csv:"created_at"` // server-set, read-only
}

// CategoryName returns the embedded category name for display, "-" when absent.
func (p Product) CategoryName() string {
	if p.Category.Name == "" {
		return "-"
	}
	return p.Category.Name
}

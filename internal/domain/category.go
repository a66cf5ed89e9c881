package domain

// Category represents a product category. A category may reference another
// category through ParentID, giving a single-level hierarchy by self-reference.
type Category struct {
	ID          *int64  `json:"id,omitempty" csv:"id"`
	ParentID    *int64  `json:"parentId" csv:"parent_id"`
	Name        string  `json:"name" csv:"name"`
	Slug        *string `json:"slug,omitempty" csv:"slug"`
	Description *string `json:"description,omitempty" csv:"description"`
}

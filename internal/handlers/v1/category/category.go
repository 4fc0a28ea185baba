package category

// Category is the API response model for a category.
type Category struct {
	ID   int64  `json:"id" readOnly:"true" doc:"Category ID"`
	Name string `json:"name" doc:"Display name"`
}

package domain

import "fmt"

// Validation errors for Category.
var (
	ErrEmptyCategorySlug        = fmt.Errorf("%w: category slug cannot be empty", ErrValidation)
	ErrEmptyCategoryDescription = fmt.Errorf("%w: category description cannot be empty", ErrValidation)
)

// Category groups reviews under a board-game genre. The slug is the
// identifier used by reviews and by the category filter on listings.
// Categories are immutable once created.
type Category struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// NewCategory creates a Category from the given slug and description.
// Returns an error if validation fails.
func NewCategory(slug, description string) (*Category, error) {
	category := &Category{
		Slug:        slug,
		Description: description,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Slug == "" {
		return ErrEmptyCategorySlug
	}

	if c.Description == "" {
		return ErrEmptyCategoryDescription
	}

	return nil
}

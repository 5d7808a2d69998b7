package categories

import (
	"fmt"

	"tastelog/internal/validate"
)

// Category groups reviews for the list view, e.g. "Beer" or "Tea".
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,notblank"`
}

// Validate checks the declared field constraints.
func (c *Category) Validate() error {
	return validate.Entity(c)
}

func (c *Category) String() string {
	return fmt.Sprintf("Category{id=%d name=%q}", c.ID, c.Name)
}

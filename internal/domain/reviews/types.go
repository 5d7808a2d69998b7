package reviews

import (
	"fmt"
	"strconv"
	"time"

	"tastelog/internal/validate"
)

// UndefinedCategoryName is what list and search views show for a review
// that is not linked to any category.
const UndefinedCategoryName = "Undefined"

// Review is one tasting entry. ID stays zero until storage assigns it.
type Review struct {
	ID         int64     `json:"id"`
	Score      int       `json:"score" validate:"required,min=1,max=5"`
	Name       string    `json:"name" validate:"required,notblank,min=3"`
	TastedOn   time.Time `json:"tasted_on" validate:"required,pastdate"`
	CategoryID *int64    `json:"category_id" validate:"omitempty,min=1"`
	Count      int       `json:"count" validate:"required,min=1,max=99"`
}

// New returns an unsaved draft with the defaults the UI form starts from.
// The draft is not valid until it gets a name.
func New() *Review {
	now := time.Now()
	return &Review{
		Score:    1,
		TastedOn: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Count:    1,
	}
}

// Validate checks every declared field constraint and returns a
// *validate.ValidationError listing all violations.
func (r *Review) Validate() error {
	return validate.Entity(r)
}

// Copy returns a detached value copy sharing the same ID. Mutating the
// copy never touches the original, so a draft bound to a form can be
// edited without disturbing the row it came from.
func (r *Review) Copy() *Review {
	c := *r
	if r.CategoryID != nil {
		id := *r.CategoryID
		c.CategoryID = &id
	}
	return &c
}

// String is a diagnostic representation for logs only.
func (r *Review) String() string {
	cat := "none"
	if r.CategoryID != nil {
		cat = strconv.FormatInt(*r.CategoryID, 10)
	}
	return fmt.Sprintf("Review{id=%d score=%d name=%q tasted_on=%s category=%s count=%d}",
		r.ID, r.Score, r.Name, r.TastedOn.Format("2006-01-02"), cat, r.Count)
}

// ReviewWithCategory is the read model for the list and search views:
// the review plus the name of its category, or "Undefined" when it has
// none. Instances only come out of the join query and are never written
// back.
type ReviewWithCategory struct {
	Review
	CategoryName string `json:"category_name"`
}

package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("review not found")

type Store interface {
	Create(context.Context, *Review) error
	GetByID(context.Context, int64) (*Review, error)
	Update(context.Context, *Review) error
	Delete(context.Context, int64) error
	Search(context.Context, string) ([]ReviewWithCategory, error)
	TotalCountByCategory(context.Context, int64) (int, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, review *Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	query := `
        INSERT INTO reviews (score, name, tasted_on, category_id, count)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query,
		review.Score,
		review.Name,
		review.TastedOn,
		review.CategoryID,
		review.Count,
	).Scan(&review.ID); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, reviewID int64) (*Review, error) {
	query := `
        SELECT id, score, name, tasted_on, category_id, count
        FROM reviews
        WHERE id = $1
    `
	var review Review
	err := r.db.QueryRow(ctx, query, reviewID).Scan(
		&review.ID,
		&review.Score,
		&review.Name,
		&review.TastedOn,
		&review.CategoryID,
		&review.Count,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

func (r *Repository) Update(ctx context.Context, review *Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	query := `
        UPDATE reviews
        SET score = $1, name = $2, tasted_on = $3, category_id = $4, count = $5
        WHERE id = $6
    `
	result, err := r.db.Exec(ctx, query,
		review.Score,
		review.Name,
		review.TastedOn,
		review.CategoryID,
		review.Count,
		review.ID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, reviewID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Search returns the reviews whose name, category name, score or count
// starts with the given filter, case-insensitively. The filter is trimmed
// and lower-cased before a wildcard suffix is appended, so an empty filter
// matches every review. Unlinked reviews match under "Undefined". Results
// are ordered by name with id as tie-break.
func (r *Repository) Search(ctx context.Context, filter string) ([]ReviewWithCategory, error) {
	pattern := strings.ToLower(strings.TrimSpace(filter)) + "%"

	query := `
        SELECT r.id, r.score, r.name, r.tasted_on, r.category_id, r.count,
               COALESCE(c.name, 'Undefined')
        FROM reviews r
        LEFT JOIN categories c ON c.id = r.category_id
        WHERE lower(r.name) LIKE $1
           OR lower(COALESCE(c.name, 'Undefined')) LIKE $1
           OR CAST(r.score AS TEXT) LIKE $1
           OR CAST(r.count AS TEXT) LIKE $1
        ORDER BY r.name ASC, r.id ASC
    `
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("search reviews: %w", err)
	}
	defer rows.Close()

	var results []ReviewWithCategory
	for rows.Next() {
		var rc ReviewWithCategory
		err := rows.Scan(
			&rc.ID,
			&rc.Score,
			&rc.Name,
			&rc.TastedOn,
			&rc.CategoryID,
			&rc.Count,
			&rc.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("search reviews: %w", err)
		}
		results = append(results, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search reviews: %w", err)
	}
	return results, nil
}

// TotalCountByCategory sums the times-tasted counter across every review
// in the category. Categories with no reviews sum to 0, not NULL.
func (r *Repository) TotalCountByCategory(ctx context.Context, categoryID int64) (int, error) {
	query := `
        SELECT COALESCE(SUM(count), 0)
        FROM reviews
        WHERE category_id = $1
    `
	var total int
	if err := r.db.QueryRow(ctx, query, categoryID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total count for category: %w", err)
	}
	return total, nil
}

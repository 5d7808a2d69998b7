package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("category not found")
	ErrConflict = errors.New("category name already exists")
)

type Store interface {
	Create(context.Context, *Category) error
	GetByID(context.Context, int64) (*Category, error)
	List(context.Context) ([]Category, error)
	Update(context.Context, *Category) error
	Delete(context.Context, int64) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	query := `
        INSERT INTO categories (name)
        VALUES ($1)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query, category.Name).Scan(&category.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, categoryID int64) (*Category, error) {
	var category Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM categories WHERE id = $1`, categoryID,
	).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

func (r *Repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		list = append(list, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (r *Repository) Update(ctx context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	result, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("update category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the category. Reviews pointing at it keep existing and
// show up as "Undefined" afterwards (the FK is ON DELETE SET NULL).
func (r *Repository) Delete(ctx context.Context, categoryID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package core

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Product is a catalog entry. It is stored as a self-contained document so
// both backends can serve it unchanged.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductRepository defines persistence operations for products. Which
// implementation backs it is chosen by configuration (PRODUCT_STORE), not by
// maintaining parallel builds.
type ProductRepository interface {
	Add(ctx context.Context, name string, price float64, category string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}

// PgProductRepository is the relational fallback implementation.
type PgProductRepository struct {
	db *pgxpool.Pool
}

func NewPgProductRepository(db *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{db: db}
}

func (r *PgProductRepository) Add(ctx context.Context, name string, price float64, category string) (*Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	const q = `INSERT INTO products (name, price, category) VALUES ($1,$2,$3) RETURNING id, created_at`
	p := Product{Name: name, Price: price, Category: category}
	if err := r.db.QueryRow(ctx, q, name, price, category).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgProductRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price, category, created_at FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

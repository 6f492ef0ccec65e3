package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/InnoXenT9/aqua-earth-order/internal/domain"
)

type Repository struct {
	db *sql.DB
}

type RepoInterface interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Seed(ctx context.Context, products []domain.Product) error
	Close() error
	RunMigrations(string) error
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Seed inserts the given products and variants, skipping rows that
// already exist.
func (r *Repository) Seed(ctx context.Context, products []domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for pos, p := range products {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO products (id, name, description, category, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.Name, p.Description, p.Category, pos)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}

		for vpos, v := range p.Variants {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO variants (id, product_id, size, price, position)
				 VALUES ($1, $2, $3, $4, $5)`,
				v.ID, p.ID, v.Size, v.Price, vpos)
			if err != nil {
				return fmt.Errorf("failed to seed variant %s: %w", v.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}

func (r *Repository) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category,
		       v.id, v.size, v.price
		FROM products p
		JOIN variants v ON v.product_id = p.id
		ORDER BY p.position, v.position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	byID := make(map[string]*domain.Product)

	for rows.Next() {
		var (
			productID, name, description, category string
			variant                                domain.Variant
		)
		err := rows.Scan(
			&productID,
			&name,
			&description,
			&category,
			&variant.ID,
			&variant.Size,
			&variant.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		p, ok := byID[productID]
		if !ok {
			p = &domain.Product{
				ID:          productID,
				Name:        name,
				Description: description,
				Category:    category,
			}
			byID[productID] = p
			products = append(products, p)
		}
		p.Variants = append(p.Variants, variant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category,
		       v.id, v.size, v.price
		FROM products p
		JOIN variants v ON v.product_id = p.id
		WHERE p.id = $1
		ORDER BY v.position
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	var product *domain.Product
	for rows.Next() {
		var variant domain.Variant
		if product == nil {
			product = &domain.Product{}
		}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Category,
			&variant.ID,
			&variant.Size,
			&variant.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		product.Variants = append(product.Variants, variant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

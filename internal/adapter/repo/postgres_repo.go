package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/example/product-service/internal/domain"
)

// PostgresProductRepo — репозиторий товаров на pgxpool.
type PostgresProductRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresProductRepo(pool *pgxpool.Pool) *PostgresProductRepo {
	return &PostgresProductRepo{Pool: pool}
}

func (r *PostgresProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM products`)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()
	var out []domain.Product
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, errors.Wrap(err, "scan product row")
		}
		out = append(out, domain.Product{ID: &id, Name: name})
	}
	return out, errors.Wrap(rows.Err(), "iterate product rows")
}

func (r *PostgresProductRepo) FindByID(ctx context.Context, id int64) (domain.Product, bool, error) {
	var name string
	err := r.Pool.QueryRow(ctx, `SELECT name FROM products WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, errors.Wrapf(err, "query product %d", id)
	}
	return domain.Product{ID: &id, Name: name}, true, nil
}

func (r *PostgresProductRepo) Insert(ctx context.Context, p domain.Product) (domain.Product, bool, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `INSERT INTO products(name) VALUES($1) RETURNING id`, p.Name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// вставка не затронула строк — аномалия персистентности, не ошибка соединения
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, errors.Wrap(err, "insert product")
	}
	return domain.Product{ID: &id, Name: p.Name}, true, nil
}

func (r *PostgresProductRepo) UpdateByID(ctx context.Context, id int64, p domain.Product) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE products SET name = $1 WHERE id = $2`, p.Name, id)
	if err != nil {
		return false, errors.Wrapf(err, "update product %d", id)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresProductRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, errors.Wrapf(err, "delete product %d", id)
	}
	return tag.RowsAffected() == 1, nil
}

var _ domain.ProductRepository = (*PostgresProductRepo)(nil)

// EnsureSchema — создать необходимые таблицы, если отсутствуют.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS products (
  id bigserial PRIMARY KEY,
  name text NOT NULL
);`)
	return errors.Wrap(err, "ensure products schema")
}

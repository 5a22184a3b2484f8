package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/vendor-order-service/internal/domain"
)

// PostgresOrderRepo — хранилище снимков заказов (jsonb-полезная нагрузка).
type PostgresOrderRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresOrderRepo(pool *pgxpool.Pool) *PostgresOrderRepo {
	return &PostgresOrderRepo{Pool: pool}
}

func (r *PostgresOrderRepo) Upsert(ctx context.Context, id string, raw []byte) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO orders(order_id, payload) VALUES($1, $2)
        ON CONFLICT (order_id) DO UPDATE SET payload = EXCLUDED.payload`, id, raw)
	return err
}

// Get — свежий авторитетный снимок заказа; на нём строится повторная
// проверка черновика возврата.
func (r *PostgresOrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	var raw []byte
	err := r.Pool.QueryRow(ctx, `SELECT payload FROM orders WHERE order_id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	var o domain.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return domain.Order{}, fmt.Errorf("decode order %s: %w", id, err)
	}
	return o, nil
}

func (r *PostgresOrderRepo) LoadAll(ctx context.Context, fn func(id string, raw []byte) error) error {
	rows, err := r.Pool.Query(ctx, `SELECT order_id, payload FROM orders`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return err
		}
		if err := fn(id, raw); err != nil {
			return err
		}
	}
	return rows.Err()
}

var _ domain.OrderRepository = (*PostgresOrderRepo)(nil)

// PostgresVendorDirectory — справочник назначений сотрудник→поставщик.
// Таблица принадлежит конфигурационному контуру и здесь только читается.
type PostgresVendorDirectory struct {
	Pool *pgxpool.Pool
}

func (d *PostgresVendorDirectory) VendorFor(ctx context.Context, email string) (string, error) {
	var vendor string
	err := d.Pool.QueryRow(ctx, `SELECT vendor FROM vendor_staff WHERE email = $1`, email).Scan(&vendor)
	if errors.Is(err, pgx.ErrNoRows) {
		// отсутствие назначения — администратор, не ошибка
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return vendor, nil
}

var _ domain.VendorDirectory = (*PostgresVendorDirectory)(nil)

// EnsureSchema — создать необходимые таблицы, если отсутствуют.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
  order_id text PRIMARY KEY,
  payload jsonb NOT NULL
);
CREATE TABLE IF NOT EXISTS vendor_staff (
  email text PRIMARY KEY,
  vendor text NOT NULL
);`)
	return err
}

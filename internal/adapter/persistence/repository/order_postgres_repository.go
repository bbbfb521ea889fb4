package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// OrderPostgresRepository persists order headers in `orders` and line-item
// snapshots in `orders_items`.

type OrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IOrderRepository = (*OrderPostgresRepository)(nil)

func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{db: db}
}

const orderColumns = `id, profile_id, total, shipping_price, shipping_provider, status, payment_method,
	postal_code, street, number, neighborhood, city, region, complement, created_at, updated_at`

func (r *OrderPostgresRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		o.ID, o.ProfileID, o.Total, o.ShippingPrice, o.ShippingProvider, o.Status, o.PaymentMethod,
		o.PostalCode, o.Street, o.Number, o.Neighborhood, o.City, o.Region, o.Complement,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return entities.Order{}, fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO orders_items (id, order_id, product_id, name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), o.ID, it.ProductID, it.Name, it.Price, it.Quantity,
		)
		if err != nil {
			return entities.Order{}, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.Order{}, fmt.Errorf("commit: %w", err)
	}
	return o, nil
}

func (r *OrderPostgresRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var o entities.Order
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	).Scan(
		&o.ID, &o.ProfileID, &o.Total, &o.ShippingPrice, &o.ShippingProvider, &o.Status, &o.PaymentMethod,
		&o.PostalCode, &o.Street, &o.Number, &o.Neighborhood, &o.City, &o.Region, &o.Complement,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Order{}, nil
		}
		return entities.Order{}, fmt.Errorf("select order: %w", err)
	}

	items, err := r.itemsByOrderID(ctx, o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderPostgresRepository) ListByProfileID(ctx context.Context, profileID string) ([]entities.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE profile_id = $1 ORDER BY created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var o entities.Order
		if err := rows.Scan(
			&o.ID, &o.ProfileID, &o.Total, &o.ShippingPrice, &o.ShippingProvider, &o.Status, &o.PaymentMethod,
			&o.PostalCode, &o.Street, &o.Number, &o.Neighborhood, &o.City, &o.Region, &o.Complement,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range orders {
		items, err := r.itemsByOrderID(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderPostgresRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, paymentMethod string) (entities.Order, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2, payment_method = $3, updated_at = $4 WHERE id = $1`,
		id, status, paymentMethod, time.Now().UTC(),
	)
	if err != nil {
		return entities.Order{}, fmt.Errorf("update order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *OrderPostgresRepository) itemsByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT order_id, product_id, name, price, quantity FROM orders_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []entities.OrderItem
	for rows.Next() {
		var it entities.OrderItem
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

package checkout

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/cart"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create order
// --------------------------------------------------

func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	var address []byte
	if order.Address != nil {
		address, err = json.Marshal(order.Address)
		if err != nil {
			return err
		}
	}

	contact, err := json.Marshal(order.PersonalInfo)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (
			id,
			user_id,
			user_name,
			user_email,
			contact,
			items,
			payment_method,
			delivery_type,
			address,
			subtotal,
			discount,
			delivery_fee,
			total,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING created_at
	`

	return r.db.QueryRow(ctx, query,
		order.ID,
		order.UserID,
		order.UserName,
		order.UserEmail,
		contact,
		items,
		order.PaymentMethod,
		order.DeliveryType,
		address,
		order.Subtotal,
		order.Discount,
		order.DeliveryFee,
		order.Total,
		order.Status,
	).Scan(&order.CreatedAt)
}

// --------------------------------------------------
// List orders of a user, newest first
// --------------------------------------------------

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id, user_id, user_name, user_email, contact, items,
			payment_method, delivery_type, address,
			subtotal, discount, delivery_fee, total,
			status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// --------------------------------------------------
// Recent orders (admin view)
// --------------------------------------------------

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id, user_id, user_name, user_email, contact, items,
			payment_method, delivery_type, address,
			subtotal, discount, delivery_fee, total,
			status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// --------------------------------------------------
// Update status
// --------------------------------------------------

func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]*Order, error) {
	var orders []*Order

	for rows.Next() {
		var (
			o       Order
			contact []byte
			items   []byte
			address []byte
		)

		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.UserName,
			&o.UserEmail,
			&contact,
			&items,
			&o.PaymentMethod,
			&o.DeliveryType,
			&address,
			&o.Subtotal,
			&o.Discount,
			&o.DeliveryFee,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(contact, &o.PersonalInfo); err != nil {
			return nil, err
		}

		o.Items = []cart.Item{}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}

		if len(address) > 0 {
			o.Address = &Address{}
			if err := json.Unmarshal(address, o.Address); err != nil {
				return nil, err
			}
		}

		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

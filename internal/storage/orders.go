package storage

import (
	"database/sql"
	"fmt"

	"tastybites/internal/domain"
)

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (customer, phone, location, notes, total, status, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, order.Customer, order.Phone, order.Location, order.Notes, order.Total, order.Status, order.UserID).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.ItemID, item.Name, item.Price, item.Quantity); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, customer, COALESCE(phone, ''), location, COALESCE(notes, ''), total, status, user_id, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Customer, &order.Phone, &order.Location, &order.Notes, &order.Total, &order.Status, &order.UserID, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.listOrderItems(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}

	return orders, nil
}

// GetOrder returns (nil, nil) when no such order exists; absence is a
// normal outcome for tracking lookups.
func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, customer, COALESCE(phone, ''), location, COALESCE(notes, ''), total, status, user_id, created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.Customer, &order.Phone, &order.Location, &order.Notes, &order.Total, &order.Status, &order.UserID, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) UpdateOrderStatus(id int, status string) error {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

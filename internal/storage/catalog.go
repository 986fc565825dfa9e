package storage

import (
	"database/sql"

	"tastybites/internal/domain"
)

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"INSERT INTO menu_items (name, description, price, image_url, category, available, is_special, branch_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at",
		item.Name, item.Description, item.Price, item.ImageURL, item.Category, item.Available, item.IsSpecial, item.BranchID).
		Scan(&item.ID, &item.CreatedAt)
}

// ListMenuItems filters by branch when branchID is non-nil; items without a
// branch scope are always included.
func (r *PostgresRepository) ListMenuItems(branchID *int) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), COALESCE(category, ''), available, is_special, branch_id, created_at
		FROM menu_items`
	args := []interface{}{}
	if branchID != nil {
		query += " WHERE branch_id IS NULL OR branch_id = $1"
		args = append(args, *branchID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.Category, &item.Available, &item.IsSpecial, &item.BranchID, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), COALESCE(category, ''), available, is_special, branch_id, created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.Category, &item.Available, &item.IsSpecial, &item.BranchID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"UPDATE menu_items SET name=$1, description=$2, price=$3, image_url=$4, category=$5, available=$6, is_special=$7, branch_id=$8 WHERE id=$9 RETURNING created_at",
		item.Name, item.Description, item.Price, item.ImageURL, item.Category, item.Available, item.IsSpecial, item.BranchID, item.ID).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateOffer(offer *domain.Offer) error {
	return r.DB.QueryRow(
		"INSERT INTO offers (title, message, display_date) VALUES ($1, $2, $3) RETURNING id, created_at",
		offer.Title, offer.Message, offer.Date).
		Scan(&offer.ID, &offer.CreatedAt)
}

func (r *PostgresRepository) ListOffers() ([]domain.Offer, error) {
	rows, err := r.DB.Query(`
		SELECT id, title, COALESCE(message, ''), COALESCE(display_date, ''), created_at
		FROM offers
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []domain.Offer{}
	for rows.Next() {
		var offer domain.Offer
		if err := rows.Scan(&offer.ID, &offer.Title, &offer.Message, &offer.Date, &offer.CreatedAt); err != nil {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (r *PostgresRepository) UpdateOffer(offer *domain.Offer) error {
	return r.DB.QueryRow(
		"UPDATE offers SET title=$1, message=$2, display_date=$3 WHERE id=$4 RETURNING created_at",
		offer.Title, offer.Message, offer.Date, offer.ID).
		Scan(&offer.CreatedAt)
}

func (r *PostgresRepository) DeleteOffer(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM offers WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateBranch(branch *domain.Branch) error {
	return r.DB.QueryRow(
		"INSERT INTO branches (name, address, phone, hours) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		branch.Name, branch.Address, branch.Phone, branch.Hours).
		Scan(&branch.ID, &branch.CreatedAt)
}

func (r *PostgresRepository) ListBranches() ([]domain.Branch, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(hours, ''), created_at
		FROM branches
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		var branch domain.Branch
		if err := rows.Scan(&branch.ID, &branch.Name, &branch.Address, &branch.Phone, &branch.Hours, &branch.CreatedAt); err != nil {
			continue
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

func (r *PostgresRepository) UpdateBranch(branch *domain.Branch) error {
	return r.DB.QueryRow(
		"UPDATE branches SET name=$1, address=$2, phone=$3, hours=$4 WHERE id=$5 RETURNING created_at",
		branch.Name, branch.Address, branch.Phone, branch.Hours, branch.ID).
		Scan(&branch.CreatedAt)
}

func (r *PostgresRepository) DeleteBranch(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM branches WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetSetting returns "" without an error when the key is absent.
func (r *PostgresRepository) GetSetting(key string) (string, error) {
	var value string
	err := r.DB.QueryRow("SELECT value FROM settings WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *PostgresRepository) UpsertSetting(key, value string) error {
	_, err := r.DB.Exec(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

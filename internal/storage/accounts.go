package storage

import (
	"database/sql"

	"tastybites/internal/domain"
)

func (r *PostgresRepository) CreateUser(user *domain.User, fullName string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		"INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at",
		user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(
		"INSERT INTO profiles (user_id, full_name) VALUES ($1, $2)",
		user.ID, fullName); err != nil {
		return err
	}

	return tx.Commit()
}

// GetUserByEmail returns (nil, nil) when the email is unknown.
func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetProfile(userID int) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.DB.QueryRow(
		"SELECT user_id, COALESCE(full_name, ''), is_admin FROM profiles WHERE user_id = $1", userID).
		Scan(&profile.UserID, &profile.FullName, &profile.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) UpdateProfile(profile *domain.Profile) error {
	_, err := r.DB.Exec(
		"UPDATE profiles SET full_name = $1 WHERE user_id = $2",
		profile.FullName, profile.UserID)
	return err
}

func (r *PostgresRepository) InsertFeedback(fb *domain.Feedback) error {
	return r.DB.QueryRow(`
		INSERT INTO feedback (order_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, fb.OrderID, fb.UserID, fb.Rating, fb.Comment).
		Scan(&fb.ID, &fb.CreatedAt)
}

// GetFeedbackForOrder returns (nil, nil) when no feedback exists yet.
func (r *PostgresRepository) GetFeedbackForOrder(orderID int) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := r.DB.QueryRow(`
		SELECT id, order_id, user_id, rating, COALESCE(comment, ''), created_at
		FROM feedback
		WHERE order_id = $1
		LIMIT 1`, orderID).
		Scan(&fb.ID, &fb.OrderID, &fb.UserID, &fb.Rating, &fb.Comment, &fb.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *PostgresRepository) ListFeedback() ([]domain.Feedback, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, user_id, rating, COALESCE(comment, ''), created_at
		FROM feedback
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := []domain.Feedback{}
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.OrderID, &fb.UserID, &fb.Rating, &fb.Comment, &fb.CreatedAt); err != nil {
			continue
		}
		feedback = append(feedback, fb)
	}
	return feedback, nil
}

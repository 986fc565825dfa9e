package storage

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"tastybites/internal/domain"
)

func setupTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(mockDB), mock
}

func TestCreateOrder_TransactionCommits(t *testing.T) {
	repo, mock := setupTestDB(t)

	order := &domain.Order{
		Customer: "Alice",
		Location: "Table 4",
		Total:    25,
		Status:   domain.StatusPending,
		Items: []domain.OrderItem{
			{ItemID: 1, Name: "Burger", Price: 10, Quantity: 2},
			{ItemID: 2, Name: "Fries", Price: 5, Quantity: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Alice", "", "Table 4", "", 25.0, domain.StatusPending, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 1, "Burger", 10.0, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 2, "Fries", 5.0, 1).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.CreateOrder(order)
	assert.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_ItemInsertFailureRollsBack(t *testing.T) {
	repo, mock := setupTestDB(t)

	order := &domain.Order{
		Customer: "Alice",
		Location: "Table 4",
		Total:    10,
		Status:   domain.StatusPending,
		Items:    []domain.OrderItem{{ItemID: 1, Name: "Burger", Price: 10, Quantity: 1}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.CreateOrder(order)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder_NotFoundIsNil(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("FROM orders").
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	order, err := repo.GetOrder(404)
	assert.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_MissingRow(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.StatusPreparing, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrderStatus(404, domain.StatusPreparing)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSetting_AbsentKeyIsEmpty(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("SENDGRID_API_KEY").
		WillReturnError(sql.ErrNoRows)

	value, err := repo.GetSetting("SENDGRID_API_KEY")
	assert.NoError(t, err)
	assert.Equal(t, "", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeedbackForOrder_AbsentIsNil(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("FROM feedback").
		WithArgs(7).
		WillReturnError(sql.ErrNoRows)

	fb, err := repo.GetFeedbackForOrder(7)
	assert.NoError(t, err)
	assert.Nil(t, fb)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMenuItems_BranchFilter(t *testing.T) {
	repo, mock := setupTestDB(t)

	branchID := 2
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "image_url", "category", "available", "is_special", "branch_id", "created_at"}).
		AddRow(1, "Burger", "", 10.0, "", "mains", true, false, nil, time.Now()).
		AddRow(2, "Local Special", "", 12.0, "", "mains", true, true, branchID, time.Now())

	mock.ExpectQuery("FROM menu_items WHERE branch_id IS NULL OR branch_id").
		WithArgs(branchID).
		WillReturnRows(rows)

	items, err := repo.ListMenuItems(&branchID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Nil(t, items[0].BranchID)
	assert.Equal(t, branchID, *items[1].BranchID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

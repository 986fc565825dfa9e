package domain

import "time"

type Branch struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Hours     string    `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Available   bool      `json:"available"`
	IsSpecial   bool      `json:"is_special"`
	BranchID    *int      `json:"branch_id"` // nil means every branch
	CreatedAt   time.Time `json:"created_at"`
}

type Offer struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID        int         `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	Customer  string      `json:"customer"`
	Phone     string      `json:"phone,omitempty"`
	Location  string      `json:"location"`
	Notes     string      `json:"notes,omitempty"`
	UserID    *int        `json:"user_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ItemID   int     `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Feedback struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	UserID    int       `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

// Cart is server-held per-session state; it never outlives its session.
type Cart struct {
	Entries []CartEntry `json:"entries"`
}

type CartEntry struct {
	ItemID   int     `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Total is recomputed on every call; cart totals are never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, entry := range c.Entries {
		total += entry.Price * float64(entry.Quantity)
	}
	return total
}

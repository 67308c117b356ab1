package store

import "time"

// DefaultProductImage is used when a product is listed without a photo link.
const DefaultProductImage = "/img/9ecd0c0e-c1ea-431d-9109-3e0e1fdfc41d.jpg"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Seller      string    `json:"seller"`
	SellerID    int64     `json:"seller_id"` // 0 when listed without a session
	CreatedAt   time.Time `json:"created_at"`
}

// ProductDraft is the add-product form. Every field is raw input text.
type ProductDraft struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Seller      string `json:"seller"`
	Image       string `json:"image"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AuthForm backs both the login and the register form.
type AuthForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type Sender string

const (
	SenderUser   Sender = "user"
	SenderSeller Sender = "seller"
)

type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type Conversation struct {
	ID       string    `json:"id"` // Using UUID, one per opened chat
	Product  Product   `json:"product"`
	Messages []Message `json:"messages"`
	Open     bool      `json:"open"`
}

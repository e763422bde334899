package todo

import "time"

type Todo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update carries a partial update: nil fields keep their stored value.
type Update struct {
	Text      *string
	Completed *bool
}

package course

import "time"

// Transaction statuses
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionRefunded  = "refunded"
)

// Transaction is the payment-intent record created atomically with a pending
// enrollment. Its status mirrors the paired enrollment's resolution: active
// maps to completed, rejected to failed. It is never created on its own.
type Transaction struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Reference     string    `json:"reference" gorm:"unique;not null"` // processor-style reference
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	CourseID      uint      `json:"course_id" gorm:"index;not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	Status        string    `json:"status" gorm:"index;default:'pending'"`
	PaymentMethod string    `json:"payment_method" gorm:"default:''"`
	Receipt       string    `json:"receipt" gorm:"default:''"`
}

func (Transaction) TableName() string { return "course_transactions" }

package models

import "time"

// ResetCode is the outstanding password-reset challenge for one email.
type ResetCode struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"` // zero for records written before it existed
}

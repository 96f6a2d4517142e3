package models

import "time"

// One-time code purposes.
const (
	OTPPurposeVerify = "verify"
	OTPPurposeReset  = "reset"
)

// OneTimeCode is a short-lived numeric code for email verification or
// password reset. Codes live in the store with an explicit expiry so they
// survive restarts; expired rows are swept periodically.
type OneTimeCode struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"index:idx_otp_email_purpose;type:varchar(255)"`
	Purpose   string    `json:"purpose" gorm:"index:idx_otp_email_purpose;type:varchar(16)"`
	Code      string    `json:"-" gorm:"type:varchar(8)"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the code is no longer valid at now.
func (c *OneTimeCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

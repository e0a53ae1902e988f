package users

import "time"

// Roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the document stored in the users DynamoDB table.
// PasswordHash is a bcrypt hash and never leaves the package in responses.
type User struct {
	Username     string     `json:"username" dynamodbav:"username"` // PK
	Mobile       string     `json:"mobile" dynamodbav:"mobile"`     // GSI
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	Role         string     `json:"role" dynamodbav:"role"`
	OTP          string     `json:"-" dynamodbav:"otp,omitempty"`
	OTPExpires   *time.Time `json:"-" dynamodbav:"otp_expires,omitempty"`
	CreatedAt    time.Time  `json:"created_at" dynamodbav:"created_at"`
}

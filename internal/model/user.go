package model

import "time"

// User represents an application user record as stored in the
// `users` table. Handlers define separate response types with JSON
// tags; these structs are used by the repository layer only.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FullName     – display name shown on bookings and notifications.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Phone        – contact phone number.
//  Address      – contact address.
//  Role         – role name (admin or customer).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	FullName     string    // users.full_name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Phone        string    // users.phone
	Address      string    // users.address
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Roles stored in users.role and carried in the JWT "role" claim.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// RefreshToken models an entry in the `refresh_tokens` table. Each
// refresh token belongs to a user; only the SHA-256 hash of the raw
// token value is stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}

package models

import "gorm.io/gorm"

// Role determines both visibility scope and mutation rights.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleMember
}

// Country scopes Manager and Member visibility; Admin bypasses it.
type Country string

const (
	CountryIndia   Country = "India"
	CountryAmerica Country = "America"
)

// IsValid reports whether the country is one of the supported countries.
func (c Country) IsValid() bool {
	return c == CountryIndia || c == CountryAmerica
}

// Identity is the authenticated caller passed into every service operation.
// It is immutable per request and produced by the auth middleware.
type Identity struct {
	ID      string  `json:"id"`
	Role    Role    `json:"role"`
	Country Country `json:"country"`
}

// User represents a user of the platform.
type User struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string  `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       Role    `json:"role" gorm:"type:varchar(20)"`
	Country    Country `json:"country" gorm:"type:varchar(50)" validate:"required"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Identity derives the request identity for this user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role, Country: u.Country}
}

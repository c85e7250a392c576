package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles form a small closed set
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role belongs to the closed role set
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleAdmin
}

// User is a registered account. Admins additionally carry a shop profile.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	Shop         *ShopProfile `json:"shop,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type ShopProfile struct {
	ShopName string  `json:"shop_name"`
	Address  Address `json:"address"`
}

type Address struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ayush@gmail.com"`
	Password string `json:"password" binding:"required" example:"secret-pass"`
	Role     string `json:"role" binding:"required,oneof=customer admin" example:"customer"`
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=2" example:"Ayush"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterAdminRequest struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	ShopName string  `json:"shop_name" binding:"required,min=2"`
	Address  Address `json:"address" binding:"required"`
}

// UserResponse is the public user record returned after login / on /me
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name, Role: u.Role}
}

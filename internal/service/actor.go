package service

import "agrostock-backend/internal/model"

// Actor is the authenticated caller of an operation. The role is re-read
// from the session token on every request and never cached across calls.
type Actor struct {
	ID   string
	Name string
	Role model.Role
}

package api

import (
	"time"

	"github.com/propertyhub-dev/propertyhub/internal/roles"
)

// User represents an account as returned by the backend
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Roles        roles.Set `json:"roles"`
}

// Property represents a rental property listing
type Property struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Rent        float64  `json:"rent"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Available   bool     `json:"available"`
	LandlordID  string   `json:"landlordId"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// PropertyRequest is the payload for creating or updating a property
type PropertyRequest struct {
	Title       string  `json:"title"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Rent        float64 `json:"rent"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Available   bool    `json:"available"`
	Description string  `json:"description,omitempty"`
}

// Lease represents a rental agreement between a tenant and a property
type Lease struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	TenantID    string    `json:"tenantId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	MonthlyRent float64   `json:"monthlyRent"`
	Status      string    `json:"status"`
}

// Payment represents a rent payment record
type Payment struct {
	ID       string    `json:"id"`
	LeaseID  string    `json:"leaseId"`
	TenantID string    `json:"tenantId"`
	Amount   float64   `json:"amount"`
	DueDate  time.Time `json:"dueDate"`
	PaidAt   *time.Time `json:"paidAt,omitempty"`
	Status   string    `json:"status"`
	Method   string    `json:"method,omitempty"`
}

// CreateTenantRequest is the admin payload for provisioning a tenant account
type CreateTenantRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListProperties returns all property listings
func (c *Client) ListProperties(ctx context.Context) ([]Property, error) {
	var properties []Property
	if err := c.do(ctx, http.MethodGet, "/properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty returns a single property by ID
func (c *Client) GetProperty(ctx context.Context, id string) (*Property, error) {
	var property Property
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id), nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty creates a new property listing
func (c *Client) CreateProperty(ctx context.Context, req PropertyRequest) (*Property, error) {
	var property Property
	if err := c.do(ctx, http.MethodPost, "/properties", req, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// UpdateProperty updates an existing property listing
func (c *Client) UpdateProperty(ctx context.Context, id string, req PropertyRequest) (*Property, error) {
	var property Property
	if err := c.do(ctx, http.MethodPut, "/properties/"+url.PathEscape(id), req, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// DeleteProperty deletes a property listing
func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/properties/"+url.PathEscape(id), nil, nil)
}

// AvailableProperties returns properties currently open for rent
func (c *Client) AvailableProperties(ctx context.Context) ([]Property, error) {
	var properties []Property
	if err := c.do(ctx, http.MethodGet, "/properties/available", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// PropertiesByLandlord returns the properties owned by a landlord
func (c *Client) PropertiesByLandlord(ctx context.Context, landlordID string) ([]Property, error) {
	var properties []Property
	if err := c.do(ctx, http.MethodGet, "/properties/landlord/"+url.PathEscape(landlordID), nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ListTenants returns all tenant accounts
func (c *Client) ListTenants(ctx context.Context) ([]User, error) {
	var tenants []User
	if err := c.do(ctx, http.MethodGet, "/users/tenants", nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// ListLeases returns all leases
func (c *Client) ListLeases(ctx context.Context) ([]Lease, error) {
	var leases []Lease
	if err := c.do(ctx, http.MethodGet, "/leases", nil, &leases); err != nil {
		return nil, err
	}
	return leases, nil
}

// ListPayments returns all payment records
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.do(ctx, http.MethodGet, "/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreateTenant provisions a tenant account (admin only)
func (c *Client) CreateTenant(ctx context.Context, req CreateTenantRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/admin/tenants", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

package auth

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// Roles. Storefront signups are always customers; admin accounts are
// provisioned out of band.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

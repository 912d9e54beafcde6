package domain

// ChurchStatus indicates whether a tenant is serviceable or has been suspended
// by the platform owner.
type ChurchStatus string

const (
	ChurchActive    ChurchStatus = "ACTIVE"
	ChurchSuspended ChurchStatus = "SUSPENDED"
)

// Church is the tenant: the top-level scoping unit for all other entities.
type Church struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	City      string       `json:"city"`
	State     string       `json:"state"`
	Country   string       `json:"country"`
	Phone     string       `json:"phone"`
	Location  string       `json:"location"` // derived display string: "City, State"
	AdminID   string       `json:"adminId"`
	CreatedAt string       `json:"createdAt"`
	Currency  CurrencyCode `json:"currency"`
	Status    ChurchStatus `json:"status"`
}

// ChurchUpdate carries a partial update of a Church. Nil fields are left
// untouched (shallow merge).
type ChurchUpdate struct {
	Name    *string       `json:"name"`
	City    *string       `json:"city"`
	State   *string       `json:"state"`
	Country *string       `json:"country"`
	Phone   *string       `json:"phone"`
	AdminID *string       `json:"adminId"`
	Status  *ChurchStatus `json:"status"`
}

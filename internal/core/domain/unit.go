package domain

// Unit is a department or ministry team within a church (e.g. Media,
// Hospitality). HeadIDs reference approved users of the same church; the
// store does not enforce that, callers do.
type Unit struct {
	ID       string   `json:"id"`
	ChurchID string   `json:"churchId"`
	Name     string   `json:"name"`
	HeadIDs  []string `json:"headIds"`
}

// UnitUpdate carries a partial update of a Unit (shallow merge).
type UnitUpdate struct {
	Name    *string   `json:"name"`
	HeadIDs *[]string `json:"headIds"`
}

package domain

// Property is an inventory asset held by a unit. Quantity always equals
// FunctionalQty+MaintenanceQty+DamagedQty; the store recomputes it on every
// add and update.
type Property struct {
	ID             string `json:"id"`
	ChurchID       string `json:"churchId"`
	UnitID         string `json:"unitId"`
	Name           string `json:"name"`
	FunctionalQty  int    `json:"functionalQty"`
	MaintenanceQty int    `json:"maintenanceQty"`
	DamagedQty     int    `json:"damagedQty"`
	Quantity       int    `json:"quantity"`
}

// PropertyUpdate carries a partial update of a Property (shallow merge).
type PropertyUpdate struct {
	UnitID         *string `json:"unitId"`
	Name           *string `json:"name"`
	FunctionalQty  *int    `json:"functionalQty"`
	MaintenanceQty *int    `json:"maintenanceQty"`
	DamagedQty     *int    `json:"damagedQty"`
}

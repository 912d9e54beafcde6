package domain

// Announcement is a notice for a whole church or for a single unit.
// An empty UnitID means the announcement is global to the church.
type Announcement struct {
	ID         string `json:"id"`
	ChurchID   string `json:"churchId"`
	UnitID     string `json:"unitId,omitempty"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// AnnouncementUpdate carries a partial update of an Announcement
// (shallow merge).
type AnnouncementUpdate struct {
	UnitID     *string `json:"unitId"`
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	ExpiryDate *string `json:"expiryDate"`
}

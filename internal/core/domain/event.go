package domain

// ChurchEvent is a calendar entry for a church.
type ChurchEvent struct {
	ID          string `json:"id"`
	ChurchID    string `json:"churchId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

// ChurchEventUpdate carries a partial update of a ChurchEvent (shallow merge).
type ChurchEventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
}

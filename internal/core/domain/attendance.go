package domain

// AttendanceRecord is one service's head count. Total equals
// male+female+children at creation time; it is not re-validated on read.
type AttendanceRecord struct {
	ID       string `json:"id"`
	ChurchID string `json:"churchId"`
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Male     int    `json:"male"`
	Female   int    `json:"female"`
	Children int    `json:"children"`
}

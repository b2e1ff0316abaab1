package admin

// Stats is the admin dashboard headline block: row counts for the calling
// admin's hospital.
type Stats struct {
	Users        int64 `json:"users"`
	Patients     int64 `json:"patients"`
	Appointments int64 `json:"appointments"`
	Alerts       int64 `json:"alerts"`
}

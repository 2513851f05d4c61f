package models

// Attendance is a single open-to-close work session. A record with an empty
// EndTime is an in-progress session; EndTime and TotalWork are only ever set by
// the check-out update. Records are never deleted through the API.
//
// Date is a millisecond unix timestamp supplied by the client; StartTime,
// EndTime and TotalWork are client-formatted strings stored as sent.
type Attendance struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"size:255;index" json:"email"`
	Date      int64  `gorm:"index" json:"date"`
	StartTime string `gorm:"size:64" json:"startTime"`
	EndTime   string `gorm:"size:64" json:"endTime"`
	TotalWork string `gorm:"size:64" json:"totalWork"`
}

// AttendanceWithUser is an attendance row with the owning employee record
// attached, as returned by the per-employee history listing.
type AttendanceWithUser struct {
	Attendance
	User *Employee `json:"user"`
}

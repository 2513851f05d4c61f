package models

// Sequence backs monotonically increasing counters. Counting rows to derive the
// next employee identifier would race under concurrent creation, so the counter
// lives in its own row and is bumped under a row lock.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null"`
}

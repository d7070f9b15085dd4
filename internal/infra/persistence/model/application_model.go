package model

import "time"

// ApplicationModel mirrors the 'applications' table. There is no uniqueness
// constraint on (job_id, babysitter_id); repeated applications each get their
// own row.
type ApplicationModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	JobID        int64  `gorm:"column:job_id;not null"`
	BabysitterID int64  `gorm:"column:babysitter_id;not null"`
	Message      string    `gorm:"type:text;not null"`
	AppliedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}

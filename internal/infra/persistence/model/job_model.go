package model

import "time"

// JobModel mirrors the 'jobs' table. ParentID references users.id but is not
// declared as a foreign key; referential integrity is not enforced by the
// schema.
type JobModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	ParentID    int64  `gorm:"column:parent_id;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}

// Package model holds the GORM persistence models mirroring the database tables.
package model

// UserModel mirrors the 'users' table. SQLite assigns ids from the rowid
// sequence, so they are monotonically increasing per table.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordDigest string `gorm:"column:password_hash;type:varchar(64);not null"`
	Name           string `gorm:"type:varchar(100);not null"`
	IsBabysitter   bool   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID       uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string         `gorm:"unique;not null"          json:"username"`
	Password string         `gorm:"not null"                 json:"-"`
	Roles    pq.StringArray `gorm:"type:text[];not null"     json:"roles"`
	Active   bool           `gorm:"not null;default:true"    json:"active"`
}

type Note struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null"           json:"user"`
	Title     string    `gorm:"unique;not null"          json:"title"`
	Text      string    `gorm:"not null"                 json:"text"`
	Completed bool      `gorm:"not null;default:false"   json:"completed"`
	Ticket    int64     `gorm:"uniqueIndex;not null"     json:"ticket"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sequence backs counters that live outside the row identity, such as the
// note ticket number.
type Sequence struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value int64  `gorm:"not null"   json:"value"`
}

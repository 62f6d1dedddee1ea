package repository

import "time"

type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

type User struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Contact      string `gorm:"type:varchar(255)"`
	Plugs        []Plug `gorm:"foreignKey:OwnerID"` // owned plugs, looked up by plugs.owner_id
}

type Plug struct {
	ID          string     `gorm:"type:varchar(36);primaryKey"`
	Description string     `gorm:"type:text;not null"`
	Location    string     `gorm:"type:text;not null"`
	OwnerID     string     `gorm:"type:varchar(36);not null;index"`
	Status      bool       `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	Reactions   []Reaction `gorm:"foreignKey:PlugID"`
}

// Reaction is keyed by (plug, user): a user holds at most one reaction per plug.
type Reaction struct {
	PlugID    string       `gorm:"type:varchar(36);primaryKey"`
	UserID    string       `gorm:"type:varchar(36);primaryKey"`
	Kind      ReactionKind `gorm:"type:varchar(16);not null"`
	ReactedAt time.Time    `gorm:"not null"`
}

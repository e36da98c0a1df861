package models

import "time"

// Like and Comment attach to any listing type via gorm's polymorphic
// association (PostType carries the owning table).

type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostType  string    `gorm:"type:varchar(50);index:idx_likes_post" json:"-"`
	PostID    uint      `gorm:"index:idx_likes_post" json:"-"`
	UserEmail string    `gorm:"type:varchar(255)" json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostType  string    `gorm:"type:varchar(50);index:idx_comments_post" json:"-"`
	PostID    uint      `gorm:"index:idx_comments_post" json:"-"`
	UserName  string    `gorm:"type:varchar(255)" json:"userName"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"timestamp"`
}

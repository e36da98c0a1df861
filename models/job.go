package models

import "time"

type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Salary      string    `gorm:"type:varchar(100)" json:"salary"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	Contact     string    `gorm:"type:varchar(50)" json:"contact"`
	OwnerEmail  string    `gorm:"type:varchar(255);index" json:"ownerEmail"`
	OwnerName   string    `gorm:"type:varchar(255)" json:"ownerName"`
	OwnerPic    string    `gorm:"type:text" json:"ownerPic"`
	Image       string    `gorm:"type:text" json:"image"`
	Likes       []Like    `gorm:"polymorphic:Post" json:"likes"`
	Comments    []Comment `gorm:"polymorphic:Post" json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

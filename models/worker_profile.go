package models

import "time"

type WorkerProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	Skill          string    `gorm:"type:varchar(255)" json:"skill"`
	ExpectedSalary string    `gorm:"type:varchar(100)" json:"expectedSalary"`
	Location       string    `gorm:"type:varchar(255)" json:"location"`
	Experience     string    `gorm:"type:varchar(255)" json:"experience"`
	Contact        string    `gorm:"type:varchar(50)" json:"contact"`
	Email          string    `gorm:"type:varchar(255);index" json:"email"`
	OwnerName      string    `gorm:"type:varchar(255)" json:"ownerName"`
	OwnerPic       string    `gorm:"type:text" json:"ownerPic"`
	Image          string    `gorm:"type:text" json:"image"`
	Likes          []Like    `gorm:"polymorphic:Post" json:"likes"`
	Comments       []Comment `gorm:"polymorphic:Post" json:"comments"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

package models

import "time"

// InstantService is a standing offer of on-demand skilled labor, distinct
// from a one-off job or worker posting. It carries no social fields.
type InstantService struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Role        string    `gorm:"type:varchar(255)" json:"role"`
	Experience  string    `gorm:"type:varchar(255)" json:"experience"`
	Budget      string    `gorm:"type:varchar(100)" json:"budget"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	PastWork    string    `gorm:"type:text" json:"pastWork"`
	FullAddress string    `gorm:"type:text" json:"fullAddress"`
	Image       string    `gorm:"type:text" json:"image"`
	OwnerEmail  string    `gorm:"type:varchar(255);index" json:"ownerEmail"`
	OwnerName   string    `gorm:"type:varchar(255)" json:"ownerName"`
	OwnerPic    string    `gorm:"type:text" json:"ownerPic"`
	Contact     string    `gorm:"type:varchar(50)" json:"contact"`
	CreatedAt   time.Time `json:"createdAt"`
}

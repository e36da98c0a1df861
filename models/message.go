package models

import "time"

// Message is one chat line between two accounts, immutable once written.
// History is read by matching the (sender, receiver) pair in either
// direction, ordered by Timestamp.
type Message struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SenderEmail   string    `gorm:"type:varchar(255);index" json:"senderEmail"`
	ReceiverEmail string    `gorm:"type:varchar(255);index" json:"receiverEmail"`
	Text          string    `gorm:"type:text" json:"text"`
	Status        string    `gorm:"type:varchar(20);default:'sent'" json:"status"`
	Timestamp     time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

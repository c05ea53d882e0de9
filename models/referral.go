package models

import "time"

const StatusPending = "PENDING"

type Referral struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferrerName  string    `gorm:"column:referrer_name" json:"referrerName"`
	ReferrerEmail string    `gorm:"column:referrer_email" json:"referrerEmail"`
	ReferrerPhone string    `gorm:"column:referrer_phone" json:"referrerPhone"`
	FriendName    string    `gorm:"column:friend_name" json:"friendName"`
	FriendEmail   string    `gorm:"column:friend_email" json:"friendEmail"`
	FriendPhone   string    `gorm:"column:friend_phone" json:"friendPhone"`
	Program       string    `gorm:"column:program" json:"program"`
	Status        string    `gorm:"column:status" json:"status"` // only "PENDING" is written today
	CreatedAt     time.Time `json:"createdAt"`
}

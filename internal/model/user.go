package model

import "time"

const DefaultAvatarURL = "https://www.w3schools.com/howto/img_avatar.png"

type User struct {
	UUID      string    `db:"uuid" json:"$id"`
	AccountID string    `db:"account_id" json:"accountId"`
	FullName  string    `db:"full_name" json:"fullName"`
	Email     string    `db:"email" json:"email"`
	Avatar    string    `db:"avatar" json:"avatar"`
	CreatedAt time.Time `db:"created_at" json:"$createdAt"`
}

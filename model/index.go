package model

import "time"

type TokenData struct {
	AccessToken string `json:"accessToken"`
}

type TokenClaim struct {
	AdminId  uint   `json:"adminId"`
	Username string `json:"username"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

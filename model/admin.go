package model

// AdminUser holds the plaintext credential on purpose: the booking tool keeps
// the original single-campus admin contract, password hardening is out of scope.
type AdminUser struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required" json:"username"`
	Password string `gorm:"not null" validate:"required" json:"-"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

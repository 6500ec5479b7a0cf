package model

// Resource is a bookable unit (a room, a lab, a projector). Bookings reference
// it by name, not by id, so deleting a resource leaves its bookings in place.
type Resource struct {
	DTO
	Name string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
}

// Day carries an explicit Order: display sequence is assignment order, not
// alphabetical. New days are appended with Order = current count.
type Day struct {
	DTO
	Name  string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Order int    `gorm:"column:sort_order" json:"order"`
}

type Hour struct {
	DTO
	Value int    `gorm:"uniqueIndex;not null" json:"value"`
	Label string `gorm:"not null" validate:"required" json:"label"`
}

type CreateItemInput struct {
	Name string `json:"name" validate:"required"`
}

type CreateHourInput struct {
	Value int    `json:"value" validate:"min=0,max=23"`
	Label string `json:"label" validate:"required"`
}

package model

// Booking references the catalog by resource/day name and hour value. These are
// soft references: catalog deletes do not cascade here. The composite unique
// index is the double-booking guard — it spans the slot triple only, so two
// bookings of different types can never share a slot either.
type Booking struct {
	DTO
	Code         string `gorm:"uniqueIndex;not null" json:"code"`
	UserName     string `gorm:"not null" json:"user_name"`
	InfoId       string `gorm:"not null" json:"info_id"`
	ResourceName string `gorm:"not null;uniqueIndex:idx_booking_slot" json:"resource_name"`
	DayName      string `gorm:"not null;uniqueIndex:idx_booking_slot" json:"day_name"`
	Hour         int    `gorm:"not null;uniqueIndex:idx_booking_slot" json:"hour"`
	BookingType  string `gorm:"not null" json:"booking_type"`
}

type CreateBookingInput struct {
	UserName     string `json:"user_name" validate:"required"`
	InfoId       string `json:"info_id" validate:"required"`
	ResourceName string `json:"resource_name" validate:"required"`
	DayName      string `json:"day_name" validate:"required"`
	Hour         int    `json:"hour" validate:"min=0,max=23"`
	BookingType  string `json:"booking_type" validate:"required"`
}

// GridEntry is the reduced view of a booking inside one grid cell.
// Field names mirror Booking so copier can map them.
type GridEntry struct {
	ID           uint   `json:"id"`
	UserName     string `json:"user"`
	InfoId       string `json:"info"`
	ResourceName string `json:"res"`
}

// ScheduleGrid is the day×hour matrix for one booking type. Each row maps
// "hour_label" to the hour's label and every day name to a list of entries.
// An empty cell is an empty list, never null.
type ScheduleGrid struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

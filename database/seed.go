package database

import (
	"fmt"
	"log"

	"uni_booking/constants"
	"uni_booking/model"

	"gorm.io/gorm"
)

// SeedData fills empty catalog tables with the campus defaults. Each block
// fires only when its table is empty, so a restart never overwrites or
// resurrects rows an admin has changed.
func SeedData(db *gorm.DB) {
	var dayCount int64
	db.Model(&model.Day{}).Count(&dayCount)
	if dayCount == 0 {
		// Sat..Thu teaching week, order fixed by position.
		names := []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}
		for i, name := range names {
			if err := db.Create(&model.Day{Name: name, Order: i}).Error; err != nil {
				log.Println("failed to seed day:", name, "error:", err)
			}
		}
	}

	var resourceCount int64
	db.Model(&model.Resource{}).Count(&resourceCount)
	if resourceCount == 0 {
		if err := db.Create(&model.Resource{Name: "Room 101"}).Error; err != nil {
			log.Println("failed to seed default resource, error:", err)
		}
	}

	var hourCount int64
	db.Model(&model.Hour{}).Count(&hourCount)
	if hourCount == 0 {
		for h := 8; h < 18; h++ {
			hour := model.Hour{Value: h, Label: fmt.Sprintf("%d:00 - %d:00", h, h+1)}
			if err := db.Create(&hour).Error; err != nil {
				log.Println("failed to seed hour:", h, "error:", err)
			}
		}
	}

	admin := model.AdminUser{Username: constants.ROOT_ADMIN_USERNAME, Password: constants.ROOT_ADMIN_PASSWORD}
	if err := db.Where(model.AdminUser{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed bootstrap admin, error:", err)
	}
}

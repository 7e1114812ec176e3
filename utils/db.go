package utils

import "gorm.io/gorm"

// Shared gorm handle, set once at startup and read by the controllers.
var db *gorm.DB

func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}

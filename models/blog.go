package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Blog stores long-form content with SEO metadata, optionally tied to a destination
type Blog struct {
	gorm.Model
	Title          string         `json:"title" gorm:"type:varchar(255);not null"`
	Slug           string         `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Content        string         `json:"content" gorm:"type:text;not null"`
	Excerpt        string         `json:"excerpt" gorm:"type:text"`
	SEOTitle       string         `json:"seo_title" gorm:"type:varchar(255)"`
	SEODescription string         `json:"seo_description" gorm:"type:varchar(500)"`
	Tags           datatypes.JSON `json:"tags"`
	DestinationID  *uint          `json:"destination_id" gorm:"index"`
	Views          int64          `json:"views" gorm:"default:0"`
	Published      bool           `json:"published" gorm:"default:false;index"`

	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
}

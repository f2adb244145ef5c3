// Package model defines the content store records and API shapes.
package model

import "time"

// Entity is implemented by every catalog record that is managed through the admin CRUD API.
type Entity interface {
	EntityID() uint
}

// Content kinds used in events, search documents and log fields.
const (
	KindService     = "service"
	KindProject     = "project"
	KindArticle     = "article"
	KindEvent       = "event"
	KindGallery     = "gallery"
	KindTestimonial = "testimonial"
	KindContact     = "contact"
	KindQuote       = "quote"
)

// PricingPlan is one tier offered for a service.
type PricingPlan struct {
	Plan     string   `json:"plan" binding:"required"`
	Price    string   `json:"price" binding:"required"`
	Features []string `json:"features"`
}

// Service is a service offering shown on /services.
type Service struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Title            string        `gorm:"type:varchar(255);not null" json:"title" binding:"required,min=3"`
	ImageURL         string        `gorm:"type:varchar(512)" json:"imageUrl"`
	ShortDescription string        `gorm:"type:varchar(255)" json:"short_description" binding:"required,min=10,max=100"`
	LongDescription  string        `gorm:"type:text" json:"long_description" binding:"required,min=20"`
	Featured         bool          `gorm:"not null;default:false" json:"featured"`
	KeyBenefits      []string      `gorm:"type:text;serializer:json" json:"key_benefits"`
	Pricing          []PricingPlan `gorm:"type:text;serializer:json" json:"pricing" binding:"omitempty,dive"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s Service) EntityID() uint { return s.ID }

func (Service) TableName() string {
	return "services"
}

// Project is a featured client project.
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title" binding:"required,min=3"`
	Summary      string    `gorm:"type:text" json:"summary" binding:"required,min=10"`
	ImageURL     string    `gorm:"type:varchar(512)" json:"imageUrl"`
	Technologies []string  `gorm:"type:text;serializer:json" json:"technologies"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p Project) EntityID() uint { return p.ID }

func (Project) TableName() string {
	return "projects"
}

// Article is a blog post.
type Article struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title" binding:"required,min=3"`
	Excerpt       string    `gorm:"type:text" json:"excerpt" binding:"required,min=10"`
	Content       string    `gorm:"type:longtext" json:"content" binding:"required,min=20"`
	Author        string    `gorm:"type:varchar(100)" json:"author" binding:"required"`
	PublishedDate string    `gorm:"type:varchar(32)" json:"published_date" binding:"required"`
	ImageURL      string    `gorm:"type:varchar(512)" json:"imageUrl"`
	Featured      bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a Article) EntityID() uint { return a.ID }

func (Article) TableName() string {
	return "articles"
}

// Event is an upcoming or past company event. Date and Time are display strings.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title" binding:"required,min=3"`
	Date        string    `gorm:"type:varchar(32)" json:"date" binding:"required"`
	Time        string    `gorm:"type:varchar(32)" json:"time" binding:"required"`
	Location    string    `gorm:"type:varchar(255)" json:"location" binding:"required,min=2"`
	Description string    `gorm:"type:text" json:"description" binding:"required,min=10"`
	IsPast      bool      `gorm:"not null;default:false" json:"is_past"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"imageUrl"`
	Promotional bool      `gorm:"not null;default:false" json:"promotional"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (e Event) EntityID() uint { return e.ID }

func (Event) TableName() string {
	return "events"
}

// GalleryCategories lists the accepted GalleryImage.Category values.
var GalleryCategories = []string{
	"Tech Conferences",
	"Client Meetups",
	"Product Launches",
	"Workshops & Training",
	"Award & Recognition",
	"People",
	"Technology",
	"Event",
}

// GalleryImage is a captioned photo in the gallery.
type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title" binding:"required,min=3"`
	ImageURL  string    `gorm:"type:varchar(512)" json:"imageUrl" binding:"required"`
	Caption   string    `gorm:"type:text" json:"caption"`
	Category  string    `gorm:"type:varchar(64);index" json:"category" binding:"required,oneof='Tech Conferences' 'Client Meetups' 'Product Launches' 'Workshops & Training' 'Award & Recognition' People Technology Event"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (g GalleryImage) EntityID() uint { return g.ID }

func (GalleryImage) TableName() string {
	return "gallery_images"
}

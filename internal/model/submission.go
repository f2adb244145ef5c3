package model

import "time"

// Testimonial statuses. Only approved testimonials are shown publicly.
const (
	TestimonialPending  = "pending"
	TestimonialApproved = "approved"
	TestimonialRejected = "rejected"
)

// Quote request statuses.
const (
	QuoteNew       = "new"
	QuoteContacted = "contacted"
	QuoteClosed    = "closed"
)

// Testimonial is client feedback submitted through the feedback form and moderated by an admin.
type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Company   string    `gorm:"type:varchar(100)" json:"company"`
	Country   string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	Role      string    `gorm:"type:varchar(100)" json:"role"`
	Message   string    `gorm:"type:text" json:"message"`
	Rating    int       `gorm:"not null;default:0" json:"rating,omitempty"`
	Status    string    `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	Featured  bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// ContactSubmission is an inquiry sent through the contact form.
type ContactSubmission struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Company    string    `gorm:"type:varchar(100)" json:"company"`
	Country    string    `gorm:"type:varchar(100)" json:"country"`
	JobTitle   string    `gorm:"type:varchar(100)" json:"jobTitle"`
	Message    string    `gorm:"type:text" json:"message"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	ReadStatus bool      `gorm:"not null;default:false" json:"read_status"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// QuoteRequest is a pricing request for one service. IDs are random UUIDs.
type QuoteRequest struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ServiceID    uint      `gorm:"not null;index" json:"serviceId"`
	ServiceTitle string    `gorm:"type:varchar(255)" json:"serviceTitle"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	SelectedPlan string    `gorm:"type:varchar(100)" json:"selectedPlan"`
	Message      string    `gorm:"type:text" json:"message"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	Status       string    `gorm:"type:varchar(16);not null;default:new" json:"status"`
}

func (QuoteRequest) TableName() string {
	return "quote_requests"
}

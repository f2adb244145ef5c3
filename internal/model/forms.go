package model

// ContactForm is the body of POST /api/v1/contact.
type ContactForm struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Country  string `json:"country" binding:"required,min=2"`
	Company  string `json:"company" binding:"required,min=2"`
	JobTitle string `json:"jobTitle" binding:"required,min=2"`
	Message  string `json:"message" binding:"required,min=10"`
}

// QuoteForm is the body of POST /api/v1/quotes.
type QuoteForm struct {
	ServiceID    uint   `json:"serviceId" binding:"required"`
	FullName     string `json:"fullName" binding:"required,min=2"`
	Email        string `json:"email" binding:"required,email"`
	SelectedPlan string `json:"selectedPlan" binding:"required"`
	Message      string `json:"message" binding:"required,min=10"`
}

// FeedbackForm is the body of POST /api/v1/feedback.
type FeedbackForm struct {
	Name    string `json:"name" binding:"required,min=2"`
	Company string `json:"company" binding:"required,min=2"`
	Role    string `json:"role" binding:"required,min=2"`
	Country string `json:"country"`
	Message string `json:"message" binding:"required,min=10"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// EventForm is an event plus the option to mirror it into the gallery.
type EventForm struct {
	Event
	AddToGallery bool `json:"addToGallery"`
}

// StatusUpdate is the body of the admin status endpoints.
type StatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// FeaturedUpdate is the body of PUT /admin/testimonials/:id/featured.
type FeaturedUpdate struct {
	Featured *bool `json:"featured" binding:"required"`
}

// ReadUpdate is the body of PUT /admin/inquiries/:id/read.
type ReadUpdate struct {
	Read *bool `json:"read" binding:"required"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the body of POST /api/v1/auth/refreshToken.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

package model

// SearchDocument is the shape of a catalog item in the site search index.
type SearchDocument struct {
	DocID    string `json:"doc_id"` // <kind>-<id>
	Kind     string `json:"kind"`
	ItemID   uint   `json:"item_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url,omitempty"`
}

// SearchHit is one search result returned to the site.
type SearchHit struct {
	Kind   string  `json:"kind"`
	ItemID uint    `json:"itemId"`
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Score  float64 `json:"score"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	PendingFeedback int64               `json:"pendingFeedback"`
	TotalArticles   int64               `json:"totalArticles"`
	TotalServices   int64               `json:"totalServices"`
	TotalProjects   int64               `json:"totalProjects"`
	NewInquiries    int64               `json:"newInquiries"`
	NewQuotes       int64               `json:"newQuotes"`
	RecentInquiries []ContactSubmission `json:"recentInquiries"`
	InquiryStats    []DailyCount        `json:"inquiryStats"`
	Notifications   map[string]int64    `json:"notifications"`
}

// DailyCount is the number of inquiries received on one day.
type DailyCount struct {
	Date      string `json:"date"` // "Jan 2"
	Day       string `json:"day"`  // "Mon"
	Inquiries int    `json:"inquiries"`
}

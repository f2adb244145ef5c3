package handler

import (
	"net/http"

	"ai-solutions-go/internal/middleware"
	"ai-solutions-go/internal/model"
	"ai-solutions-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Chat        *ChatHandler
	Catalog     *CatalogHandler
	Submissions *SubmissionHandler
	Search      *SearchHandler
	Auth        *AuthHandler
	Admin       *AdminHandler
	Moderation  *ModerationHandler
	Services    *ContentHandler[model.Service]
	Projects    *ContentHandler[model.Project]
	Articles    *ContentHandler[model.Article]
	Events      *EventHandler
	Gallery     *ContentHandler[model.GalleryImage]
}

// NewRouter builds the gin engine with every route of the site backend.
func NewRouter(h Handlers, jwtManager *token.JWTManager, blacklist middleware.Blacklist) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/chat", h.Chat.Submit)
		api.GET("/chat/ws", h.Chat.Socket)

		api.GET("/services", h.Catalog.ListServices)
		api.GET("/services/featured", h.Catalog.FeaturedServices)
		api.GET("/services/:id", h.Catalog.GetService)
		api.GET("/projects", h.Catalog.ListProjects)
		api.GET("/projects/:id", h.Catalog.GetProject)
		api.GET("/articles", h.Catalog.ListArticles)
		api.GET("/articles/featured", h.Catalog.FeaturedArticles)
		api.GET("/articles/:id", h.Catalog.GetArticle)
		api.GET("/events", h.Catalog.ListEvents)
		api.GET("/events/:id", h.Catalog.GetEvent)
		api.GET("/gallery", h.Catalog.ListGallery)
		api.GET("/testimonials", h.Catalog.ListTestimonials)
		api.GET("/testimonials/featured", h.Catalog.FeaturedTestimonials)
		api.GET("/search", h.Search.Search)

		api.POST("/contact", h.Submissions.Contact)
		api.POST("/quotes", h.Submissions.Quote)
		api.POST("/feedback", h.Submissions.Feedback)

		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refreshToken", h.Auth.RefreshToken)
			auth.POST("/logout", middleware.AuthMiddleware(jwtManager, blacklist), h.Auth.Logout)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtManager, blacklist), middleware.AdminAuthMiddleware())
		{
			admin.GET("/dashboard", h.Admin.Dashboard)
			admin.POST("/media", h.Admin.UploadMedia)

			mountContent(admin.Group("/services"), h.Services)
			mountContent(admin.Group("/projects"), h.Projects)
			mountContent(admin.Group("/articles"), h.Articles)
			mountContent(admin.Group("/gallery"), h.Gallery)

			events := admin.Group("/events")
			events.GET("", h.Events.List)
			events.GET("/:id", h.Events.Get)
			events.POST("", h.Events.Create)
			events.PUT("/:id", h.Events.Update)
			events.DELETE("/:id", h.Events.Delete)

			testimonials := admin.Group("/testimonials")
			testimonials.GET("", h.Moderation.ListTestimonials)
			testimonials.PUT("/:id/status", h.Moderation.SetTestimonialStatus)
			testimonials.PUT("/:id/featured", h.Moderation.SetTestimonialFeatured)
			testimonials.DELETE("/:id", h.Moderation.DeleteTestimonial)

			inquiries := admin.Group("/inquiries")
			inquiries.GET("", h.Moderation.ListInquiries)
			inquiries.PUT("/:id/read", h.Moderation.SetInquiryRead)
			inquiries.DELETE("/:id", h.Moderation.DeleteInquiry)

			quotes := admin.Group("/quotes")
			quotes.GET("", h.Moderation.ListQuotes)
			quotes.PUT("/:id/status", h.Moderation.SetQuoteStatus)
			quotes.DELETE("/:id", h.Moderation.DeleteQuote)
		}
	}
	return r
}

func mountContent[T model.Entity](g *gin.RouterGroup, h *ContentHandler[T]) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

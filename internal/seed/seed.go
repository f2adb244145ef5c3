// Package seed loads the demo catalog into an empty content store.
package seed

import (
	"context"
	"fmt"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/pkg/log"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Catalog is the content of the seed file. Field names follow the JSON names of the models.
type Catalog struct {
	Services     []model.Service           `json:"services"`
	Projects     []model.Project           `json:"projects"`
	Articles     []model.Article           `json:"articles"`
	Events       []model.Event             `json:"events"`
	Gallery      []model.GalleryImage      `json:"gallery"`
	Testimonials []model.Testimonial       `json:"testimonials"`
	Contacts     []model.ContactSubmission `json:"contact_submissions"`
	Quotes       []model.QuoteRequest      `json:"quote_requests"`
}

// Load reads the YAML seed file at path.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var catalog Catalog
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &catalog,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &catalog, nil
}

// Run inserts the catalog at path when the services table is empty. It reports whether
// anything was inserted.
func Run(ctx context.Context, db *gorm.DB, path string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Service{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		log.Infof("seed: %d services already present, skipping", count)
		return false, nil
	}

	catalog, err := Load(path)
	if err != nil {
		return false, err
	}
	if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insert(tx, catalog)
	}); err != nil {
		return false, err
	}
	log.Infow("seed: demo catalog inserted",
		"services", len(catalog.Services),
		"projects", len(catalog.Projects),
		"articles", len(catalog.Articles),
		"events", len(catalog.Events),
		"gallery", len(catalog.Gallery),
		"testimonials", len(catalog.Testimonials),
	)
	return true, nil
}

func insert(tx *gorm.DB, c *Catalog) error {
	if err := createAll(tx, "services", c.Services); err != nil {
		return err
	}
	if err := createAll(tx, "projects", c.Projects); err != nil {
		return err
	}
	if err := createAll(tx, "articles", c.Articles); err != nil {
		return err
	}
	if err := createAll(tx, "events", c.Events); err != nil {
		return err
	}
	if err := createAll(tx, "gallery", c.Gallery); err != nil {
		return err
	}
	for i := range c.Testimonials {
		if c.Testimonials[i].Status == "" {
			c.Testimonials[i].Status = model.TestimonialPending
		}
	}
	if err := createAll(tx, "testimonials", c.Testimonials); err != nil {
		return err
	}
	if err := createAll(tx, "contact submissions", c.Contacts); err != nil {
		return err
	}

	// Quotes reference services by title since seeded ids depend on the store.
	byTitle := make(map[string]uint, len(c.Services))
	for _, s := range c.Services {
		byTitle[s.Title] = s.ID
	}
	for i := range c.Quotes {
		q := &c.Quotes[i]
		id, ok := byTitle[q.ServiceTitle]
		if !ok {
			return fmt.Errorf("seed quote references unknown service %q", q.ServiceTitle)
		}
		q.ServiceID = id
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.Status == "" {
			q.Status = model.QuoteNew
		}
	}
	return createAll(tx, "quote requests", c.Quotes)
}

func createAll[T any](tx *gorm.DB, name string, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if err := tx.Create(&items).Error; err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}

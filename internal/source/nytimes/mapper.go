package nytimes

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/tonyawino/News-App/internal/domain"
)

// publishedDateLayout is the date format of the most popular API.
const publishedDateLayout = "2006-01-02"

// ToDomain maps one raw API item to the domain model. The category is the
// section, with the subsection appended when present. Images keep the last
// media-metadata url per media entry, which the API orders smallest to
// largest.
func ToDomain(raw RawNews) (domain.News, error) {
	publishDate, err := time.Parse(publishedDateLayout, raw.PublishedDate)
	if err != nil {
		return domain.News{}, err
	}

	images := lo.FilterMap(raw.Media, func(m RawMedia, _ int) (domain.NewsImage, bool) {
		if m.Type != "image" || len(m.Metadata) == 0 {
			return domain.NewsImage{}, false
		}
		return domain.NewsImage{
			Caption:   m.Caption,
			Copyright: m.Copyright,
			URL:       m.Metadata[len(m.Metadata)-1].URL,
		}, true
	})

	return domain.News{
		ID:          raw.ID,
		Title:       raw.Title,
		Abstract:    raw.Abstract,
		PublishDate: publishDate,
		Category:    strings.TrimSpace(raw.Section + " " + raw.Subsection),
		Author:      raw.Byline,
		Source:      raw.Source,
		URL:         raw.URL,
		Images:      images,
	}, nil
}

// FromDomain maps a domain item back to the raw API shape. Only the fields
// the domain model keeps survive the trip; the category lands in the section.
func FromDomain(n domain.News) RawNews {
	media := lo.Map(n.Images, func(img domain.NewsImage, _ int) RawMedia {
		return RawMedia{
			Type:      "image",
			Subtype:   "photo",
			Caption:   img.Caption,
			Copyright: img.Copyright,
			Metadata: []RawMediaMetadata{
				{URL: img.URL, Format: "mediumThreeByTwo440"},
			},
		}
	})

	return RawNews{
		ID:            n.ID,
		URL:           n.URL,
		Source:        n.Source,
		PublishedDate: n.PublishDate.Format(publishedDateLayout),
		Section:       n.Category,
		Byline:        n.Author,
		Type:          "Article",
		Title:         n.Title,
		Abstract:      n.Abstract,
		Media:         media,
	}
}

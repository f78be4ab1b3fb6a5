package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultAuthor is used when a stored post omits the author field.
const DefaultAuthor = "Team"

// BlogPost represents a document in the "blogpost" collection. Posts are
// seeded externally; this API only reads them.
type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	Content    string             `bson:"content" json:"content"`
	Tags       []string           `bson:"tags" json:"tags"`
	Author     string             `bson:"author" json:"author"`
	CoverImage *string            `bson:"cover_image,omitempty" json:"cover_image"` // Pointer for optional field
	Published  bool               `bson:"published" json:"-"`
}

// ApplyDefaults fills canonical defaults for fields a stored document may omit.
func (p *BlogPost) ApplyDefaults() {
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// BlogSummary is the listing projection: everything but the post body.
type BlogSummary struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Tags       []string `json:"tags"`
	Author     string   `json:"author"`
	CoverImage *string  `json:"cover_image"`
}

// BlogDetail is the single-post response: the summary plus content.
type BlogDetail struct {
	BlogSummary
	Content string `json:"content"`
}

// Summary converts a stored post into its listing projection.
func (p *BlogPost) Summary() BlogSummary {
	return BlogSummary{
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Tags:       p.Tags,
		Author:     p.Author,
		CoverImage: p.CoverImage,
	}
}

// Detail converts a stored post into the single-post response.
func (p *BlogPost) Detail() BlogDetail {
	return BlogDetail{BlogSummary: p.Summary(), Content: p.Content}
}

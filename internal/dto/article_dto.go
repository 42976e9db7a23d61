package dto

// ArticleCreateRequest is the admin article creation payload.
type ArticleCreateRequest struct {
	Category        string `json:"category" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	Author          string `json:"author"`
	ExternalLink    string `json:"external_link"`
	FileURL         string `json:"file_url"`
	PublicationDate string `json:"publication_date"`
}

// ArticleUpdateRequest carries a partial field set; nil fields are untouched.
type ArticleUpdateRequest struct {
	Category        *string `json:"category"`
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	Author          *string `json:"author"`
	ExternalLink    *string `json:"external_link"`
	FileURL         *string `json:"file_url"`
	PublicationDate *string `json:"publication_date"`
}

// Fields maps the supplied values onto their column names. Only these columns
// may be rewritten by a partial update.
func (r ArticleUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	if r.Author != nil {
		fields["author"] = *r.Author
	}
	if r.ExternalLink != nil {
		fields["external_link"] = *r.ExternalLink
	}
	if r.FileURL != nil {
		fields["file_url"] = *r.FileURL
	}
	if r.PublicationDate != nil {
		fields["publication_date"] = *r.PublicationDate
	}
	return fields
}

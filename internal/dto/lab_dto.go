package dto

// LabCreateRequest is the admin payload for adding a lab listing.
type LabCreateRequest struct {
	Name          string `json:"name" validate:"required"`
	LeadName      string `json:"lead_name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	ResearchAreas string `json:"research_areas"`
}

// LabUpdateRequest carries partial lab listing changes.
type LabUpdateRequest struct {
	Name          *string `json:"name"`
	LeadName      *string `json:"lead_name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	ResearchAreas *string `json:"research_areas"`
}

// Fields maps the supplied values onto their column names.
func (r LabUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.LeadName != nil {
		fields["lead_name"] = *r.LeadName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.ResearchAreas != nil {
		fields["research_areas"] = *r.ResearchAreas
	}
	return fields
}

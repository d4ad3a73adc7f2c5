package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NGOCategory classifies the primary field an organization works in.
type NGOCategory string

const (
	CategoryHealth      NGOCategory = "health"
	CategoryEducation   NGOCategory = "education"
	CategoryFood        NGOCategory = "food"
	CategoryShelter     NGOCategory = "shelter"
	CategoryEnvironment NGOCategory = "environment"
	CategoryEmergency   NGOCategory = "emergency"
)

// Contact holds how an NGO can be reached.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SocialLinks holds public web presence URLs.
type SocialLinks struct {
	Website   string `json:"website"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// NGOMetrics holds self-reported impact numbers.
type NGOMetrics struct {
	TotalBeneficiaries int     `json:"totalBeneficiaries" validate:"min=0"`
	Rating             float64 `json:"rating" validate:"min=0,max=5"`
}

// NGO is a registered organization that receives donations.
type NGO struct {
	ID           string      `json:"id"`
	Name         string      `json:"name" validate:"required"`
	Country      string      `json:"country" validate:"required"`
	Category     NGOCategory `json:"category" validate:"required,oneof=health education food shelter environment emergency"`
	IsVerified   bool        `json:"isVerified"`
	FoundedAt    *time.Time  `json:"foundedAt,omitempty"`
	Tags         []string    `json:"tags"`
	Contact      Contact     `json:"contact"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	Metrics      NGOMetrics  `json:"metrics"`
	Programs     []string    `json:"programs"`
	ServiceAreas []string    `json:"serviceAreas"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

var lowercaser = cases.Lower(language.Und)

// Normalize trims string fields and lowercases the name before storage.
func (n *NGO) Normalize() {
	n.Name = lowercaser.String(strings.TrimSpace(n.Name))
	n.Country = strings.TrimSpace(n.Country)
	n.Contact.Email = strings.TrimSpace(n.Contact.Email)
	n.Contact.Phone = strings.TrimSpace(n.Contact.Phone)
	n.Contact.Address = strings.TrimSpace(n.Contact.Address)
}

// NGOPatch is a partial update; nil fields are left unchanged.
type NGOPatch struct {
	Name         *string      `json:"name"`
	Country      *string      `json:"country"`
	Category     *NGOCategory `json:"category"`
	IsVerified   *bool        `json:"isVerified"`
	FoundedAt    *time.Time   `json:"foundedAt"`
	Tags         *[]string    `json:"tags"`
	Contact      *Contact     `json:"contact"`
	SocialLinks  *SocialLinks `json:"socialLinks"`
	Metrics      *NGOMetrics  `json:"metrics"`
	Programs     *[]string    `json:"programs"`
	ServiceAreas *[]string    `json:"serviceAreas"`
}

// Apply merges the patch into the record. The merged record must be
// revalidated in full afterwards.
func (p NGOPatch) Apply(n *NGO) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Country != nil {
		n.Country = *p.Country
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.IsVerified != nil {
		n.IsVerified = *p.IsVerified
	}
	if p.FoundedAt != nil {
		n.FoundedAt = p.FoundedAt
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.Contact != nil {
		n.Contact = *p.Contact
	}
	if p.SocialLinks != nil {
		n.SocialLinks = *p.SocialLinks
	}
	if p.Metrics != nil {
		n.Metrics = *p.Metrics
	}
	if p.Programs != nil {
		n.Programs = *p.Programs
	}
	if p.ServiceAreas != nil {
		n.ServiceAreas = *p.ServiceAreas
	}
}

package app

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"mwalali_homes/internal/domain"
	"mwalali_homes/internal/mailto"
)

const DefaultProject = "Brookside Oak"

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Project string `json:"project"`
	Message string `json:"message"`
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

// InquiryService turns form input into mailto links; nothing is sent or stored.
type InquiryService struct {
	to      string
	catalog domain.Catalog
}

func NewInquiryService(to string, c domain.Catalog) *InquiryService {
	return &InquiryService{to: to, catalog: c}
}

func (s *InquiryService) Contact(f ContactForm) (domain.Inquiry, error) {
	f = ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Project: strings.TrimSpace(f.Project),
		Message: strings.TrimSpace(f.Message),
	}
	for _, req := range []struct{ field, val string }{
		{"name", f.Name}, {"email", f.Email}, {"phone", f.Phone},
	} {
		if req.val == "" {
			return domain.Inquiry{}, &ValidationError{Field: req.field, Reason: "is required"}
		}
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return domain.Inquiry{}, &ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	if f.Project == "" {
		f.Project = DefaultProject
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nProject of Interest: %s\n\nMessage:\n%s",
		f.Name, f.Email, f.Phone, f.Project, f.Message)
	return s.build("Website Inquiry: "+f.Project, body), nil
}

func (s *InquiryService) PaymentPlan(propertyID string) (domain.Inquiry, error) {
	p, err := s.catalog.Get(propertyID)
	if err != nil {
		return domain.Inquiry{}, err
	}
	return s.build(
		"Payment Plan Request for "+p.Title,
		fmt.Sprintf("I am interested in requesting a payment plan for %s. Please provide more details.", p.Title),
	), nil
}

func (s *InquiryService) build(subject, body string) domain.Inquiry {
	m := mailto.Message{To: s.to, Subject: subject, Body: body}
	return domain.Inquiry{
		Reference: uuid.NewString(),
		To:        m.To,
		Subject:   m.Subject,
		Body:      m.Body,
		Href:      m.Href(),
	}
}

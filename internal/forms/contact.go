// Package forms holds the form controllers: field values, touched state and the
// pure validation that derives each form's error map.
package forms

import (
	"maps"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/validation"
)

type ContactField string

const (
	ContactFirstName    ContactField = "firstName"
	ContactLastName     ContactField = "lastName"
	ContactMobileNumber ContactField = "mobileNumber"
	ContactEmail        ContactField = "email"
)

var ContactFields = []ContactField{ContactFirstName, ContactLastName, ContactMobileNumber, ContactEmail}

var contactSchema = validation.Schema[ContactField]{
	Fields: ContactFields,
	Messages: map[ContactField]map[string]string{
		ContactFirstName: {"required": "First name is required."},
		ContactLastName:  {"required": "Last name is required."},
		ContactMobileNumber: {
			"required": "Mobile number is required.",
			"mobile10": "Mobile number must be 10 digits.",
		},
		ContactEmail: {
			"required": "Email is required.",
			"email":    "Invalid email address",
		},
	},
}

// Contact is the contact-details form. Methods return updated copies.
type Contact struct {
	Values  models.ContactDetails
	Touched map[ContactField]bool
}

func NewContact() Contact {
	return Contact{Touched: map[ContactField]bool{}}
}

func ParseContactField(s string) (ContactField, error) {
	for _, f := range ContactFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", domain.ValidationError{Field: "field", Msg: "unknown contact field " + s}
}

// Set stores value for field. Editing alone does not mark the field touched.
func (c Contact) Set(field ContactField, value string) (Contact, error) {
	out := c.clone()
	switch field {
	case ContactFirstName:
		out.Values.FirstName = value
	case ContactLastName:
		out.Values.LastName = value
	case ContactMobileNumber:
		out.Values.MobileNumber = value
	case ContactEmail:
		out.Values.Email = value
	default:
		return c, domain.ValidationError{Field: "field", Msg: "unknown contact field " + string(field)}
	}
	return out, nil
}

// Blur marks field touched.
func (c Contact) Blur(field ContactField) (Contact, error) {
	if _, err := ParseContactField(string(field)); err != nil {
		return c, err
	}
	out := c.clone()
	out.Touched[field] = true
	return out, nil
}

// TouchAll marks every field touched so all errors become visible.
func (c Contact) TouchAll() Contact {
	out := c.clone()
	for _, f := range ContactFields {
		out.Touched[f] = true
	}
	return out
}

// Errors validates the current values.
func (c Contact) Errors(v *validation.Validator) validation.Errors[ContactField] {
	return ValidateContact(v, c.Values)
}

// Visible returns the errors of touched fields only.
func (c Contact) Visible(v *validation.Validator) validation.Errors[ContactField] {
	return c.Errors(v).Only(func(f ContactField) bool { return c.Touched[f] })
}

func (c Contact) clone() Contact {
	out := c
	out.Touched = maps.Clone(c.Touched)
	if out.Touched == nil {
		out.Touched = map[ContactField]bool{}
	}
	return out
}

func ValidateContact(v *validation.Validator, values models.ContactDetails) validation.Errors[ContactField] {
	return validation.Check(v, contactSchema, values)
}

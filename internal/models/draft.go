package models

import "github.com/avolkovs/staffdir/internal/format"

// Draft is the editable form of an employee record: every field a string,
// dates in ISO year-month-day while being edited. The json tags double as
// the field keys used in validation errors and field-changed intents.
type Draft struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName" validate:"notblank"`
	LastName       string `json:"lastName" validate:"notblank"`
	EmploymentDate string `json:"employment_date" validate:"required,editdate"`
	BirthDate      string `json:"birth_date" validate:"required,editdate"`
	Phone          string `json:"phone" validate:"required,dirphone"`
	Email          string `json:"email" validate:"required,simpleemail"`
	Department     string `json:"department" validate:"oneof=Tech Analytics"`
	Position       string `json:"position" validate:"oneof=Junior Medior Senior"`
}

// NewDraft prepares a stored record for editing.
func NewDraft(e Employee) Draft {
	return Draft{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		EmploymentDate: format.ToISODate(e.EmploymentDate),
		BirthDate:      format.ToISODate(e.BirthDate),
		Phone:          e.Phone,
		Email:          e.Email,
		Department:     e.Department,
		Position:       e.Position,
	}
}

// Employee converts the draft back to its canonical stored form.
func (d Draft) Employee() Employee {
	return Employee{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		EmploymentDate: format.ToStorageDate(d.EmploymentDate),
		BirthDate:      format.ToStorageDate(d.BirthDate),
		Phone:          d.Phone,
		Email:          d.Email,
		Department:     d.Department,
		Position:       d.Position,
	}
}

// Set assigns the field named by key (its json tag). Unknown keys are
// reported back to the caller instead of being dropped silently.
func (d *Draft) Set(key, value string) bool {
	switch key {
	case "firstName":
		d.FirstName = value
	case "lastName":
		d.LastName = value
	case "employment_date":
		d.EmploymentDate = value
	case "birth_date":
		d.BirthDate = value
	case "phone":
		d.Phone = value
	case "email":
		d.Email = value
	case "department":
		d.Department = value
	case "position":
		d.Position = value
	default:
		return false
	}
	return true
}

// Get returns the field named by key.
func (d Draft) Get(key string) string {
	switch key {
	case "firstName":
		return d.FirstName
	case "lastName":
		return d.LastName
	case "employment_date":
		return d.EmploymentDate
	case "birth_date":
		return d.BirthDate
	case "phone":
		return d.Phone
	case "email":
		return d.Email
	case "department":
		return d.Department
	case "position":
		return d.Position
	}
	return ""
}

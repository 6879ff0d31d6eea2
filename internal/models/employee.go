// Package models defines the employee record and its editable draft form.
package models

import (
	"strconv"
	"strings"
)

// Department classifies the org unit an employee belongs to.
type Department string

const (
	DepartmentTech      Department = "Tech"
	DepartmentAnalytics Department = "Analytics"
)

// Position classifies seniority.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Employee is the canonical record as persisted in the remote collection.
// Dates are stored in day/month/year form, phone in the +(90) XXX XXX XX XX
// form; conversion to and from editable representations lives in the format
// package.
type Employee struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	EmploymentDate string `json:"employment_date"`
	BirthDate      string `json:"birth_date"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Position       string `json:"position"`
}

// Key derives the identity used for upsert and delete matching: the id when
// assigned, else the email, else firstName_lastName. The key is stable across
// edits that leave those fields alone.
func (e Employee) Key() string {
	if e.ID != 0 {
		return strconv.Itoa(e.ID)
	}
	if e.Email != "" {
		return e.Email
	}
	return e.FirstName + "_" + e.LastName
}

// FullName returns "First Last" with outer whitespace trimmed, as shown in
// confirmation prompts.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// NextID returns max(existing ids) + 1.
func NextID(list []Employee) int {
	max := 0
	for _, e := range list {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// Merge overlays incoming onto existing field by field. Incoming wins except
// where it carries a zero value, so a partial update cannot blank out fields
// and an unassigned incoming id keeps the stored one.
func Merge(existing, incoming Employee) Employee {
	out := existing
	if incoming.ID != 0 {
		out.ID = incoming.ID
	}
	if incoming.FirstName != "" {
		out.FirstName = incoming.FirstName
	}
	if incoming.LastName != "" {
		out.LastName = incoming.LastName
	}
	if incoming.EmploymentDate != "" {
		out.EmploymentDate = incoming.EmploymentDate
	}
	if incoming.BirthDate != "" {
		out.BirthDate = incoming.BirthDate
	}
	if incoming.Phone != "" {
		out.Phone = incoming.Phone
	}
	if incoming.Email != "" {
		out.Email = incoming.Email
	}
	if incoming.Department != "" {
		out.Department = incoming.Department
	}
	if incoming.Position != "" {
		out.Position = incoming.Position
	}
	return out
}

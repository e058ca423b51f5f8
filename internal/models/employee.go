// Package models defines the employee roster types shared by the record
// store, the relay and the operator client.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/timex"
)

// Employee is a roster record. ID is assigned by the store on insert and
// never changes afterwards.
type Employee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeeNumber string `json:"employeeNumber"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// EmployeeFields is the writable part of an Employee: everything but the
// identity. It is what insert and update requests carry.
type EmployeeFields struct {
	Name           string `json:"name"`
	EmployeeNumber string `json:"employeeNumber"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// Fields returns the writable part of e.
func (e Employee) Fields() EmployeeFields {
	return EmployeeFields{
		Name:           e.Name,
		EmployeeNumber: e.EmployeeNumber,
		Email:          e.Email,
		Phone:          e.Phone,
	}
}

// WithID combines f with a store-assigned identity.
func (f EmployeeFields) WithID(id string) Employee {
	return Employee{
		ID:             id,
		Name:           f.Name,
		EmployeeNumber: f.EmployeeNumber,
		Email:          f.Email,
		Phone:          f.Phone,
	}
}

// Validate checks the presence rules: name and email must be non-empty
// after trimming. Email format is not checked.
func (f EmployeeFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	return nil
}

// EmailPayload is the body posted to the relay and forwarded by it to the
// automation webhook.
type EmailPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
	Timestamp  string `json:"timestamp"`
}

// NewEmailPayload builds the notification payload for e. The employee
// number is used as EmployeeID when present, the store identity otherwise.
func NewEmailPayload(e Employee, now time.Time) EmailPayload {
	employeeID := e.EmployeeNumber
	if employeeID == "" {
		employeeID = e.ID
	}
	return EmailPayload{
		Name:       e.Name,
		Email:      e.Email,
		EmployeeID: employeeID,
		Department: common.DefaultDepartment,
		Timestamp:  timex.FormatISO8601(now),
	}
}

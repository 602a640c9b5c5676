package dto

import (
	"time"

	"github.com/google/uuid"
)

// Result is the envelope every service operation returns. Expected failures
// (validation, missing rows) set HasError and keep the classified cause in
// Err for status mapping; Data is nil then.
type Result[T any] struct {
	HasError bool   `json:"hasError"`
	Message  string `json:"message"`
	Data     *T     `json:"data,omitempty"`
	Err      error  `json:"-"`
}

// Success builds a successful result.
func Success[T any](message string, data *T) Result[T] {
	return Result[T]{Message: message, Data: data}
}

// Failure builds an error result carrying cause.
func Failure[T any](message string, cause error) Result[T] {
	return Result[T]{HasError: true, Message: message, Err: cause}
}

// Audit is the read-only block of identity and audit fields embedded in
// every DTO. Only ID and IsActive are read when a DTO is mapped back to an
// entity; the rest is owned by the service.
type Audit struct {
	ID            uuid.UUID `json:"id"`
	CreatedBy     uuid.UUID `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
	CreateByDate  time.Time `json:"createByDate"`
	UpdatedBy     uuid.UUID `json:"updatedBy"`
	UpdatedByName string    `json:"updatedByName"`
	UpdateByDate  time.Time `json:"updateByDate"`
	IsActive      bool      `json:"isActive"`
	IsDeleted     bool      `json:"isDeleted"`
}

func (a Audit) GetID() uuid.UUID { return a.ID }

func (a *Audit) SetID(id uuid.UUID) { a.ID = id }

// Identified is implemented by every DTO through the embedded Audit.
type Identified interface {
	GetID() uuid.UUID
}

// SearchPaginationDTO is a paging request with optional search criteria.
type SearchPaginationDTO[S any] struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Search    *S  `json:"search"`
}

// Package constants holds the fixed messages returned in service results.
package constants

const (
	InvalidString = "invalid string"
	InvalidData   = "invalid data"
	NotFound      = "not found"
	Error         = "error"

	CreateSuccess = "create succeeded"
	UpdateSuccess = "update succeeded"
	DeleteSuccess = "delete succeeded"
	ListSuccess   = "list succeeded"
)

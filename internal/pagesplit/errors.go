package pagesplit

import "errors"

var (
	ErrNavNotFound      = errors.New("navigation block not found")
	ErrMainNotFound     = errors.New("main container not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrBoundaryMismatch = errors.New("section boundary does not match document structure")
	ErrSectionClass     = errors.New("section opening tag lacks the section class")
	ErrOverlap          = errors.New("section ranges overlap")
	ErrVerify           = errors.New("generated page failed verification")
	ErrUnknownPage      = errors.New("unknown page")
)

package catalog

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
)

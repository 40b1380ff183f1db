// Package types holds the request and response shapes exchanged with the ERP backend.
package types

// =============================================================================
// PAGINATION
// =============================================================================

// PageRequest is embedded in every paginated request. Pages are zero based.
type PageRequest struct {
	Page *int `json:"page,omitempty" validate:"omitempty,min=0"`
	Size *int `json:"size,omitempty" validate:"omitempty,min=1"`
}

// NewPageRequest returns a PageRequest, leaving fields unset (server default) when negative/zero values are supplied.
func NewPageRequest(page, size int) PageRequest {
	var pr PageRequest
	if page >= 0 {
		pr.Page = &page
	}
	if size > 0 {
		pr.Size = &size
	}
	return pr
}

type SortObject struct {
	Empty    bool `json:"empty"`
	Unsorted bool `json:"unsorted"`
	Sorted   bool `json:"sorted"`
}

type PageableObject struct {
	Offset     int64      `json:"offset"`
	Sort       SortObject `json:"sort"`
	Unpaged    bool       `json:"unpaged"`
	PageSize   int        `json:"pageSize"`
	PageNumber int        `json:"pageNumber"`
	Paged      bool       `json:"paged"`
}

// Page is one page of a paginated list result
type Page[T any] struct {
	TotalPages       int            `json:"totalPages"`
	TotalElements    int64          `json:"totalElements"`
	Size             int            `json:"size"`
	Content          []T            `json:"content"`
	Number           int            `json:"number"`
	Sort             SortObject     `json:"sort"`
	NumberOfElements int            `json:"numberOfElements"`
	First            bool           `json:"first"`
	Last             bool           `json:"last"`
	Pageable         PageableObject `json:"pageable"`
	Empty            bool           `json:"empty"`
}

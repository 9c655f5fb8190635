package model

// Product is reference data owned by the core module.
type Product struct {
	Code string `db:"code" json:"id"`
	Name string `db:"name" json:"name"`
}

// Customer is reference data owned by the core module.
type Customer struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}

type CustomerListResponse struct {
	Items      []Customer `json:"items"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
}

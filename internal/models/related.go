package models

// Product mirrors the backend 'products' resource, limited to the fields
// batch enrichment reads.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"category_name"`
}

// Warehouse mirrors the backend 'warehouses' resource.
type Warehouse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

package dto

// BranchResponse fila de GET /branches.
type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductWithStockResponse fila de GET /products: producto más el mapa
// sucursal → cantidad. Un producto sin existencias lleva el mapa vacío, no null.
type ProductWithStockResponse struct {
	ID            string         `json:"id"`
	SKU           string         `json:"sku"`
	Name          string         `json:"name"`
	SupplierID    string         `json:"supplierId"`
	StockByBranch map[string]int `json:"stockByBranch"`
}

// SaleResponse fila de GET /sales.
type SaleResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Date      string `json:"date"`
	Quantity  int    `json:"quantity"`
}

package dto

// Cuerpos de ingesta: {"data": [...]}. El clientId de cada registro lo impone
// el middleware de autenticación; cualquier valor enviado por el conector se
// ignora.

// BranchRecord registro de sucursal en una ingesta.
type BranchRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductRecord registro de producto en una ingesta.
type ProductRecord struct {
	ID         string `json:"id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	SupplierID string `json:"supplierId"`
}

// StockRecord registro de existencia en una ingesta. Quantity es foto absoluta.
type StockRecord struct {
	ProductID string `json:"productId"`
	BranchID  string `json:"branchId"`
	Quantity  int    `json:"quantity"`
}

// SaleRecord registro de venta en una ingesta. Date en formato "YYYY-MM-DD".
type SaleRecord struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Date      string `json:"date"`
	Quantity  int    `json:"quantity"`
}

// Cuerpos por colección.
type (
	BranchIngestRequest struct {
		Data []BranchRecord `json:"data"`
	}
	ProductIngestRequest struct {
		Data []ProductRecord `json:"data"`
	}
	StockIngestRequest struct {
		Data []StockRecord `json:"data"`
	}
	SaleIngestRequest struct {
		Data []SaleRecord `json:"data"`
	}
)

// IngestResponse confirma la recepción del lote completo. Received es la
// cantidad de registros recibidos, sin distinguir insert de update.
type IngestResponse struct {
	Status   string `json:"status"`
	Received int    `json:"received"`
}

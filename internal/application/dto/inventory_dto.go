package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRawMaterialRequest body para POST /api/materials/raw.
type CreateRawMaterialRequest struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	StockLevel  int              `json:"stock_level"`
	Unit        string           `json:"unit"`
	Description string           `json:"description,omitempty"`
	Supplier    string           `json:"supplier,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// RawMaterialResponse materia prima en respuestas.
type RawMaterialResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	StockLevel  int             `json:"stock_level"`
	Unit        string          `json:"unit"`
	Description string          `json:"description,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreatePreprocessedGoodRequest body para POST /api/materials/preprocessed.
type CreatePreprocessedGoodRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	StockLevel      int    `json:"stock_level"`
	Unit            string `json:"unit"`
	Description     string `json:"description,omitempty"`
	ProcessingNotes string `json:"processing_notes,omitempty"`
}

// PreprocessedGoodResponse material procesado en respuestas.
type PreprocessedGoodResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	StockLevel      int       `json:"stock_level"`
	Unit            string    `json:"unit"`
	Description     string    `json:"description,omitempty"`
	ProcessingNotes string    `json:"processing_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AdjustStockRequest body para POST .../stock/adjust (delta con signo).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// SetStockRequest body para PATCH .../stock (valor absoluto).
type SetStockRequest struct {
	StockLevel int `json:"stock_level"`
}

// StockResponse contador resultante tras una operación del libro de stock.
type StockResponse struct {
	Kind       string `json:"kind"` // raw | preprocessed | kit
	ID         string `json:"id"`
	Name       string `json:"name"`
	StockLevel int    `json:"stock_level"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"` // raw_material | preprocessed
}

// CategoryResponse categoría registrada.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

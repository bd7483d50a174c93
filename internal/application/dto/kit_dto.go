package dto

import "time"

// CreateKitRequest body para POST /api/kits. El stock inicia en 0.
type CreateKitRequest struct {
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Program      string `json:"program"` // robotics | cstem
	GradeLevel   string `json:"grade_level,omitempty"`
	Description  string `json:"description,omitempty"`
}

// KitResponse kit en respuestas.
type KitResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SerialNumber string    `json:"serial_number"`
	Program      string    `json:"program"`
	GradeLevel   string    `json:"grade_level,omitempty"`
	Description  string    `json:"description,omitempty"`
	StockLevel   int       `json:"stock_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AddKitMaterialRequest body para POST /api/kits/:id/materials (línea del plan de empaque).
type AddKitMaterialRequest struct {
	MaterialType string `json:"material_type"` // raw | preprocessed
	MaterialID   string `json:"material_id"`
	Quantity     int    `json:"quantity"`
	PacketNumber int    `json:"packet_number,omitempty"`
	PacketName   string `json:"packet_name,omitempty"`
}

// MaterialDetails datos del material referenciado por una línea, resueltos
// en la tabla que indica material_type.
type MaterialDetails struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Unit       string `json:"unit"`
	StockLevel int    `json:"stock_level"`
}

// KitMaterialResponse línea del plan de empaque con el material resuelto.
type KitMaterialResponse struct {
	ID           string           `json:"id"`
	KitID        string           `json:"kit_id"`
	MaterialType string           `json:"material_type"`
	MaterialID   string           `json:"material_id"`
	Quantity     int              `json:"quantity"`
	PacketNumber int              `json:"packet_number,omitempty"`
	PacketName   string           `json:"packet_name,omitempty"`
	Material     *MaterialDetails `json:"material,omitempty"`
}

// KitDetailResponse kit con su plan de empaque completo.
type KitDetailResponse struct {
	KitResponse
	Materials []KitMaterialResponse `json:"materials"`
}

package entity

// Tipo de material referenciado por una línea del plan de empaque.
const (
	MaterialTypeRaw          = "raw"
	MaterialTypePreprocessed = "preprocessed"
)

// ValidMaterialType verifica el tipo de material de una línea.
func ValidMaterialType(t string) bool {
	return t == MaterialTypeRaw || t == MaterialTypePreprocessed
}

// KitMaterial es una línea del BOM (plan de empaque) de un kit: referencia una
// materia prima o un material procesado y la cantidad por unidad de kit.
// PacketNumber/PacketName agrupan líneas en una bolsa física del kit.
// La línea es una receta: agregarla o quitarla nunca mueve stock.
type KitMaterial struct {
	ID           string
	KitID        string
	MaterialType string // raw | preprocessed
	MaterialID   string // debe resolver en la tabla que indica MaterialType
	Quantity     int    // > 0
	PacketNumber int    // 0 = sin paquete asignado
	PacketName   string
}

package entity

import "time"

// Tipos de categoría extensible (a qué inventario aplica una categoría custom).
const (
	CategoryTypeRawMaterial  = "raw_material"
	CategoryTypePreprocessed = "preprocessed"
)

// Categorías conocidas de materias primas.
var RawMaterialCategories = []string{
	"electronics",
	"foam",
	"mdf",
	"fasteners",
	"stationery",
	"tubes",
	"printables",
	"corrugated_sheets",
}

// Categorías conocidas de materiales procesados.
var PreprocessedCategories = []string{
	"laser_cut",
	"3d_printed",
	"painted",
	"assembled",
	"others",
}

// ValidCategoryType verifica el tipo de categoría custom.
func ValidCategoryType(t string) bool {
	return t == CategoryTypeRawMaterial || t == CategoryTypePreprocessed
}

// KnownCategory indica si name pertenece al conjunto cerrado de categorías del
// tipo dado. Las categorías fuera del conjunto deben existir en custom_categories.
func KnownCategory(categoryType, name string) bool {
	var set []string
	switch categoryType {
	case CategoryTypeRawMaterial:
		set = RawMaterialCategories
	case CategoryTypePreprocessed:
		set = PreprocessedCategories
	default:
		return false
	}
	for _, c := range set {
		if c == name {
			return true
		}
	}
	return false
}

// CustomCategory es una categoría registrada por un usuario, extensión del
// conjunto conocido (enum-con-extensión, no texto libre).
type CustomCategory struct {
	ID        string
	Name      string
	Type      string // raw_material | preprocessed
	CreatedBy string
	CreatedAt time.Time
}

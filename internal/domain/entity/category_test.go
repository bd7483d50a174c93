package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edukits/kittrack-api/internal/domain/entity"
)

// Las categorías conocidas de cada tipo resuelven solo en su propio tipo.
func TestKnownCategory_ConjuntosPorTipo(t *testing.T) {
	assert.True(t, entity.KnownCategory(entity.CategoryTypeRawMaterial, "foam"))
	assert.True(t, entity.KnownCategory(entity.CategoryTypeRawMaterial, "corrugated_sheets"))
	assert.True(t, entity.KnownCategory(entity.CategoryTypePreprocessed, "laser_cut"))
	assert.True(t, entity.KnownCategory(entity.CategoryTypePreprocessed, "3d_printed"))

	// Categoría de un tipo no cuenta como conocida en el otro.
	assert.False(t, entity.KnownCategory(entity.CategoryTypePreprocessed, "foam"))
	assert.False(t, entity.KnownCategory(entity.CategoryTypeRawMaterial, "laser_cut"))
}

func TestKnownCategory_DesconocidasYTipoInvalido(t *testing.T) {
	assert.False(t, entity.KnownCategory(entity.CategoryTypeRawMaterial, "ceramics"),
		"una categoría fuera del conjunto no es conocida")
	assert.False(t, entity.KnownCategory("otro_tipo", "foam"),
		"tipo de categoría inválido nunca resuelve")
	assert.False(t, entity.KnownCategory(entity.CategoryTypeRawMaterial, ""))
}

func TestValidCategoryType(t *testing.T) {
	assert.True(t, entity.ValidCategoryType(entity.CategoryTypeRawMaterial))
	assert.True(t, entity.ValidCategoryType(entity.CategoryTypePreprocessed))
	assert.False(t, entity.ValidCategoryType("kit"))
	assert.False(t, entity.ValidCategoryType(""))
}

func TestValidItemKind(t *testing.T) {
	assert.True(t, entity.ValidItemKind(entity.ItemKindRaw))
	assert.True(t, entity.ValidItemKind(entity.ItemKindPreprocessed))
	assert.True(t, entity.ValidItemKind(entity.ItemKindKit))
	assert.False(t, entity.ValidItemKind(entity.ItemKind("producto")))
}

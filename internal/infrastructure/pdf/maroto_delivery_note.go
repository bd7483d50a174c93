// Package pdf implementa la generación del remito de entrega de una asignación
// de kits (documento de acompañamiento para el despacho).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Programa  │  N° Asignación + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto + dirección                     │
//	│  KIT: Nombre + serie + cantidad asignada                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Paquete | Material | Tipo | Cant/Kit | Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Asignado por + firmas de entrega/recepción         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/edukits/kittrack-api/internal/application/assignment"
	"github.com/edukits/kittrack-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoDeliveryNoteGenerator implementa assignment.DeliveryNoteGenerator
// usando Maroto v2.
type MarotoDeliveryNoteGenerator struct{}

// NewMarotoDeliveryNoteGenerator construye el generador.
func NewMarotoDeliveryNoteGenerator() *MarotoDeliveryNoteGenerator {
	return &MarotoDeliveryNoteGenerator{}
}

// GenerateDeliveryNote genera el PDF del remito y devuelve sus bytes.
func (g *MarotoDeliveryNoteGenerator) GenerateDeliveryNote(
	_ context.Context,
	data *assignment.DeliveryNoteData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remito de Entrega de Kits", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Assignment, data.Kit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(data.Client))
	m.AddRows(kitRow(data.Assignment, data.Kit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range footerRows(data.Assignment, data.AssignedBy) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar remito: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + programa (izq) y ID de asignación + fecha (der).
func headerRow(a *entity.KitAssignment, kit *entity.Kit) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REMITO DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Programa: "+programLabel(kit.Program), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ASIGNACIÓN DE KITS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(a.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha de entrega: "+a.DeliveryDate, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente destinatario.
func clientRow(c *entity.Client) core.Row {
	address := fmt.Sprintf("%s, %s, %s - %s", c.Address, c.City, c.State, c.Pincode)
	return row.New(18).Add(
		col.New(12).Add(
			text.New("CLIENTE / DESTINATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Contacto: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(c.ContactPerson, "—"),
				nonEmpty(c.Email, "—"),
				nonEmpty(c.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Dirección: "+address, props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

// kitRow: kit asignado, cantidad y modalidad de entrega.
func kitRow(a *entity.KitAssignment, kit *entity.Kit) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("KIT ASIGNADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s  (serie %s)", kit.Name, kit.SerialNumber), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Cantidad: %d   |   Modalidad: %s   |   Estado: %s",
				a.Quantity, deliveryTypeLabel(a.DeliveryType), a.Status,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del plan de empaque.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Paquete", 2, align.Left),
		h("Material", 5, align.Left),
		h("Tipo", 2, align.Center),
		h("Cant/Kit", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableLineRows: una fila por línea del plan de empaque.
func tableLineRows(lines []assignment.DeliveryNoteLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				packetLabel(l.PacketNumber, l.PacketName),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				l.MaterialName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				materialTypeLabel(l.MaterialType),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(l.QuantityPerKit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d %s", l.TotalQuantity, l.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRows: responsable de la asignación + espacios de firma.
func footerRows(a *entity.KitAssignment, assignedBy *entity.User) []core.Row {
	responsable := "—"
	if assignedBy != nil {
		responsable = assignedBy.Name
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Asignado por: "+responsable, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
	}
	if a.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+a.Notes, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	rows = append(rows,
		row.New(10),
		row.New(14).Add(
			col.New(5).Add(
				text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 4}),
				text.New("Entrega", props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
			),
			col.New(2),
			col.New(5).Add(
				text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 4}),
				text.New("Recibe", props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
			),
		),
	)
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID recorta el UUID a su primer segmento para mostrarlo como número.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func packetLabel(number int, name string) string {
	if number == 0 {
		return "Sin paquete"
	}
	if name != "" {
		return fmt.Sprintf("#%d %s", number, name)
	}
	return fmt.Sprintf("#%d", number)
}

func programLabel(program string) string {
	switch program {
	case entity.ProgramRobotics:
		return "Robótica"
	case entity.ProgramCSTEM:
		return "CSTEM"
	default:
		return program
	}
}

func deliveryTypeLabel(deliveryType string) string {
	switch deliveryType {
	case entity.DeliveryTypeSingle:
		return "Entrega única"
	case entity.DeliveryTypeMonthly:
		return "Suscripción mensual"
	default:
		return deliveryType
	}
}

func materialTypeLabel(materialType string) string {
	switch materialType {
	case entity.MaterialTypeRaw:
		return "Materia prima"
	case entity.MaterialTypePreprocessed:
		return "Procesado"
	default:
		return materialType
	}
}

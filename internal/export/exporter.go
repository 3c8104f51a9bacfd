package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/XenomaCode/MVP-CATERING/pkg/models"

	"github.com/jung-kurt/gofpdf"
)

// EventSource yields one event with its owner and resolved items. Satisfied
// by the events repository.
type EventSource interface {
	GetEventDetail(id int) (*models.Event, error)
}

type Exporter struct {
	events EventSource
}

func NewExporter(events EventSource) *Exporter {
	return &Exporter{events: events}
}

// Export renders the event's item list as a PDF and returns the document
// bytes with a suggested filename. Read-only: repeated calls on an unchanged
// event produce the same rows, differing only in the generation-date footer.
func (e *Exporter) Export(eventID int) ([]byte, string, error) {
	event, err := e.events.GetEventDetail(eventID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("")

	generated := time.Now().Format("02/01/2006")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		footer := fmt.Sprintf("Página %d de {nb} - Generado el %s", pdf.PageNo(), generated)
		pdf.CellFormat(0, 10, tr(footer), "", 0, "L", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr("Lista de Artículos - "+event.Name), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr("Fecha: "+event.Date.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Ubicación: "+event.Location), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Responsable: "+event.Owner), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	writeItemsTable(pdf, tr, event.Items)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render PDF: %w", err)
	}

	filename := fmt.Sprintf("evento-%d.pdf", eventID)
	return buf.Bytes(), filename, nil
}

func writeItemsTable(pdf *gofpdf.Fpdf, tr func(string) string, items []models.EventItem) {
	widths := []float64{95.0, 60.0, 35.0}
	headers := []string{"Artículo", "Categoría", "Cantidad"}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, tr(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(240, 240, 240)
	for _, item := range items {
		pdf.CellFormat(widths[0], 7, tr(item.Name), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], 7, tr(item.Category), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[2], 7, strconv.Itoa(item.Quantity), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
		fill = !fill
	}
}

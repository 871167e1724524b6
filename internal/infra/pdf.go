package infra

// pdf.go — carné (visitor credential) generation using go-pdf/fpdf.
// Produces an ID-1 card-sized PDF with the persona's full name, document and
// role, saved to storagePath/carnet_{numero_documento}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateCarnetPDF writes the credential PDF for a persona and returns the
// absolute path to the generated file. storagePath is created if needed.
func GenerateCarnetPDF(p *model.Persona, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("carnet_%s.pdf", p.NumeroDocumento)
	filePath := filepath.Join(storagePath, fileName)

	// ID-1 card: 85.6mm × 54mm (standard credential size)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 85.6, Ht: 54},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 10

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Control de Acceso", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Carné de ingreso", "", 1, "C", false, 0, "")
	pdf.Ln(1)
	pdf.Line(5, pdf.GetY(), pageW-5, pdf.GetY())
	pdf.Ln(2)

	// ── Holder data ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, p.Nombre+" "+p.Apellido, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("%s %s", p.TipoDocumento, p.NumeroDocumento), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Rol: "+p.TipoRol, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(contentW, 3, "Registro: "+p.FechaRegistro.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 3, "Emitido: "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write carnet: %w", err)
	}
	return filePath, nil
}

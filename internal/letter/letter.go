package letter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/abdul977/lodgebooker/internal/domain"
)

var houseRules = []string{
	"Residents must keep their rooms and shared spaces clean at all times.",
	"Visitors are allowed only in the common areas and must leave by 9:00 PM.",
	"Noise must be kept to a minimum between 10:00 PM and 6:00 AM.",
	"Cooking is permitted only in the designated kitchen areas.",
	"Damage to lodge property will be charged to the responsible resident.",
	"Management must be notified at least one week before moving out.",
}

// Renderer produces the fixed-layout accommodation confirmation letter
// for a resident profile. Rendering is pure: same profile in, same
// document out, no side effects.
type Renderer struct {
	organization string
	chapter      string
}

func NewRenderer(organization, chapter string) *Renderer {
	return &Renderer{organization: organization, chapter: chapter}
}

// Render returns the letter as PDF bytes together with the download
// file name, which is derived from the profile id.
func (r *Renderer) Render(p *domain.Profile, now time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	// Header band
	pdf.SetFillColor(46, 139, 87)
	pdf.Rect(10, 10, pageW-20, 22, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(10, 14)
	pdf.CellFormat(pageW-20, 8, r.organization, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(10)
	pdf.CellFormat(pageW-20, 8, r.chapter, "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(10, 38)
	pdf.CellFormat(pageW-20, 6, "Date: "+now.Format("02 January 2006"), "", 1, "R", false, 0, "")

	// Resident fields
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(152, 251, 152)
	pdf.CellFormat(pageW-20, 8, "RESIDENT INFORMATION", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	fields := [][2]string{
		{"Full Name", p.FullName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Address", p.Address},
		{"Gender", p.Gender},
		{"Call-Up Number", p.CallUpNumber},
		{"State of Origin", p.StateOfOrigin},
		{"Institution", p.Institution},
	}
	for _, f := range fields {
		pdf.CellFormat(pageW-20, 7, fmt.Sprintf("%s: %s", f[0], f[1]), "", 1, "L", false, 0, "")
	}

	// Rules block
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pageW-20, 8, "LODGE RULES AND REGULATIONS", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, rule := range houseRules {
		pdf.MultiCell(pageW-20, 6, fmt.Sprintf("%d. %s", i+1, rule), "", "L", false)
	}

	// Signature placeholder
	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(70, 6, "_______________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(70, 6, "Lodge Coordinator", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render letter: %w", err)
	}

	return buf.Bytes(), fmt.Sprintf("confirmation-%s.pdf", p.ID), nil
}

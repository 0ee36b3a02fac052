package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	CountryHeader = "RÉPUBLIQUE DÉMOCRATIQUE DU CONGO"

	// ID-1 card format in millimetres.
	CardWidth  = 85.6
	CardHeight = 54.0
)

// Brand fill used by table headers and card bands.
var brand = [3]int{7, 166, 224}

type Field struct {
	Label string
	Value string
}

// Image is raw PNG or JPEG bytes; Type is "PNG" or "JPG".
type Image struct {
	Data []byte
	Type string
}

func (i *Image) usable() bool {
	return i != nil && len(i.Data) > 0 && (i.Type == "PNG" || i.Type == "JPG")
}

// Table is a titled grid report, optionally preceded by summary lines.
type Table struct {
	Title       string
	Subtitle    string
	Summary     []Field
	Headers     []string
	Rows        [][]string
	Footer      string
	GeneratedAt time.Time
}

func (t Table) Render(w io.Writer) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generated := t.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.SetCreationDate(generated)
	pdf.SetTitle(tr(t.Title), false)
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	sub := "Généré le " + generated.Format("02/01/2006 15:04")
	if t.Subtitle != "" {
		sub = t.Subtitle + " - " + sub
	}
	pdf.CellFormat(0, 6, tr(sub), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if len(t.Summary) > 0 {
		pdf.Ln(2)
		for _, f := range t.Summary {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(70, 6, tr(f.Label), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(0, 6, tr(f.Value), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(3)

	if len(t.Headers) > 0 {
		pageW, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colW := (pageW - left - right) / float64(len(t.Headers))

		header := func() {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetFillColor(brand[0], brand[1], brand[2])
			pdf.SetTextColor(255, 255, 255)
			for _, h := range t.Headers {
				pdf.CellFormat(colW, 8, tr(h), "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 8)
		}
		header()

		_, pageH := pdf.GetPageSize()
		for _, row := range t.Rows {
			if pdf.GetY()+7 > pageH-15 {
				pdf.AddPage()
				header()
			}
			for i := range t.Headers {
				cell := ""
				if i < len(row) {
					cell = fit(pdf, tr(row[i]), colW-2)
				}
				pdf.CellFormat(colW, 7, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		if len(t.Rows) == 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(colW*float64(len(t.Headers)), 8, tr("Aucune donnée"), "1", 1, "C", false, 0, "")
		}
	}

	if t.Footer != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr(t.Footer), "", "L", false)
	}

	return pdf.Output(w)
}

// Card is a single-page ID-1 document: header band, optional photo, labelled fields and a QR code.
// A nil Photo leaves no photo column; a non-nil unusable one draws a framed placeholder.
type Card struct {
	Title    string
	Subtitle string
	Fields   []Field
	Photo    *Image
	QR       []byte
	Footer   string
	IssuedAt time.Time
}

func newCardPage() *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: CardHeight, Ht: CardWidth},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

func (c Card) Render(w io.Writer) error {
	pdf := newCardPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if !c.IssuedAt.IsZero() {
		pdf.SetCreationDate(c.IssuedAt)
	}
	pdf.SetTitle(tr(c.Title), false)
	pdf.AddPage()

	pdf.SetFillColor(brand[0], brand[1], brand[2])
	pdf.Rect(0, 0, CardWidth, 9, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetXY(0, 0.8)
	pdf.CellFormat(CardWidth, 3.5, tr(CountryHeader), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetX(0)
	pdf.CellFormat(CardWidth, 4, tr(strings.ToUpper(c.Title)), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if c.Subtitle != "" {
		pdf.SetFont("Helvetica", "I", 5)
		pdf.SetXY(0, 9.5)
		pdf.CellFormat(CardWidth, 2.5, tr(c.Subtitle), "", 1, "C", false, 0, "")
	}

	fieldX := 4.0
	photoX, photoY, photoW, photoH := 3.0, 13.0, 18.0, 23.0
	if c.Photo != nil {
		fieldX = 23
	}
	if c.Photo.usable() {
		opts := fpdf.ImageOptions{ImageType: c.Photo.Type}
		pdf.RegisterImageOptionsReader("photo", opts, bytes.NewReader(c.Photo.Data))
		pdf.ImageOptions("photo", photoX, photoY, photoW, photoH, false, opts, 0, "")
	} else if c.Photo != nil {
		pdf.SetDrawColor(150, 150, 150)
		pdf.Rect(photoX, photoY, photoW, photoH, "D")
		pdf.SetFont("Helvetica", "", 5)
		pdf.SetTextColor(150, 150, 150)
		pdf.SetXY(photoX, photoY+photoH/2-1.5)
		pdf.CellFormat(photoW, 3, "PHOTO", "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	y := 13.0
	for _, f := range c.Fields {
		pdf.SetXY(fieldX, y)
		pdf.SetFont("Helvetica", "B", 4.8)
		label := f.Label + ": "
		lw := pdf.GetStringWidth(tr(label))
		pdf.CellFormat(lw, 3, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 4.8)
		pdf.CellFormat(0, 3, fit(pdf, tr(f.Value), 62-fieldX-lw), "", 0, "L", false, 0, "")
		y += 3.2
	}

	if len(c.QR) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(c.QR))
		pdf.ImageOptions("qr", 63.5, 13, 19, 19, false, opts, 0, "")
	}

	if c.Footer != "" {
		pdf.SetFont("Helvetica", "I", 4.5)
		pdf.SetXY(2, CardHeight-6)
		pdf.CellFormat(CardWidth-4, 3, tr(c.Footer), "", 0, "C", false, 0, "")
	}

	pdf.SetDrawColor(brand[0], brand[1], brand[2])
	pdf.Rect(0.5, 0.5, CardWidth-1, CardHeight-1, "D")

	return pdf.Output(w)
}

// Bytes renders anything with a Render method into memory.
func Bytes(r interface{ Render(io.Writer) error }) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit truncates s with an ellipsis so it is at most width wide in the current font.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if width <= 0 || pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []byte(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

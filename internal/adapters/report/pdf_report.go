// Package report renders a seat recommendation as a one-page PDF.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

var ErrInvalidImage = errors.New("map image is not a valid PNG")

// Summary is the rendered view of a recommendation; angles are already rounded.
type Summary struct {
	Side             string
	Confidence       string
	BearingDeg       float64
	SunAzimuthDeg    float64
	RelativeAngleDeg float64
	GoldenHour       bool
	Stability        string
	Notes            string

	CivilDawn, Sunrise, Sunset, CivilDusk string

	MidpointLat              float64
	MidpointLon              float64
	MidpointSunAzimuthDeg    float64
	MidpointRelativeAngleDeg *float64
}

var (
	titleColor     = [3]int{0, 0, 139}
	highlightColor = [3]int{255, 215, 0}
	seatColor      = [3]int{224, 224, 224}
	eitherColor    = [3]int{240, 240, 240}
)

// Render writes the PDF report for s to w. mapPNG is optional.
func Render(w io.Writer, s Summary, mapPNG []byte, generatedAt time.Time) error {
	if len(mapPNG) > 0 {
		if _, err := png.DecodeConfig(bytes.NewReader(mapPNG)); err != nil {
			return fmt.Errorf("render report: %w: %v", ErrInvalidImage, err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 12, 15)
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetTitle("Scenic Seat Recommendation Report", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	deg := func(v float64) string { return tr(fmt.Sprintf("%.1f°", v)) }

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(titleColor[0], titleColor[1], titleColor[2])
	pdf.CellFormat(0, 12, "Scenic Seat Recommendation Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	heading(pdf, "Recommendation Summary")
	golden := "No"
	if s.GoldenHour {
		golden = "Yes"
	}
	table(pdf, [][2]string{
		{"Recommended Side", s.Side},
		{"Confidence Level", s.Confidence},
		{"Flight Bearing", deg(s.BearingDeg)},
		{"Sun Azimuth", deg(s.SunAzimuthDeg)},
		{"Relative Angle (Delta)", deg(s.RelativeAngleDeg)},
		{"Golden Hour", golden},
		{"Stability", s.Stability},
	})
	pdf.Ln(4)

	heading(pdf, "Seat Map")
	seatDiagram(pdf, s.Side)
	pdf.Ln(4)

	heading(pdf, "Solar Phase Times (origin timezone)")
	table(pdf, [][2]string{
		{"Civil Dawn", s.CivilDawn},
		{"Sunrise", s.Sunrise},
		{"Sunset", s.Sunset},
		{"Civil Dusk", s.CivilDusk},
	})
	pdf.Ln(4)

	heading(pdf, "Route Midpoint")
	mid := [][2]string{
		{"Latitude", fmt.Sprintf("%.1f", s.MidpointLat)},
		{"Longitude", fmt.Sprintf("%.1f", s.MidpointLon)},
		{"Sun Azimuth", deg(s.MidpointSunAzimuthDeg)},
	}
	if s.MidpointRelativeAngleDeg != nil {
		mid = append(mid, [2]string{"Relative Angle (Delta)", deg(*s.MidpointRelativeAngleDeg)})
	}
	table(pdf, mid)
	pdf.Ln(4)

	heading(pdf, "Notes")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(s.Notes), "", "L", false)
	pdf.Ln(2)

	if len(mapPNG) > 0 {
		heading(pdf, "Route Map")
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("route-map", opts, bytes.NewReader(mapPNG))
		pdf.ImageOptions("route-map", pdf.GetX(), pdf.GetY(), 120, 0, true, opts, 0, "")
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Generated "+generatedAt.UTC().Format(time.RFC3339), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(titleColor[0], titleColor[1], titleColor[2])
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func table(pdf *fpdf.Fpdf, rows [][2]string) {
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 7, r[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, r[1], "1", 1, "L", false, 0, "")
	}
}

// seatDiagram draws a 3-3 row with the recommended window seat highlighted.
func seatDiagram(pdf *fpdf.Fpdf, side string) {
	left, right := seatColor, seatColor
	switch side {
	case "LEFT":
		left = highlightColor
	case "RIGHT":
		right = highlightColor
	default:
		left, right = eitherColor, eitherColor
	}

	const seat = 9.0
	x0, y0 := pdf.GetX()+20, pdf.GetY()+2

	pdf.SetDrawColor(0, 0, 0)
	for i := 0; i < 3; i++ {
		fill := seatColor
		if i == 0 {
			fill = left
		}
		pdf.SetFillColor(fill[0], fill[1], fill[2])
		pdf.Rect(x0+float64(i)*(seat+2), y0, seat, seat, "FD")
	}

	aisle := x0 + 3*(seat+2) + 8
	pdf.SetDrawColor(0, 0, 255)
	pdf.Line(aisle, y0-1, aisle, y0+seat+1)
	pdf.SetDrawColor(0, 0, 0)

	for i := 0; i < 3; i++ {
		fill := seatColor
		if i == 2 {
			fill = right
		}
		pdf.SetFillColor(fill[0], fill[1], fill[2])
		pdf.Rect(aisle+8+float64(i)*(seat+2), y0, seat, seat, "FD")
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(x0, y0+seat+6, "Left")
	pdf.Text(aisle-4, y0+seat+6, "Aisle")
	pdf.Text(aisle+8+2*(seat+2), y0+seat+6, "Right")
	pdf.SetY(y0 + seat + 9)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Recommended: "+side+" window", "", 1, "L", false, 0, "")
}

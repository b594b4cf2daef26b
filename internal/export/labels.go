package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ys4i/wavetray/internal/model"
)

// Job label layout constants (A6 landscape in mm).
const (
	labelPageWidth  = 148.0
	labelPageHeight = 105.0
	labelMargin     = 8.0
	labelQRSize     = 60.0
)

// ExportJobLabel writes a single-page PDF job label. The QR code
// encodes the full Params JSON so a scanned label reproduces the
// exact tray.
func ExportJobLabel(path string, params model.Params) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 512)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A6", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Cutting guide border
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(labelMargin/2, labelMargin/2, labelPageWidth-labelMargin, labelPageHeight-labelMargin, "D")

	pdf.RegisterImageOptionsReader("qr_params", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrX := labelPageWidth - labelQRSize - labelMargin
	qrY := (labelPageHeight - labelQRSize) / 2
	pdf.ImageOptions("qr_params", qrX, qrY, labelQRSize, labelQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Key dimensions on the left side
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(labelMargin, labelMargin)
	pdf.CellFormat(60, 8, "WaveTray", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	lines := []string{
		fmt.Sprintf("Layers: %d x %.2f mm", params.LayerCount, params.LayerHeight),
		fmt.Sprintf("Height: %.1f mm", params.TotalHeight()),
		fmt.Sprintf("Radius: %.1f + %.1f mm", params.BaseRadius, params.RadialGrowth),
		fmt.Sprintf("Wave: %.1f mm x %.1f cyc", params.WaveAmplitude, params.WaveFrequency),
		fmt.Sprintf("Hole: r%.1f mm, %d layers", params.HoleRadius, params.HoleLayerLimit),
		fmt.Sprintf("Infill: %s", params.InfillMode),
	}
	y := labelMargin + 12.0
	for _, line := range lines {
		pdf.SetXY(labelMargin, y)
		pdf.CellFormat(70, 5, line, "", 0, "L", false, 0, "")
		y += 5.5
	}

	return pdf.OutputFileAndClose(path)
}

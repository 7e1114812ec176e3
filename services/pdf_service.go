package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Sishir120/PackYourBags-sub000/models"

	"github.com/jung-kurt/gofpdf"
)

type itineraryDay struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

// GenerateItineraryPDF renders an itinerary as a downloadable PDF
func GenerateItineraryPDF(it *models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// header bar
	pdf.SetFillColor(16, 42, 67)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "PackYourBags", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(240, 180, 60)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Your Trip Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(36)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(170, 8, it.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if it.Destination != nil {
		pdf.CellFormat(170, 6, fmt.Sprintf("Destination: %s, %s", it.Destination.Name, it.Destination.Country), "", 1, "L", false, 0, "")
	}
	if it.StartDate != nil {
		pdf.CellFormat(170, 6, "Start date: "+it.StartDate.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(170, 6, fmt.Sprintf("Duration: %d days", it.NumDays), "", 1, "L", false, 0, "")
	if it.EstimatedBudget > 0 {
		pdf.CellFormat(170, 6, fmt.Sprintf("Estimated budget: $%.0f", it.EstimatedBudget), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	var days []itineraryDay
	if len(it.Days) > 0 {
		if err := json.Unmarshal(it.Days, &days); err != nil {
			return nil, fmt.Errorf("failed to parse itinerary days: %v", err)
		}
	}

	for _, d := range days {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(235, 240, 246)
		pdf.CellFormat(170, 8, fmt.Sprintf("Day %d", d.Day), "", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, act := range d.Activities {
			pdf.SetX(26)
			pdf.MultiCell(160, 6, "- "+act, "", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %v", err)
	}
	return buf.Bytes(), nil
}

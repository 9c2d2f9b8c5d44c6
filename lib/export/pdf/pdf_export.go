package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "talent-engine-backend/models/db"
)

// GenerateRequisitionSummary renders a printable one-page summary of a
// requisition and its advert draft.
func GenerateRequisitionSummary(rec dbmodels.Requisition) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateRequisitionSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, rec.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, fmt.Sprintf("%v  |  %v", rec.JobRequisitionCode, rec.Status.ToHuman()), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	if rec.RequestedBy != nil {
		writeRow(pdf, "Requested by", rec.RequestedBy.GetFullName())
	}
	writeRow(pdf, "Requested date", rec.RequestedDate.Format("02.01.2006"))
	writeRow(pdf, "Reason", rec.Reason)
	writeRow(pdf, "Qualification", rec.QualificationRequirement)
	writeRow(pdf, "Experience", rec.ExperienceRequirement)
	writeRow(pdf, "Knowledge and skills", rec.KnowledgeRequirement)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Advert", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	writeRow(pdf, "Company", rec.CompanyName)
	writeRow(pdf, "Job type", rec.JobType)
	writeRow(pdf, "Location type", string(rec.LocationType))
	writeRow(pdf, "Location", rec.Location)
	if rec.DeadlineDate != nil {
		writeRow(pdf, "Deadline", rec.DeadlineDate.Format("02.01.2006"))
	}
	if rec.StartDate != nil {
		writeRow(pdf, "Start date", rec.StartDate.Format("02.01.2006"))
	}
	if rec.Description != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 5, rec.Description, "", "L", false)
	}
	writeList(pdf, "Responsibilities", rec.Responsibilities)
	writeList(pdf, "Documents required", rec.DocumentsRequired)
	writeList(pdf, "Compliance checklist", rec.ComplianceChecklist)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, value, "", "L", false)
}

func writeList(pdf *fpdf.Fpdf, label string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, label, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 5, "- "+item, "", "L", false)
	}
}

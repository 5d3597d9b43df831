package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"github.com/jung-kurt/gofpdf"
)

type pdfRenderer struct {
	ClinicName string
}

func NewPDFRenderer(clinicName string) contracts.PrescriptionRenderer {
	return &pdfRenderer{ClinicName: clinicName}
}

func (r *pdfRenderer) RenderDraft(consultation *models.Consultation) ([]byte, error) {
	pdf := r.newDocument(consultation)

	pdf.SetFont("Arial", "B", 40)
	pdf.SetTextColor(220, 220, 220)
	pdf.TransformBegin()
	pdf.TransformRotate(45, 105, 150)
	pdf.Text(55, 160, "DRAFT - NOT VALID")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)

	return r.output(pdf)
}

func (r *pdfRenderer) RenderSigned(consultation *models.Consultation, signature *models.DigitalSignature) ([]byte, error) {
	pdf := r.newDocument(consultation)

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Digitally signed by %s on %s", signature.SignedBy, signature.SignedAt.Format(time.RFC1123)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Signature: %s", signature.Signature), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Certificate: %s", signature.CertificateRef), "", 1, "L", false, 0, "")

	return r.output(pdf)
}

func (r *pdfRenderer) newDocument(consultation *models.Consultation) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, r.ClinicName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Prescription", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Consultation: %s", consultation.ConsultationID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("02 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if consultation.DoctorDiagnosis != nil {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Diagnosis", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, consultation.DoctorDiagnosis.Diagnosis, "", "L", false)
		pdf.Ln(2)
	}

	if consultation.PrescriptionData != nil {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Medications", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for i, medication := range consultation.PrescriptionData.Medications {
			line := fmt.Sprintf("%d. %s - %s, %s, %s", i+1, medication.Name, medication.Dosage, medication.Frequency, medication.Duration)
			pdf.MultiCell(0, 6, line, "", "L", false)
			if medication.Instructions != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, "   "+medication.Instructions, "", "L", false)
				pdf.SetFont("Arial", "", 10)
			}
		}
		if consultation.PrescriptionData.GeneralInstructions != "" {
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(0, 7, "Instructions", "", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 6, consultation.PrescriptionData.GeneralInstructions, "", "L", false)
		}
	}

	return pdf
}

func (r *pdfRenderer) output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	return buf.Bytes(), nil
}

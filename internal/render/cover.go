package render

import (
	"github.com/go-pdf/fpdf"

	"github.com/pacificaeng/submittalflow/internal/models"
)

// CoverPage renders the one-page cover sheet from the supplied project data.
// It only reads its inputs, so the sole failure mode is PDF serialization.
func (r *Renderer) CoverPage(p models.ProjectData) ([]byte, error) {
	doc := newLetterPage()

	// Brand header and section badge.
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(20, 20, 20)
	doc.Text(marginLeft, 60, r.brand.Header)
	doc.SetFont("Helvetica", "B", 10)
	badgeW := doc.GetStringWidth(r.brand.SectionBadge) + 16
	doc.SetFillColor(40, 40, 40)
	doc.Rect(pageWidth-marginRight-badgeW, 44, badgeW, 22, "F")
	doc.SetTextColor(255, 255, 255)
	doc.Text(pageWidth-marginRight-badgeW+8, 59, r.brand.SectionBadge)

	// Two-line title.
	doc.SetTextColor(20, 20, 20)
	doc.SetFont("Helvetica", "B", 22)
	doc.Text(marginLeft, 108, "Submittal Packet")
	doc.SetFont("Helvetica", "", 13)
	doc.SetTextColor(90, 90, 90)
	doc.Text(marginLeft, 128, "Document Transmittal Cover Sheet")

	// Labeled form fields from the layout table.
	for _, field := range coverFields {
		r.drawField(doc, field, fieldValue(field.Name, p))
	}

	// Status/Action checkboxes in a fixed two-column grid.
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(20, 20, 20)
	doc.Text(marginLeft, statusHeadingY, "Status / Action")
	for i, row := range statusRows(p.Status) {
		x := statusGrid.ColX[i%2]
		y := statusGrid.Y + float64(i/2)*statusGrid.RowPitch
		drawCheckbox(doc, x, y, row)
	}

	// Submittal Type checkboxes in a fixed vertical list.
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(20, 20, 20)
	doc.Text(marginLeft, submittalHeadingY, "Submittal Type")
	for i, row := range submittalRows(p.SubmittalTypes) {
		y := submittalList.Y + float64(i)*submittalList.RowPitch
		drawCheckbox(doc, submittalList.X, y, row)
	}

	// Product line.
	doc.SetFont("Helvetica", "B", 9)
	doc.SetTextColor(20, 20, 20)
	doc.Text(marginLeft, productLineY, "PRODUCT:")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(marginLeft+60, productLineY, p.ProductID)

	// Fixed footer block and version caption.
	doc.SetFont("Helvetica", "B", 9)
	doc.Text(marginLeft, footerBlockY, r.brand.OrgName)
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(90, 90, 90)
	doc.Text(marginLeft, footerBlockY+12, r.brand.OrgAddress)
	doc.Text(marginLeft, footerBlockY+24, r.brand.OrgPhone)
	doc.Text(marginLeft, footerBlockY+36, "Support: "+r.brand.SupportEmail)
	doc.SetFont("Helvetica", "I", 7)
	doc.Text(pageWidth-marginRight-doc.GetStringWidth(r.brand.Version), versionCaptionY, r.brand.Version)

	return output(doc)
}

func (r *Renderer) drawField(doc *fpdf.Fpdf, field coverField, value string) {
	doc.SetFont("Helvetica", "B", fieldLabelSize)
	doc.SetTextColor(90, 90, 90)
	doc.Text(field.Box.X, field.Box.Y-4, field.Label)

	doc.SetDrawColor(150, 150, 150)
	doc.SetLineWidth(0.6)
	doc.Rect(field.Box.X, field.Box.Y, field.Box.W, field.Box.H, "D")

	doc.SetFont("Helvetica", "", fieldValueSize)
	doc.SetTextColor(20, 20, 20)
	doc.Text(field.Box.X+6, field.Box.Y+field.Box.H-8, value)
}

// fieldValue resolves a layout-table field name against the project data.
func fieldValue(name string, p models.ProjectData) string {
	switch name {
	case "submittedTo":
		return p.Organization
	case "projectName":
		return p.ProjectName
	case "projectNumber":
		return p.ProjectNumber
	case "preparedBy":
		return p.PreparerName
	case "contact":
		return joinContact(p.ContactPhone, p.ContactEmail)
	case "date":
		return p.Date
	default:
		return ""
	}
}

func joinContact(phone, email string) string {
	switch {
	case phone == "":
		return email
	case email == "":
		return phone
	default:
		return phone + " / " + email
	}
}

// statusRows maps the status flags to their fixed checkbox rows. All labels
// always render; Checked mirrors the flag.
func statusRows(s models.StatusFlags) []checkRow {
	return []checkRow{
		{Label: "For Review", Checked: s.ForReview},
		{Label: "For Approval", Checked: s.ForApproval},
		{Label: "For Record", Checked: s.ForRecord},
		{Label: "For Information Only", Checked: s.ForInformationOnly},
	}
}

// submittalRows maps the submittal-type flags to their fixed vertical list.
// The Other row's label carries the free-text qualifier when present.
func submittalRows(t models.SubmittalTypes) []checkRow {
	other := "Other"
	if t.OtherText != "" {
		other = "Other: " + t.OtherText
	}
	return []checkRow{
		{Label: "Product Data", Checked: t.ProductData},
		{Label: "Shop Drawings", Checked: t.ShopDrawings},
		{Label: "Samples", Checked: t.Samples},
		{Label: "Calculations", Checked: t.Calculations},
		{Label: "Test Reports", Checked: t.TestReports},
		{Label: "Certificates", Checked: t.Certificates},
		{Label: "Manufacturer Data", Checked: t.ManufacturerData},
		{Label: "Installation Guides", Checked: t.InstallationGuides},
		{Label: "Operation Manuals", Checked: t.OperationManuals},
		{Label: "Maintenance Data", Checked: t.MaintenanceData},
		{Label: "Warranty Documents", Checked: t.WarrantyDocs},
		{Label: "Quality Control", Checked: t.QualityControl},
		{Label: "Design Data", Checked: t.DesignData},
		{Label: other, Checked: t.Other},
	}
}

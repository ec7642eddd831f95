package render

// remediationInstruction is the fixed guidance printed on every error page.
const remediationInstruction = "Please contact the submitting party to obtain a replacement copy of this document."

// ErrorPage renders the placeholder substituted for content that could not be
// retrieved, parsed, or copied.
func (r *Renderer) ErrorPage(docName, message string) ([]byte, error) {
	doc := newLetterPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(160, 32, 32)
	header := "DOCUMENT UNAVAILABLE"
	doc.Text((pageWidth-doc.GetStringWidth(header))/2, 300, header)

	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(20, 20, 20)
	doc.Text((pageWidth-doc.GetStringWidth(docName))/2, 336, docName)

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(60, 60, 60)
	doc.Text((pageWidth-doc.GetStringWidth(message))/2, 366, message)

	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(120, 120, 120)
	doc.Text((pageWidth-doc.GetStringWidth(remediationInstruction))/2, 402, remediationInstruction)

	return output(doc)
}

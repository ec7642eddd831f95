package render

import "fmt"

// DividerPage renders the section divider inserted before one source
// document's content. pageHint is the composite position the divider itself
// occupies at render time; it is illustrative only and is superseded by the
// final numbering pass.
func (r *Renderer) DividerPage(name, category string, pageHint int) ([]byte, error) {
	doc := newLetterPage()

	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(120, 120, 120)
	label := "SECTION DIVIDER"
	doc.Text((pageWidth-doc.GetStringWidth(label))/2, 280, label)

	doc.SetDrawColor(120, 120, 120)
	doc.SetLineWidth(0.8)
	doc.Line(marginLeft, 296, pageWidth-marginRight, 296)

	doc.SetFont("Helvetica", "B", 26)
	doc.SetTextColor(20, 20, 20)
	doc.Text((pageWidth-doc.GetStringWidth(name))/2, 350, name)

	if category != "" {
		doc.SetFont("Helvetica", "", 13)
		doc.SetTextColor(90, 90, 90)
		doc.Text((pageWidth-doc.GetStringWidth(category))/2, 378, category)
	}

	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(150, 150, 150)
	caption := fmt.Sprintf("Begins on page %d", pageHint)
	doc.Text((pageWidth-doc.GetStringWidth(caption))/2, 420, caption)

	return output(doc)
}

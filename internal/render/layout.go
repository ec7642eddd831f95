package render

// Page geometry in points, US Letter, origin top-left. The cover sheet is a
// fixed-layout form: every label, value box, and checkbox sits at a literal
// offset from the page corners. Overflowing a value box is accepted; there is
// no reflow.
const (
	pageWidth  = 612.0
	pageHeight = 792.0

	marginLeft  = 54.0
	marginRight = 54.0

	fieldLabelSize = 8.0
	fieldValueSize = 10.0

	checkboxSize  = 9.0
	checkRowPitch = 15.0
)

// fieldBox is one rectangle in the cover layout table.
type fieldBox struct {
	X, Y, W, H float64
}

// coverField binds a ProjectData field to its label and value box.
type coverField struct {
	Name  string
	Label string
	Box   fieldBox
}

// coverFields is the declarative layout for the labeled form fields,
// in draw order. Values are resolved by fieldValue in cover.go.
var coverFields = []coverField{
	{Name: "submittedTo", Label: "SUBMITTED TO", Box: fieldBox{X: marginLeft, Y: 168, W: 504, H: 24}},
	{Name: "projectName", Label: "PROJECT NAME", Box: fieldBox{X: marginLeft, Y: 210, W: 330, H: 24}},
	{Name: "projectNumber", Label: "PROJECT NO.", Box: fieldBox{X: 402, Y: 210, W: 156, H: 24}},
	{Name: "preparedBy", Label: "PREPARED BY", Box: fieldBox{X: marginLeft, Y: 252, W: 240, H: 24}},
	{Name: "contact", Label: "PHONE / EMAIL", Box: fieldBox{X: 312, Y: 252, W: 246, H: 24}},
	{Name: "date", Label: "DATE", Box: fieldBox{X: marginLeft, Y: 294, W: 150, H: 24}},
}

// Status/Action section: fixed two-column grid.
var statusGrid = struct {
	Y        float64
	ColX     [2]float64
	RowPitch float64
}{
	Y:        366,
	ColX:     [2]float64{marginLeft, 312},
	RowPitch: 18,
}

// Submittal Type section: fixed vertical list.
var submittalList = struct {
	X, Y     float64
	RowPitch float64
}{
	X:        marginLeft,
	Y:        444,
	RowPitch: checkRowPitch,
}

const (
	statusHeadingY    = 348.0
	submittalHeadingY = 426.0
	productLineY      = 672.0
	footerBlockY      = 714.0
	versionCaptionY   = 768.0
)

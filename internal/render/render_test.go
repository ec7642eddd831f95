package render

import (
	"bytes"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacificaeng/submittalflow/internal/models"
)

var testBrand = Brand{
	Header:       "Test Engineering",
	SectionBadge: "SUBMITTAL",
	OrgName:      "Test Engineering, Inc.",
	OrgAddress:   "1 Test Way, Testville, CA 00000",
	OrgPhone:     "(000) 555-0100",
	SupportEmail: "support@test.example.com",
	Version:      "test v0",
}

func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	n, err := api.PageCount(bytes.NewReader(pdf), conf)
	require.NoError(t, err)
	return n
}

func TestCoverPageIsOneValidPage(t *testing.T) {
	r := New(testBrand)

	pdf, err := r.CoverPage(models.ProjectData{
		ProjectName:   "Riverside Pump Station",
		Organization:  "City of Riverside",
		PreparerName:  "J. Alvarez",
		Date:          "2026-08-14",
		ProjectNumber: "PN-2210",
		ContactEmail:  "jalvarez@example.com",
		ContactPhone:  "(909) 555-0133",
		ProductID:     "VX-400 Vertical Turbine Pump",
		Status:        models.StatusFlags{ForReview: true},
		SubmittalTypes: models.SubmittalTypes{
			ProductData: true,
			Other:       true,
			OtherText:   "Seismic anchorage calcs",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestCoverPageRendersWithAllFlagsClear(t *testing.T) {
	// N=0 and M=0 must still render every label, unchecked.
	r := New(testBrand)
	pdf, err := r.CoverPage(models.ProjectData{ProjectName: "Empty"})
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestDividerPageIsOneValidPage(t *testing.T) {
	r := New(testBrand)
	pdf, err := r.DividerPage("Pump Cut Sheet", "Product Data", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestErrorPageIsOneValidPage(t *testing.T) {
	r := New(testBrand)
	pdf, err := r.ErrorPage("Pump Cut Sheet", "Document could not be loaded")
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestStatusRowsCheckedCountsMatchFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   models.StatusFlags
		checked int
	}{
		{"none set", models.StatusFlags{}, 0},
		{"one set", models.StatusFlags{ForApproval: true}, 1},
		{"all set", models.StatusFlags{ForReview: true, ForApproval: true, ForRecord: true, ForInformationOnly: true}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := statusRows(tt.flags)
			assert.Len(t, rows, 4, "all labels render regardless of flags")
			assert.Equal(t, tt.checked, countChecked(rows))
		})
	}
}

func TestSubmittalRowsCheckedCountsMatchFlags(t *testing.T) {
	rows := submittalRows(models.SubmittalTypes{})
	assert.Len(t, rows, 14, "all category labels render regardless of flags")
	assert.Equal(t, 0, countChecked(rows))

	rows = submittalRows(models.SubmittalTypes{
		ShopDrawings: true,
		TestReports:  true,
		Other:        true,
	})
	assert.Equal(t, 3, countChecked(rows))
}

func TestSubmittalRowsOtherQualifier(t *testing.T) {
	rows := submittalRows(models.SubmittalTypes{Other: true, OtherText: "Seismic calcs"})
	last := rows[len(rows)-1]
	assert.Equal(t, "Other: Seismic calcs", last.Label)
	assert.True(t, last.Checked)

	rows = submittalRows(models.SubmittalTypes{})
	assert.Equal(t, "Other", rows[len(rows)-1].Label)
}

func countChecked(rows []checkRow) int {
	n := 0
	for _, row := range rows {
		if row.Checked {
			n++
		}
	}
	return n
}

func TestCoverLayoutTable(t *testing.T) {
	// The layout is declarative; these assertions pin the form's shape
	// without inspecting draw calls.
	names := make(map[string]bool)
	for _, field := range coverFields {
		assert.False(t, names[field.Name], "duplicate layout entry %q", field.Name)
		names[field.Name] = true

		assert.Greater(t, field.Box.W, 0.0, "%s width", field.Name)
		assert.Greater(t, field.Box.H, 0.0, "%s height", field.Name)
		assert.GreaterOrEqual(t, field.Box.X, 0.0, "%s x", field.Name)
		assert.LessOrEqual(t, field.Box.X+field.Box.W, pageWidth, "%s overflows right edge", field.Name)
		assert.LessOrEqual(t, field.Box.Y+field.Box.H, pageHeight, "%s overflows bottom edge", field.Name)
	}
	for _, want := range []string{"submittedTo", "projectName", "projectNumber", "preparedBy", "contact", "date"} {
		assert.True(t, names[want], "layout table missing %q", want)
	}

	// Every layout-table field resolves to project data.
	p := models.ProjectData{
		ProjectName:   "P",
		Organization:  "O",
		PreparerName:  "N",
		Date:          "D",
		ProjectNumber: "#",
		ContactEmail:  "e@x",
		ContactPhone:  "ph",
	}
	for _, field := range coverFields {
		assert.NotEmpty(t, fieldValue(field.Name, p), "field %q resolves empty", field.Name)
	}
}

func TestJoinContact(t *testing.T) {
	assert.Equal(t, "ph / e@x", joinContact("ph", "e@x"))
	assert.Equal(t, "e@x", joinContact("", "e@x"))
	assert.Equal(t, "ph", joinContact("ph", ""))
}

package models

import "regexp"

// ProjectData is the project metadata block rendered onto the cover sheet.
// It is supplied by the caller and treated as immutable for the duration of
// one assembly run.
type ProjectData struct {
	ProjectName   string `json:"projectName"`
	Organization  string `json:"organization"`
	PreparerName  string `json:"preparerName"`
	Date          string `json:"date"`
	ProjectNumber string `json:"projectNumber,omitempty"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	ProductID     string `json:"productId"`

	Status         StatusFlags    `json:"status"`
	SubmittalTypes SubmittalTypes `json:"submittalTypes"`
}

// StatusFlags are the independent "Status/Action" checkboxes on the cover
// sheet. Zero or more may be set.
type StatusFlags struct {
	ForReview          bool `json:"forReview"`
	ForApproval        bool `json:"forApproval"`
	ForRecord          bool `json:"forRecord"`
	ForInformationOnly bool `json:"forInformationOnly"`
}

// SubmittalTypes are the independent document-category checkboxes on the
// cover sheet. When Other is set, OtherText carries the free-text qualifier
// appended to its label.
type SubmittalTypes struct {
	ProductData        bool   `json:"productData"`
	ShopDrawings       bool   `json:"shopDrawings"`
	Samples            bool   `json:"samples"`
	Calculations       bool   `json:"calculations"`
	TestReports        bool   `json:"testReports"`
	Certificates       bool   `json:"certificates"`
	ManufacturerData   bool   `json:"manufacturerData"`
	InstallationGuides bool   `json:"installationGuides"`
	OperationManuals   bool   `json:"operationManuals"`
	MaintenanceData    bool   `json:"maintenanceData"`
	WarrantyDocs       bool   `json:"warrantyDocs"`
	QualityControl     bool   `json:"qualityControl"`
	DesignData         bool   `json:"designData"`
	Other              bool   `json:"other"`
	OtherText          string `json:"otherText,omitempty"`
}

// DocumentReference identifies one user-selected document, in user-chosen
// order. Address is either an absolute URL (http(s):// or gs://) or a path
// relative to the configured content origin. Category is used only for the
// divider page subtitle.
type DocumentReference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Category string `json:"category"`
}

var filenameDisallowed = regexp.MustCompile(`[^A-Za-z0-9]`)

// PacketFilename derives the download filename (without extension) from a
// project name. Every disallowed character is replaced one-for-one with an
// underscore, so the mapping is reversible in length.
func PacketFilename(projectName string) string {
	return filenameDisallowed.ReplaceAllString(projectName, "_") + "_Packet"
}

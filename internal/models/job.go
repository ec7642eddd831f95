package models

import "time"

// PacketJob is the Firestore record for one packet-assembly run. It tracks
// the overall status of the run and the shape of its output.
type PacketJob struct {
	ProjectName   string    `firestore:"projectName,omitempty"`
	Filename      string    `firestore:"filename,omitempty"`
	Status        string    `firestore:"status,omitempty"`
	ErrorDetails  string    `firestore:"errorDetails,omitempty"`
	DocumentCount int       `firestore:"documentCount,omitempty"`
	PageCount     int       `firestore:"pageCount,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt,omitempty"`
}

// PacketJob status values.
const (
	JobStatusAssembling = "ASSEMBLING"
	JobStatusComplete   = "COMPLETE"
	JobStatusFailed     = "FAILED"
)

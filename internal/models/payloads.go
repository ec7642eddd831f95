package models

// These structs define the JSON payloads exchanged with the packet-assembly
// service, both over the HTTP function and via manifest objects dropped in
// the manifest bucket.

// AssemblePacketRequest is the full input for one assembly run: the cover
// sheet data plus the ordered document list. Document order is significant
// and is preserved exactly in the output.
type AssemblePacketRequest struct {
	Project   ProjectData         `json:"project"`
	Documents []DocumentReference `json:"documents"`
}

// PacketResult is the in-process output of one assembly run. The HTTP layer
// streams PDF as the response body; the watcher writes it to the output
// bucket under Filename.
type PacketResult struct {
	Filename  string
	PageCount int
	PDF       []byte
}

// ErrorResponse is the structured body returned when a whole run fails.
// Per-document failures never produce this; they degrade to error pages
// inside the packet.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GCSEvent is the payload of a GCS object-finalized event, used by the
// manifest watcher.
type GCSEvent struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
}

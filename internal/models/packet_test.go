package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketFilename(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		want        string
	}{
		{
			name:        "plain name",
			projectName: "Riverside",
			want:        "Riverside_Packet",
		},
		{
			name:        "disallowed characters collapse one-for-one",
			projectName: "Acme/ Tower #3",
			want:        "Acme__Tower__3_Packet",
		},
		{
			name:        "spaces become underscores",
			projectName: "North Wing HVAC",
			want:        "North_Wing_HVAC_Packet",
		},
		{
			name:        "empty project name",
			projectName: "",
			want:        "_Packet",
		},
		{
			name:        "digits survive",
			projectName: "Bldg7",
			want:        "Bldg7_Packet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PacketFilename(tt.projectName))
		})
	}
}

func TestPacketFilenameOneForOne(t *testing.T) {
	// Each disallowed character is replaced individually, never collapsed:
	// the output length equals input length plus the suffix.
	in := "a / b"
	got := PacketFilename(in)
	assert.Equal(t, "a___b_Packet", got)
	assert.Len(t, got, len(in)+len("_Packet"))
}

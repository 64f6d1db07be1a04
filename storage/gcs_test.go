package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		filename string
		want     string
	}{
		{"plain", "scans/", "apple.jpg", "scans/abc_apple.jpg"},
		{"no prefix", "", "apple.jpg", "abc_apple.jpg"},
		{"strips directories", "scans", "../../etc/passwd", "scans/abc_passwd"},
		{"windows path", "scans", `C:\Users\me\lunch photo.png`, "scans/abc_lunch_photo.png"},
		{"empty name", "scans", "", "scans/abc_image.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectPath(tt.prefix, "abc", tt.filename))
		})
	}
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/vitalplan-scans/scans/x.jpg",
		PublicURL("vitalplan-scans", "scans/x.jpg"))
}

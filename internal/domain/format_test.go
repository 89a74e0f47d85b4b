package domain

import "testing"

func TestFormatStorage(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5*1024*1024 + 512*1024, "5.5 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{3 * 1024 * 1024 * 1024 / 2, "1.50 GB"},
	}
	for _, tt := range tests {
		if got := FormatStorage(tt.bytes); got != tt.want {
			t.Errorf("FormatStorage(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John Doe", "JD"},
		{"john doe", "JD"},
		{"Cher", "C"},
		{"Mary Jane Watson", "MJ"},
		{"  padded   name  ", "PN"},
		{"", ""},
		{"émile zola", "ÉZ"},
	}
	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPhotoResolution(t *testing.T) {
	tests := []struct {
		height int
		want   string
	}{
		{2160, "4K"},
		{3000, "4K"},
		{1080, "1080p"},
		{720, "720p"},
		{480, "480p"},
		{0, ""},
	}
	for _, tt := range tests {
		p := Photo{Height: tt.height}
		if got := p.Resolution(); got != tt.want {
			t.Errorf("Resolution() with height %d = %q, want %q", tt.height, got, tt.want)
		}
	}
}

func TestPhotoDimensions(t *testing.T) {
	if got := (Photo{Width: 800, Height: 600}).Dimensions(); got != "800x600" {
		t.Errorf("Dimensions() = %q, want 800x600", got)
	}
	if got := (Photo{}).Dimensions(); got != "" {
		t.Errorf("Dimensions() on zero photo = %q, want empty", got)
	}
}

package catalog

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"rfc822 timestamp", "Mon, 09 Dec 2024 18:25:23 GMT", "Dec 09, 2024", true},
		{"single digit day", "Wed, 5 Mar 2025 07:00:00 GMT", "Mar 05, 2025", true},
		{"other zone name", "Tue, 01 Jul 2025 12:00:00 UTC", "Jul 01, 2025", true},
		{"garbage stays raw", "garbage", "garbage", false},
		{"empty stays empty", "", "", false},
		{"numeric offset stays raw", "Mon, 09 Dec 2024 18:25:23 +0000", "Mon, 09 Dec 2024 18:25:23 +0000", false},
		{"date only stays raw", "2024-12-09", "2024-12-09", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatDate(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FormatDate(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

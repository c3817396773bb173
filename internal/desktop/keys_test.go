package desktop

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ctrl", "ctrl"},
		{"CTRL", "ctrl"},
		{" Shift ", "shift"},
		{"win", "cmd"},
		{"Super", "cmd"},
		{"esc", "escape"},
		{"Return", "enter"},
		{"pgup", "pageup"},
		{"PgDn", "pagedown"},
		{"spacebar", "space"},
		{" ", "space"},
		{"\t", "tab"},
		{"A", "A"},
		{"s", "s"},
		{"f5", "f5"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		in      string
		want    Button
		wantErr bool
	}{
		{"", ButtonLeft, false},
		{"left", ButtonLeft, false},
		{"RIGHT", ButtonRight, false},
		{" middle ", ButtonMiddle, false},
		{"primary", "", true},
		{"4", "", true},
	}
	for _, tt := range tests {
		got, err := ParseButton(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseButton(%q): error %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseButton(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

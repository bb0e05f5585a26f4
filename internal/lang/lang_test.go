package lang

import (
	"reflect"
	"testing"
)

func TestTargetsOrder(t *testing.T) {
	want := []string{"ar", "nl", "en", "id", "it", "ja", "de", "fr", "ru", "es"}
	if got := Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}

	seen := make(map[string]bool)
	for _, target := range Targets {
		if target.MessageID == "" {
			t.Errorf("Target %s has no message ID", target.Code)
		}
		if seen[target.MessageID] {
			t.Errorf("Duplicate message ID %s", target.MessageID)
		}
		seen[target.MessageID] = true
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{" de ", "de"},
		{"pt-BR", "pt"},
		{"pt_BR", "pt"},
		{"zh-CN", "zh"},
		{"", ""},
		{"und", ""},
		{"UND", ""},
		{"mul", ""},
		{"zxx", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"ar", true},
		{"AR", true},
		{"he", true},
		{"en", false},
		{"ja", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsRTL(tt.code); got != tt.want {
				t.Errorf("IsRTL(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsTarget(t *testing.T) {
	if !IsTarget("en") || !IsTarget("ES") {
		t.Error("Expected en and ES to be targets")
	}
	if IsTarget("bg") {
		t.Error("bg is not a target language")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("ar"); got != "Arabic" {
		t.Errorf("DisplayName(ar) = %q, want Arabic", got)
	}
	if got := DisplayName("en"); got != "English" {
		t.Errorf("DisplayName(en) = %q, want English", got)
	}
}

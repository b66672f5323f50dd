package icon

import (
	"testing"

	"github.com/goosestudio/acficons/pkg/errors"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Reference
		wantCode errors.Code
	}{
		{
			name:  "font awesome solid",
			input: "font-awesome:home:fas",
			want:  Reference{Library: FontAwesome, CSSFragment: "home", StyleTemplate: "fas"},
		},
		{
			name:  "ionicons templated",
			input: "ionicons:settings:ion-md-%",
			want:  Reference{Library: Ionicons, CSSFragment: "settings", StyleTemplate: "ion-md-%"},
		},
		{
			name:  "elementor empty template",
			input: "elementor:eicon-star:",
			want:  Reference{Library: Elementor, CSSFragment: "eicon-star", StyleTemplate: ""},
		},
		{
			name:  "pro library",
			input: "font-awesome-pro:bell:fal",
			want:  Reference{Library: FontAwesomePro, CSSFragment: "bell", StyleTemplate: "fal"},
		},
		{name: "empty", input: "", wantCode: errors.ErrCodeInvalidReference},
		{name: "one field", input: "font-awesome", wantCode: errors.ErrCodeInvalidReference},
		{name: "two fields", input: "font-awesome:home", wantCode: errors.ErrCodeInvalidReference},
		{name: "four fields", input: "font-awesome:home:fas:extra", wantCode: errors.ErrCodeInvalidReference},
		{name: "empty fragment", input: "font-awesome::fas", wantCode: errors.ErrCodeInvalidReference},
		{name: "unknown library", input: "material:home:mi", wantCode: errors.ErrCodeUnknownLibrary},
		{name: "empty library", input: ":home:fas", wantCode: errors.ErrCodeUnknownLibrary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.input)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("ParseReference(%q) error = %v, want code %s", tt.input, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReference(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseReference(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestCSSClass(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"font-awesome:home:fas", "fas home"},
		{"font-awesome:fa-home:fas", "fas fa-home"},
		{"ionicons:settings:ion-md-%", "ion-md-settings"},
		{"ionicons:logo-github:ion-%", "ion-logo-github"},
		{"elementor:eicon-star:", " eicon-star"},
		{"elementor:star:eicon-%", "eicon-star"},
		{"font-awesome:x:%-%", "x-x"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ref, err := ParseReference(tt.ref)
			if err != nil {
				t.Fatalf("ParseReference error: %v", err)
			}
			if got := ref.CSSClass(); got != tt.want {
				t.Errorf("CSSClass() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCSSClassRules(t *testing.T) {
	fragments := []string{"home", "arrow-up", "500px"}
	templates := []string{"fas", "far", "ion-ios-%", "ion-%", "eicon", "x-%-y"}

	for _, frag := range fragments {
		for _, tmpl := range templates {
			ref := Reference{Library: FontAwesome, CSSFragment: frag, StyleTemplate: tmpl}
			got := ref.CSSClass()

			var want string
			switch tmpl {
			case "ion-ios-%":
				want = "ion-ios-" + frag
			case "ion-%":
				want = "ion-" + frag
			case "x-%-y":
				want = "x-" + frag + "-y"
			default:
				want = tmpl + " " + frag
			}
			if got != want {
				t.Errorf("CSSClass(%q, %q) = %q, want %q", frag, tmpl, got, want)
			}
		}
	}
}

func TestNewReference(t *testing.T) {
	ref, err := NewReference(Ionicons, "settings", "ion-md-%")
	if err != nil {
		t.Fatalf("NewReference error: %v", err)
	}
	parsed, err := ParseReference(ref.String())
	if err != nil {
		t.Fatalf("ParseReference(%q) error: %v", ref.String(), err)
	}
	if parsed != ref {
		t.Errorf("round trip = %+v, want %+v", parsed, ref)
	}

	if _, err := NewReference(Ionicons, "a:b", "ion-%"); !errors.Is(err, errors.ErrCodeInvalidReference) {
		t.Errorf("colon in fragment: error = %v, want INVALID_REFERENCE", err)
	}
	if _, err := NewReference(Ionicons, "a", "ion:%"); !errors.Is(err, errors.ErrCodeInvalidReference) {
		t.Errorf("colon in template: error = %v, want INVALID_REFERENCE", err)
	}
	if _, err := NewReference("material", "a", ""); !errors.Is(err, errors.ErrCodeUnknownLibrary) {
		t.Errorf("unknown library: error = %v, want UNKNOWN_LIBRARY", err)
	}
}

package icon

import (
	"testing"

	"github.com/goosestudio/acficons/pkg/errors"
)

func TestSpriteStyle(t *testing.T) {
	tests := []struct {
		ref      string
		want     string
		wantCode errors.Code
	}{
		{ref: "font-awesome:home:fas", want: "solid"},
		{ref: "font-awesome:bell:far", want: "regular"},
		{ref: "font-awesome:github:fab", want: "brands"},
		{ref: "font-awesome:home:fas fa-%", want: "solid"},
		{ref: "font-awesome-pro:bell:fal", want: "light"},
		{ref: "font-awesome-pro:bell:fad", want: "duotone"},
		{ref: "font-awesome-pro:home:fas", want: "solid"},
		{ref: "ionicons:settings:ion-md-%", want: "ionicons"},
		{ref: "ionicons:logo-github:ion-%", want: "ionicons"},
		{ref: "elementor:eicon-star:", want: "eicons"},
		{ref: "font-awesome:bell:fal", wantCode: errors.ErrCodeUnknownStyle},
		{ref: "font-awesome:home:", wantCode: errors.ErrCodeUnknownStyle},
		{ref: "font-awesome:home:xyz", wantCode: errors.ErrCodeUnknownStyle},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ref, err := ParseReference(tt.ref)
			if err != nil {
				t.Fatalf("ParseReference error: %v", err)
			}
			got, err := ref.SpriteStyle()
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("SpriteStyle() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("SpriteStyle() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SpriteStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSymbolID(t *testing.T) {
	tests := []struct {
		ref      string
		want     string
		wantCode errors.Code
	}{
		{ref: "font-awesome:home:fas", want: "home"},
		{ref: "font-awesome:fa-home:fas", want: "home"},
		{ref: "font-awesome-pro:fa-coffee:fal", want: "coffee"},
		{ref: "ionicons:settings:ion-md-%", want: "md-settings"},
		{ref: "ionicons:settings:ion-ios-%", want: "ios-settings"},
		{ref: "ionicons:logo-github:ion-%", want: "logo-github"},
		{ref: "ionicons:settings:ion", want: "settings"},
		{ref: "elementor:eicon-star:", want: "eicon-star"},
		{ref: "elementor:star:eicon", want: "eicon-star"},
		{ref: "elementor:star:eicon-%", want: "eicon-star"},
		{ref: "font-awesome:../etc:fas", wantCode: errors.ErrCodeInvalidIconName},
		{ref: "font-awesome:a/b:fas", wantCode: errors.ErrCodeInvalidIconName},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ref, err := ParseReference(tt.ref)
			if err != nil {
				t.Fatalf("ParseReference error: %v", err)
			}
			got, err := ref.SymbolID()
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("SymbolID() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("SymbolID() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SymbolID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLibrariesTableIsComplete(t *testing.T) {
	libs := Libraries()
	want := []Library{Elementor, FontAwesome, FontAwesomePro, Ionicons}
	if len(libs) != len(want) {
		t.Fatalf("Libraries() = %v, want %v", libs, want)
	}
	for i := range want {
		if libs[i] != want[i] {
			t.Errorf("Libraries()[%d] = %q, want %q", i, libs[i], want[i])
		}
		if _, err := ParseLibrary(string(want[i])); err != nil {
			t.Errorf("ParseLibrary(%q) error: %v", want[i], err)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
	}{
		{"class", FormatClass},
		{"svg_sprite_url", FormatSpriteURL},
		{"svg_url", FormatSVGURL},
		{"svg_path", FormatSVGPath},
		{"svg_raw", FormatSVGRaw},
		{"", FormatClass},
		{"png", FormatClass},
	}
	for _, tt := range tests {
		if got := ParseOutputFormat(tt.in); got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, f := range OutputFormats() {
		want := f == FormatSVGURL || f == FormatSVGPath || f == FormatSVGRaw
		if f.ExtractsFile() != want {
			t.Errorf("%s.ExtractsFile() = %v, want %v", f, f.ExtractsFile(), want)
		}
	}
}

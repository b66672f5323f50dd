package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goosestudio/acficons/pkg/icon"
)

type source struct {
	library icon.Library
	parse   func([]byte) ([]Entry, error)
}

var sources = []source{
	{icon.Elementor, parseElementor},
	{icon.FontAwesome, parseFontAwesome},
	{icon.Ionicons, parseIonicons},
}

// Font Awesome style names mapped to their class prefix.
var fontAwesomePrefixes = map[string]string{
	"solid":   "fas",
	"regular": "far",
	"brands":  "fab",
}

type fontAwesomeIcon struct {
	Label   string   `json:"label"`
	Unicode string   `json:"unicode"`
	Styles  []string `json:"styles"`
}

func parseFontAwesome(data []byte) ([]Entry, error) {
	var meta map[string]fontAwesomeIcon
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(meta))
	for name, m := range meta {
		e := Entry{
			Key:       name + "-fa5",
			Label:     m.Label,
			Unicode:   m.Unicode,
			Library:   icon.FontAwesome,
			Templates: make(map[string]string, len(m.Styles)),
			CSS:       "fa-" + name,
		}
		for _, style := range m.Styles {
			prefix, ok := fontAwesomePrefixes[style]
			if !ok {
				prefix = fontAwesomePrefixes["solid"]
			}
			e.Styles = append(e.Styles, style)
			e.Templates[style] = prefix
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type ioniconsMeta struct {
	Icons []struct {
		Icons []string `json:"icons"`
	} `json:"icons"`
}

const (
	ioniconsPlatformPrefix = "ios-"
	ioniconsLogoPrefix     = "logo-"
)

// parseIonicons groups platform variants ("ios-add", "md-add") into one
// entry with an ios and an md style. Logos have a single style.
func parseIonicons(data []byte) ([]Entry, error) {
	var meta ioniconsMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(meta.Icons))
	for i, group := range meta.Icons {
		if len(group.Icons) == 0 {
			return nil, fmt.Errorf("icon group %d is empty", i)
		}
		first := group.Icons[0]
		if name, ok := strings.CutPrefix(first, ioniconsPlatformPrefix); ok {
			entries = append(entries, Entry{
				Key:       name + "-ion",
				Label:     labelFor(name),
				Library:   icon.Ionicons,
				Styles:    []string{"ios", "md"},
				Templates: map[string]string{"ios": "ion-ios-%", "md": "ion-md-%"},
				CSS:       name,
			})
			continue
		}
		name := strings.TrimPrefix(first, ioniconsLogoPrefix)
		entries = append(entries, Entry{
			Key:       name + "-ion",
			Label:     labelFor(name),
			Library:   icon.Ionicons,
			Styles:    []string{"logo"},
			Templates: map[string]string{"logo": "ion-%"},
			CSS:       first,
		})
	}
	return entries, nil
}

type elementorIcon struct {
	Label string `json:"label"`
}

func parseElementor(data []byte) ([]Entry, error) {
	var meta map[string]elementorIcon
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(meta))
	for name, m := range meta {
		label := m.Label
		if label == "" {
			label = labelFor(name)
		}
		entries = append(entries, Entry{
			Key:       name + "-eicon",
			Label:     label,
			Library:   icon.Elementor,
			Styles:    []string{"regular"},
			Templates: map[string]string{"regular": ""},
			CSS:       "eicon-" + name,
		})
	}
	return entries, nil
}

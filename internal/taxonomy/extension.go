package taxonomy

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LoadExtension reads an extension from a YAML (or any viper supported) file.
//
//	name: welding
//	categories:
//	  - name: industrial_welding
//	    skills: [MIG, TIG]
//	specializations:
//	  - label: Сварщик
//	    keywords: [сварщик]
func LoadExtension(path string) (Extension, error) {
	var ext Extension

	path = strings.TrimSpace(path)
	if path == "" {
		return ext, fmt.Errorf("extension path is empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return ext, fmt.Errorf("reading taxonomy extension %q: %w", path, err)
	}

	if err := mapstructure.Decode(v.AllSettings(), &ext); err != nil {
		return ext, fmt.Errorf("decoding taxonomy extension %q: %w", path, err)
	}

	if ext.Name == "" {
		ext.Name = path
	}

	return ext, nil
}

// LoadExtensions loads every path in order.
func LoadExtensions(paths []string) ([]Extension, error) {
	exts := make([]Extension, 0, len(paths))
	for _, p := range paths {
		ext, err := LoadExtension(p)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

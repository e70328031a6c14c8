package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mabhi256/sdata/emit"
)

// styleFile is the on-disk shape of a `--style-file` YAML document, e.g.:
//
//	breakBeforeBrace: false
//	spaceBeforeBrace: true
//	breakAfterBrace: true
//	spaceAfterBrace: false
//	spaceBeforeAssign: false
//	spaceAfterAssign: true
//	breakAfterSeparator: true
//	spaceAfterSeparator: false
//	breakForAnonymousBraces: true
//	indent: "  "
type styleFile struct {
	BreakBeforeBrace        bool   `yaml:"breakBeforeBrace"`
	SpaceBeforeBrace        bool   `yaml:"spaceBeforeBrace"`
	BreakAfterBrace         bool   `yaml:"breakAfterBrace"`
	SpaceAfterBrace         bool   `yaml:"spaceAfterBrace"`
	SpaceBeforeAssign       bool   `yaml:"spaceBeforeAssign"`
	SpaceAfterAssign        bool   `yaml:"spaceAfterAssign"`
	BreakAfterSeparator     bool   `yaml:"breakAfterSeparator"`
	SpaceAfterSeparator     bool   `yaml:"spaceAfterSeparator"`
	BreakForAnonymousBraces bool   `yaml:"breakForAnonymousBraces"`
	Indent                  string `yaml:"indent"`
}

func loadStyleFile(path string) (emit.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return emit.Config{}, err
	}

	var sf styleFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return emit.Config{}, err
	}

	var style emit.Style
	if sf.BreakBeforeBrace {
		style |= emit.BreakBeforeBrace
	}
	if sf.SpaceBeforeBrace {
		style |= emit.SpaceBeforeBrace
	}
	if sf.BreakAfterBrace {
		style |= emit.BreakAfterBrace
	}
	if sf.SpaceAfterBrace {
		style |= emit.SpaceAfterBrace
	}
	if sf.SpaceBeforeAssign {
		style |= emit.SpaceBeforeAssign
	}
	if sf.SpaceAfterAssign {
		style |= emit.SpaceAfterAssign
	}
	if sf.BreakAfterSeparator {
		style |= emit.BreakAfterSeparator
	}
	if sf.SpaceAfterSeparator {
		style |= emit.SpaceAfterSeparator
	}
	if sf.BreakForAnonymousBraces {
		style |= emit.BreakForAnonymousBraces
	}

	indent := sf.Indent
	if indent == "" {
		indent = "  "
	}

	return emit.Config{Style: style, Indent: indent}, nil
}

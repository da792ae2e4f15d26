package astwalk

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format is an output format for WriteReport.
type Format string

// Report formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q, want %q or %q", s, FormatText, FormatYAML)
}

// Report lists the function declarations of a package.
type Report struct {
	Package string `yaml:"package"`
	Funcs   []Func `yaml:"funcs"`
}

// NewReport returns the report of u, restricted to file if not empty.
func NewReport(u *Unit, file string) Report {
	pkg := u.PkgPath
	if pkg == "" {
		pkg = u.Name
	}
	return Report{Package: pkg, Funcs: u.Funcs(file)}
}

// WriteReport writes reports to w. The text format writes one function per
// line, as rendered by Func.String; package names are omitted.
func WriteReport(w io.Writer, format Format, reports ...Report) error {
	switch format {
	case FormatText:
		for _, r := range reports {
			for _, f := range r.Funcs {
				if _, err := fmt.Fprintln(w, f); err != nil {
					return err
				}
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("invalid format %q", format)
}

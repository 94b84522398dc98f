package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shogo82148/printf"
)

// A scriptCase is one entry of a YAML test script:
//
//	- format: "%ld %lh"
//	  args: [-5, 255]
//	  want: "-5 0xff"
//	- format: "%lf"
//	  args: [3.14159265]
//	  capture: 3
//	  want: "3.1"
type scriptCase struct {
	Format  string   `yaml:"format"`
	Args    []string `yaml:"args"`
	Want    string   `yaml:"want"`
	Capture int      `yaml:"capture"`
}

func loadScript(path string) ([]scriptCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var cases []scriptCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return cases, nil
}

// runScript runs every case in the script at path, writes one line per
// case to w and returns the number of failed cases.
func runScript(path string, w io.Writer) (failed int, err error) {
	cases, err := loadScript(path)
	if err != nil {
		return 0, err
	}
	for i, c := range cases {
		got, n, err := render(c)
		switch {
		case err != nil:
			failed++
			log.Printf("case %d %q: %v", i+1, c.Format, err)
			fmt.Fprintf(w, "FAIL %d\n", i+1)
		case got != c.Want:
			failed++
			log.Printf("case %d %q: expected %q, got %q", i+1, c.Format, c.Want, got)
			fmt.Fprintf(w, "FAIL %d\n", i+1)
		default:
			fmt.Fprintf(w, "ok   %d %q (%d characters)\n", i+1, got, n)
		}
	}
	return failed, nil
}

// render renders one case and returns the output and the character count.
func render(c scriptCase) (string, int, error) {
	args, err := parseArgs(c.Format, c.Args)
	if err != nil {
		return "", 0, err
	}
	if c.Capture > 0 {
		buf := printf.NewCapture(make([]rune, c.Capture))
		n := printf.Fprintf(buf, c.Format, args...)
		return buf.String(), n, nil
	}
	var buf printf.Buffer
	n := printf.Fprintf(&buf, c.Format, args...)
	return buf.String(), n, nil
}

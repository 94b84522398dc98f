// Command printf renders a format string with the printf engine.
//
// Usage:
//
//	printf [-capture n] [-v] format [args...]
//	printf -script cases.yaml
//
// Arguments are parsed according to the directive that consumes them,
// so "printf '%ld %lh\n' -5 255" prints "-5 0xff".
// Backslash escapes such as \n in the format are interpreted.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shogo82148/printf"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: printf [-capture n] [-v] format [args...]\n")
	fmt.Fprintf(os.Stderr, "       printf -script cases.yaml\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("printf: ")

	capture := flag.Int("capture", 0, "render into a capture buffer of `n` characters")
	script := flag.String("script", "", "run the test cases in the YAML `file`")
	verbose := flag.Bool("v", false, "log the parsed arguments")
	flag.Usage = usage
	flag.Parse()

	if *script != "" {
		failed, err := runScript(*script, os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		printf.Printf("%f\n", printf.Float32(0.1))
		return
	}

	format := unescape(flag.Arg(0))
	args, err := parseArgs(format, flag.Args()[1:])
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		for i, a := range args {
			log.Printf("arg %d: %v", i, a)
		}
	}
	if err := printf.Check(format, args...); err != nil {
		log.Printf("warning: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	if *capture > 0 {
		c := printf.NewCapture(make([]rune, *capture))
		n := printf.Fprintf(c, format, args...)
		fmt.Fprintf(w, "%s\n", c)
		log.Printf("%d characters rendered, %d captured, %d dropped", n, c.Len(), c.Dropped())
		return
	}
	s := printf.NewWriterSink(w)
	printf.Fprintf(s, format, args...)
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// unescape interprets Go backslash escapes in s.
// s is returned unchanged if it is not a valid escaped string.
func unescape(s string) string {
	u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return s
	}
	return u
}

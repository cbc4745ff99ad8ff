// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jspan prints the value structure of a relaxed JSON input.
//
// Usage:
//
//	jspan [flags] [file]
//
// If no file is given, input is read from stdin. Each value is printed on its
// own line, indented by nesting depth and followed by its kind and span.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/creachadair/jspan"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"

	"go4.org/mem"
)

var rootCmd = &cobra.Command{
	Use:   "jspan [flags] [file]",
	Short: "Print the value structure of a relaxed JSON input",
	Long: `Print the value structure of a relaxed JSON input.

Objects and arrays are entered and their contents printed with indentation.
With --depth, containers below that depth are printed as single values.
With --hujson, comments and trailing commas are removed before scanning.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMain,
}

func init() {
	rootCmd.Flags().Bool("hujson", false, "standardize HuJSON input before scanning")
	rootCmd.Flags().Int("depth", 0, "maximum depth of containers to enter (0 means no limit)")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("jspan: %v", err)
	}
}

type options struct {
	HuJSON   bool
	MaxDepth int
	NoColor  bool
}

func runMain(cmd *cobra.Command, args []string) error {
	var opts options
	var err error
	if opts.HuJSON, err = cmd.Flags().GetBool("hujson"); err != nil {
		return err
	}
	if opts.MaxDepth, err = cmd.Flags().GetInt("depth"); err != nil {
		return err
	}
	if opts.NoColor, err = cmd.Flags().GetBool("no-color"); err != nil {
		return err
	}

	var input []byte
	if len(args) == 0 || args[0] == "-" {
		input, err = io.ReadAll(cmd.InOrStdin())
	} else {
		input, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	return run(cmd.OutOrStdout(), input, opts)
}

// run prints the structure of input to w.
func run(w io.Writer, input []byte, opts options) error {
	if opts.HuJSON {
		// Standardize replaces comments with whitespace, so offsets are preserved.
		std, err := hujson.Standardize(input)
		if err != nil {
			return fmt.Errorf("standardize: %w", err)
		}
		input = std
	}
	p := newPrinter(w, !opts.NoColor)
	return jspan.Walker{MaxDepth: opts.MaxDepth}.Walk(jspan.NewCursor(mem.B(input)), p)
}

type printer struct {
	w     io.Writer
	depth int

	delim, str, bare, info *color.Color
}

func newPrinter(w io.Writer, useColor bool) *printer {
	p := &printer{
		w:     w,
		delim: color.New(color.FgCyan, color.Bold),
		str:   color.New(color.FgGreen),
		bare:  color.New(color.FgYellow),
		info:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.delim, p.str, p.bare, p.info} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) line(c *color.Color, loc jspan.Anchor, label string) {
	fmt.Fprintf(p.w, "%s%s %s\n", strings.Repeat("  ", p.depth),
		c.Sprint(loc.Text().StringCopy()), p.info.Sprintf("%s@%s", label, loc.Location()))
}

func (p *printer) BeginObject(loc jspan.Anchor) error {
	p.line(p.delim, loc, "object")
	p.depth++
	return nil
}

func (p *printer) EndObject(loc jspan.Anchor) error {
	p.depth--
	p.line(p.delim, loc, "end")
	return nil
}

func (p *printer) BeginArray(loc jspan.Anchor) error {
	p.line(p.delim, loc, "array")
	p.depth++
	return nil
}

func (p *printer) EndArray(loc jspan.Anchor) error {
	p.depth--
	p.line(p.delim, loc, "end")
	return nil
}

func (p *printer) Value(loc jspan.Anchor) error {
	text := loc.Text()
	switch {
	case jspan.IsContainer(text):
		p.line(p.delim, loc, loc.Kind().String()+"(skipped)")
	case jspan.IsString(text):
		p.line(p.str, loc, "string")
	case jspan.IsNull(text):
		p.line(p.bare, loc, "null")
	case jspan.IsBool(text):
		p.line(p.bare, loc, "bool")
	case jspan.IsInt(text):
		p.line(p.bare, loc, "int")
	case jspan.IsNumber(text):
		p.line(p.bare, loc, "number")
	default:
		p.line(p.bare, loc, "bare")
	}
	return nil
}

func (p *printer) EndOfInput(loc jspan.Anchor) {}

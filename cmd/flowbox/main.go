// Command flowbox lays out formatted text inside a fixed box and renders
// the result, either as plain text on stdout or onto the live terminal.
//
// The format string may contain {argument} placeholders:
//
//	{#rrggbb}    switch the text color
//	{font:name}  switch to a named font
//	{br}         insert a line break
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/pressline/flowbox"
	"github.com/pressline/flowbox/internal/debug"
	"github.com/pressline/flowbox/internal/vdisplay"
	"github.com/pressline/flowbox/tcelldraw"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		boxWidth    int
		boxHeight   int
		breakWords  bool
		ellipsis    bool
		fgHex       string
		bgHex       string
		tty         bool
		measureOnly bool
		showVersion bool
		showHelp    bool
		debugMode   bool
		debugFile   string
		debugPretty bool
	)

	pflag.IntVarP(&boxWidth, "width", "W", 40, "Box width in cells")
	pflag.IntVarP(&boxHeight, "height", "H", 10, "Box height in lines")
	pflag.BoolVarP(&breakWords, "break-words", "b", false, "Break words mid-line, inserting a hyphen")
	pflag.BoolVarP(&ellipsis, "ellipsis", "e", false, "Draw an ellipsis when content overflows the box")
	pflag.StringVar(&fgHex, "fg", "#ffffff", "Starting text color (hex)")
	pflag.StringVar(&bgHex, "bg", "#000000", "Background color (hex)")
	pflag.BoolVarP(&tty, "tty", "t", false, "Draw onto the live terminal and wait for a key")
	pflag.BoolVar(&measureOnly, "measure", false, "Measure only: print the final cursor and result")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.BoolVar(&debugMode, "debug", false, "Enable debug mode (outputs to stderr)")
	pflag.StringVar(&debugFile, "debug-file", "", "Write debug output to file instead of stderr")
	pflag.BoolVar(&debugPretty, "debug-pretty", false, "Use pretty format for debug output (default: JSON)")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}

	if showVersion {
		fmt.Printf("flowbox version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no format string provided")
		printHelp()
		return 1
	}
	format := strings.Join(args, " ")

	if boxWidth < 1 || boxHeight < 1 {
		fmt.Fprintln(os.Stderr, "Error: box dimensions must be positive")
		return 1
	}

	fg, err := flowbox.ParseColor(fgHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --fg: %v\n", err)
		return 1
	}
	bg, err := flowbox.ParseColor(bgHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --bg: %v\n", err)
		return 1
	}

	// Set up debug if enabled
	var layoutOpts []flowbox.Option
	if debugMode || debugFile != "" || os.Getenv("FLOWBOX_DEBUG") == "1" {
		debug.SetEnabled(true)
		debug.InitFromEnv()

		var output io.Writer = os.Stderr
		if debugFile != "" {
			file, err := os.Create(debugFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating debug file: %v\n", err)
				return 1
			}
			defer file.Close()
			output = file
		}

		var sink debug.Sink
		if debugPretty || os.Getenv("FLOWBOX_DEBUG_PRETTY") == "1" {
			sink = debug.NewPrettySink(output)
		} else {
			sink = debug.NewJSONSink(output)
		}

		session := debug.NewSession(sink)
		if session != nil {
			defer session.Close()
			layoutOpts = append(layoutOpts, flowbox.WithDebug(session))
		}
	}

	if tty {
		return runTTY(format, boxWidth, boxHeight, breakWords, ellipsis, fg, bg, layoutOpts)
	}
	return runGrid(format, boxWidth, boxHeight, breakWords, ellipsis, fg, bg, measureOnly, layoutOpts)
}

// runGrid lays the text into an in-memory grid and prints it.
func runGrid(format string, w, h int, breakWords, ellipsis bool, fg, bg flowbox.Color, measureOnly bool, opts []flowbox.Option) int {
	font := vdisplay.FixedFont{Advance: 1, Height: 1}
	style := makeStyle(boxBounds(w, h, font.Height), font, fg, bg, breakWords, ellipsis)
	resolve := makeResolver(map[string]flowbox.Font{"body": font})

	if measureOnly {
		cursor, result := flowbox.MeasureFormat(format, resolve, style, opts...)
		fmt.Printf("result: %s, cursor: (%d,%d)\n", result, cursor.X, cursor.Y)
		return 0
	}

	grid := vdisplay.NewGrid(w, h)
	result := flowbox.RenderFormat(format, resolve, style, grid, opts...)

	fmt.Println(grid.String())
	if result == flowbox.OutOfBounds {
		fmt.Fprintln(os.Stderr, "content overflowed the box")
	}
	return 0
}

// runTTY draws the layout onto the live terminal and waits for a key.
func runTTY(format string, w, h int, breakWords, ellipsis bool, fg, bg flowbox.Color, opts []flowbox.Option) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	screenW, screenH := screen.Size()
	if w > screenW {
		w = screenW
	}
	if h > screenH {
		h = screenH
	}

	font := tcelldraw.CellFont{}
	style := makeStyle(boxBounds(w, h, font.LineHeight()), font, fg, bg, breakWords, ellipsis)
	resolve := makeResolver(map[string]flowbox.Font{"body": font})

	flowbox.RenderFormat(format, resolve, style, tcelldraw.New(screen), opts...)
	screen.Show()

	// Wait for a key or mouse press before restoring the terminal.
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return 0
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// boxBounds converts a width in cells and a height in lines into layout
// bounds. The bottom edge constrains the top of the final line, so it sits
// one line height above height*lineHeight.
func boxBounds(w, h, lineHeight int) flowbox.Rect {
	return flowbox.Rect{X1: w, Y1: (h - 1) * lineHeight}
}

func makeStyle(bounds flowbox.Rect, font flowbox.Font, fg, bg flowbox.Color, breakWords, ellipsis bool) flowbox.Style {
	style := flowbox.NewStyle(bounds, font, fg, bg)
	if breakWords {
		style.LineBreaking = flowbox.BreakWordsAndInsertHyphen
	}
	if ellipsis {
		style.PageBreaking = flowbox.CutAndInsertEllipsis
	}
	return style
}

func makeResolver(fonts map[string]flowbox.Font) flowbox.Resolver {
	return flowbox.ChainResolvers(
		flowbox.MapResolver(map[string]flowbox.Op{
			"br": flowbox.TextOp([]byte("\n")),
		}),
		flowbox.DirectiveResolver(fonts),
	)
}

func printHelp() {
	fmt.Println(`flowbox - box-constrained text layout

Usage: flowbox [options] FORMAT...

Lays the format string into a WxH box. Placeholders:
  {#rrggbb}    switch the text color
  {font:name}  switch to a named font
  {br}         insert a line break

Options:`)
	pflag.PrintDefaults()
	fmt.Println(`
Examples:
  flowbox -W 20 -H 4 "the quick brown fox jumps over the lazy dog"
  flowbox -W 12 -H 3 -b -e "incomprehensibilities are overrated"
  flowbox --tty -W 30 -H 5 "plain {#ff0000}red{#ffffff} plain"

Environment:
  FLOWBOX_DEBUG=1          Enable debug mode
  FLOWBOX_DEBUG_PRETTY=1   Use pretty debug format`)
}

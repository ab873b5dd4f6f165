package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/strandworks/stringart/internal/canvas"
	"github.com/strandworks/stringart/internal/pins"
	"github.com/strandworks/stringart/internal/planner"
	"github.com/strandworks/stringart/internal/render"
	"github.com/strandworks/stringart/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// planDocument is the one-shot output written to -out.
type planDocument struct {
	Shape     string     `json:"shape"`
	PinCount  int        `json:"pin_count"`
	LineCount int        `json:"line_count"`
	Canvas    canvasSize `json:"canvas"`
	Pins      []pins.Pin `json:"pins"`
	Path      []int      `json:"path"`
}

type canvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("stringart %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "serve":
			runServe()
			return
		}
	}

	runOnce()
}

func printHelp() {
	fmt.Println("stringart - string-art plan generator")
	fmt.Println()
	fmt.Println("Usage: stringart [flags]        generate a plan for one image")
	fmt.Println("       stringart serve          run the JSON-RPC service on stdio")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -input PATH      source image (png, jpeg, gif, bmp, tiff)")
	fmt.Println("  -shape NAME      pin boundary: circle or square (default circle)")
	fmt.Println("  -pins N          number of pins (default 200)")
	fmt.Println("  -lines N         number of threads (default 1000)")
	fmt.Println("  -width N         canvas width in pixels (default 400)")
	fmt.Println("  -height N        canvas height in pixels (default 400)")
	fmt.Println("  -zoom F          canvas pixels per source pixel (default 1.0)")
	fmt.Println("  -offset-x F      horizontal pan in canvas pixels")
	fmt.Println("  -offset-y F      vertical pan in canvas pixels")
	fmt.Println("  -brightness F    brightness adjustment, -1 to 1")
	fmt.Println("  -contrast F      contrast adjustment, -1 to 1")
	fmt.Println("  -blur F          Gaussian blur radius in pixels")
	fmt.Println("  -invert          invert the source before planning")
	fmt.Println("  -out PATH        plan JSON output (default stdout)")
	fmt.Println("  -preview PATH    also render the plan to a PNG")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  STRINGART_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("In serve mode the process speaks JSON-RPC 2.0 over stdin/stdout,")
	fmt.Println("one message per line; see the describe method for the catalog.")
}

func runServe() {
	// Logging goes to stderr (stdout carries the protocol stream)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("STRINGART_LOG_LEVEL") == "debug" {
		log.Printf("stringart service v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func runOnce() {
	input := flag.String("input", "", "source image path")
	shapeName := flag.String("shape", "circle", "pin boundary: circle or square")
	pinCount := flag.Int("pins", 200, "number of pins")
	lineCount := flag.Int("lines", 1000, "number of threads")
	width := flag.Int("width", 400, "canvas width in pixels")
	height := flag.Int("height", 400, "canvas height in pixels")
	zoom := flag.Float64("zoom", 1.0, "canvas pixels per source pixel")
	offsetX := flag.Float64("offset-x", 0, "horizontal pan in canvas pixels")
	offsetY := flag.Float64("offset-y", 0, "vertical pan in canvas pixels")
	brightness := flag.Float64("brightness", 0, "brightness adjustment, -1 to 1")
	contrast := flag.Float64("contrast", 0, "contrast adjustment, -1 to 1")
	blurRadius := flag.Float64("blur", 0, "Gaussian blur radius in pixels")
	invert := flag.Bool("invert", false, "invert the source before planning")
	out := flag.String("out", "", "plan JSON output path (default stdout)")
	previewPath := flag.String("preview", "", "optional preview PNG path")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "stringart: -input is required (see stringart --help)")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	shape, err := pins.ParseShape(*shapeName)
	if err != nil {
		log.Fatalf("Bad -shape: %v", err)
	}

	layout, err := pins.Generate(shape, *pinCount, float64(*width), float64(*height))
	if err != nil {
		log.Fatalf("Pin layout failed: %v", err)
	}

	sess := canvas.NewSession()
	opts := canvas.Options{
		Brightness: *brightness,
		Contrast:   *contrast,
		Blur:       *blurRadius,
		Invert:     *invert,
	}
	if err := sess.Process(raw, *width, *height, *zoom, *offsetX, *offsetY, opts); err != nil {
		log.Fatalf("Image processing failed: %v", err)
	}

	path, err := planner.Plan(sess.Grid(), layout, *lineCount)
	if err != nil {
		log.Fatalf("Planning failed: %v", err)
	}

	doc := planDocument{
		Shape:     string(shape),
		PinCount:  len(layout),
		LineCount: len(path),
		Canvas:    canvasSize{Width: *width, Height: *height},
		Pins:      layout,
		Path:      path,
	}
	if err := writePlan(doc, *out); err != nil {
		log.Fatalf("Failed to write plan: %v", err)
	}

	if *previewPath != "" {
		if err := writePreview(layout, path, *width, *height, *previewPath); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
	}
}

func writePlan(doc planDocument, out string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	data = append(data, '\n')

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

func writePreview(layout []pins.Pin, path []int, width, height int, file string) error {
	res, err := render.Preview(layout, path, width, height, render.Options{})
	if err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		return fmt.Errorf("decode preview payload: %w", err)
	}
	return os.WriteFile(file, raw, 0o644)
}

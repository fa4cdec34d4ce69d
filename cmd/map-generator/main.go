package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/akamensky/argparse"
	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/trainers/navigation"
	"github.com/lixenwraith/trainers/terrain"
)

type options struct {
	seed   int64
	passes int
	field  string
	mode   navigation.Mode
}

func main() {
	parser := argparse.NewParser("map-generator", "Print generated trainer maps and cost fields")
	seed := parser.Int("s", "seed", &argparse.Options{Default: 0, Help: "Map seed (0 = wall clock)"})
	passes := parser.Int("p", "passes", &argparse.Options{Default: 0, Help: "Region growth passes (0 = default)"})
	field := parser.Selector("f", "field", []string{"none", "hiker", "rival"}, &argparse.Options{Default: "none", Help: "Cost field to print"})
	nav := parser.Selector("m", "nav", []string{"sweep", "dijkstra"}, &argparse.Options{Default: "sweep", Help: "Cost field mode"})
	interactive := parser.Flag("i", "interactive", &argparse.Options{Help: "Prompt for seeds in a loop"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	mode, err := navigation.ParseMode(*nav)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts := options{seed: int64(*seed), passes: *passes, field: *field, mode: mode}

	if !*interactive {
		if err := render(os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== TRAINER MAP GENERATOR ===")

		opts.seed = int64(getInt(reader, "Seed (default 0 = clock): ", 0))
		opts.passes = getInt(reader, "Growth passes (default 0 = built-in): ", 0)

		if err := render(os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// render generates one map and writes it, its tile census and the optional cost field to w
func render(w io.Writer, opts options) error {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	startT := time.Now()
	g, err := terrain.Generate(terrain.Config{Seed: seed, GrowthPasses: opts.passes})
	if err != nil {
		return err
	}
	dur := time.Since(startT)

	fmt.Fprintf(w, "Seed %d, generated in %v\n", seed, dur)
	fmt.Fprint(w, g.String())
	for t := terrain.TileBorder; t < terrain.TilePlayer; t++ {
		fmt.Fprintf(w, "%-12s %c %s\n", t, t.Glyph(), humanize.Comma(int64(g.Count(t))))
	}

	var profile navigation.Profile
	switch opts.field {
	case "hiker":
		profile = navigation.HikerProfile()
	case "rival":
		profile = navigation.RivalProfile()
	default:
		return nil
	}

	// The west gate always opens onto its connector path
	ref := g.Gates[terrain.West].Pos.Add(terrain.Point{X: 1})
	f := navigation.Builder{Mode: opts.mode}.Build(g, ref, &profile)
	fmt.Fprintf(w, "\n%s field (%s) from %d,%d, max %d\n", profile.Name, opts.mode, ref.X, ref.Y, f.Max())
	fmt.Fprint(w, f.String())
	return nil
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

package main

import (
	"math"

	"github.com/akamensky/argparse"

	"github.com/lixenwraith/trainers/config"
)

// unsetInt marks an integer flag that was not given, so explicit zero or negative values still reach validation
const unsetInt = math.MinInt32

// flags holds parsed command line values; unset values defer to the config file
type flags struct {
	trainers *int
	seed     *int
	config   *string
	headless *bool
	script   *string
	turns    *int
	nav      *string
	audio    *bool
	debug    *bool
}

func newParser() (*argparse.Parser, *flags) {
	parser := argparse.NewParser("trainers", "Turn-based trainer world in the terminal")

	f := &flags{
		trainers: parser.Int("n", "numtrainers", &argparse.Options{Default: unsetInt, Help: "Number of NPC trainers (1-50)"}),
		seed:     parser.Int("s", "seed", &argparse.Options{Default: 0, Help: "World seed (0 = wall clock)"}),
		config:   parser.String("c", "config", &argparse.Options{Help: "YAML config file"}),
		headless: parser.Flag("H", "headless", &argparse.Options{Help: "Run without the terminal UI"}),
		script:   parser.String("x", "script", &argparse.Options{Help: "Player commands, e.g. \"6 6 2 enter exit Q\""}),
		turns:    parser.Int("t", "turns", &argparse.Options{Default: 0, Help: "Stop after this many player turns"}),
		nav:      parser.Selector("m", "nav", []string{"sweep", "dijkstra"}, &argparse.Options{Help: "Cost field mode"}),
		audio:    parser.Flag("a", "audio", &argparse.Options{Help: "Enable sound cues"}),
		debug:    parser.Flag("d", "debug", &argparse.Options{Help: "Write logs to logs/trainers.log"}),
	}
	return parser, f
}

// apply overlays explicitly set flags onto cfg
func (f *flags) apply(cfg config.Config) config.Config {
	if *f.trainers != unsetInt {
		cfg.Trainers = *f.trainers
	}
	if *f.seed != 0 {
		cfg.Seed = int64(*f.seed)
	}
	if *f.nav != "" {
		cfg.Navigation.Mode = *f.nav
	}
	if *f.audio {
		cfg.Audio.Enabled = true
	}
	if *f.debug {
		cfg.Debug = true
	}
	return cfg
}

package main

import (
	"os"
	"time"

	"github.com/woozymasta/randomgeojson/internal/config"
	"github.com/woozymasta/randomgeojson/internal/geo"
	"github.com/woozymasta/randomgeojson/internal/logger"
	"github.com/woozymasta/randomgeojson/internal/processor"
	"github.com/woozymasta/randomgeojson/internal/random"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile       string     `short:"c" long:"config"            env:"CONFIG_FILE"       description:"Path to YAML generation profile"`
	NumProperties    int        `          long:"num-properties"    env:"NUM_PROPERTIES"    description:"Number of properties per feature"                     default:"0"`
	Length           int        `          long:"length"            env:"LENGTH"            description:"Number of features to generate"                       default:"100"`
	GeometryType     geo.Kind   `          long:"geometry-type"     env:"GEOMETRY_TYPE"     description:"Geometry type: Point, LineString, Polygon or All"     default:"All"`
	CoordinateSystem geo.System `          long:"coordinate-system" env:"COORDINATE_SYSTEM" description:"Coordinate system: WGS84, WebMercator, 4326 or 3857"  default:"WGS84"`
	Pretty           bool       `          long:"pretty"                                    description:"Indent JSON output"`
	OutputFile       string     `short:"o" long:"output-file"       env:"OUTPUT_FILE"       description:"File to save the generated features to"              default:"random.geojson"`
	Format           string     `short:"f" long:"format"                                    description:"Output format" choice:"json" choice:"yaml"            default:"json"`
	Seed             uint64     `short:"s" long:"seed"              env:"SEED"              description:"Random seed, 0 picks one at random"                   default:"0"`
	Workers          int        `short:"p" long:"workers"           env:"WORKERS"           description:"Number of generation workers"                         default:"4"`
	H3Resolution     int        `          long:"h3-resolution"     env:"H3_RESOLUTION"     description:"Tag features with their H3 cell at this resolution, -1 disables" default:"-1"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if opts.ConfigFile != "" {
		profile, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load profile")
		}
		applyProfile(parser, &opts, profile)
	}

	if err := run(&opts); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate features")
	}
}

func run(opts *Options) error {
	seed := opts.Seed
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}

	start := time.Now()
	fc, err := processor.Generate(processor.Request{
		Length:        opts.Length,
		NumProperties: opts.NumProperties,
		Kind:          opts.GeometryType,
		System:        opts.CoordinateSystem,
		Seed:          seed,
		Workers:       opts.Workers,
		H3Resolution:  opts.H3Resolution,
	})
	if err != nil {
		return err
	}

	if err := processor.Save(opts.OutputFile, fc, opts.Format, opts.Pretty); err != nil {
		return err
	}

	log.Info().
		Int("features", len(fc.Features)).
		Str("geometry", opts.GeometryType.String()).
		Str("crs", opts.CoordinateSystem.String()).
		Uint64("seed", seed).
		Str("output", opts.OutputFile).
		Dur("duration", time.Since(start)).
		Msg("Random GeoJSON generated")

	return nil
}

// applyProfile copies profile values into opts for every option that was
// not given on the command line.
func applyProfile(parser *flags.Parser, opts *Options, p *config.Profile) {
	explicit := func(long string) bool {
		opt := parser.FindOptionByLongName(long)
		return opt != nil && opt.IsSet() && !opt.IsSetDefault()
	}

	if p.Length != nil && !explicit("length") {
		opts.Length = *p.Length
	}
	if p.NumProperties != nil && !explicit("num-properties") {
		opts.NumProperties = *p.NumProperties
	}
	if p.GeometryType != nil && !explicit("geometry-type") {
		opts.GeometryType = *p.GeometryType
	}
	if p.CoordinateSystem != nil && !explicit("coordinate-system") {
		opts.CoordinateSystem = *p.CoordinateSystem
	}
	if p.Pretty != nil && !explicit("pretty") {
		opts.Pretty = *p.Pretty
	}
	if p.Seed != nil && !explicit("seed") {
		opts.Seed = *p.Seed
	}
	if p.Workers != nil && !explicit("workers") {
		opts.Workers = *p.Workers
	}
	if p.H3Resolution != nil && !explicit("h3-resolution") {
		opts.H3Resolution = *p.H3Resolution
	}
	if p.OutputFile != "" && !explicit("output-file") {
		opts.OutputFile = p.OutputFile
	}
	if p.Format != "" && !explicit("format") {
		opts.Format = p.Format
	}
}

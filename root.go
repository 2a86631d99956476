package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"place-distance/internal/calculator"
	"place-distance/internal/config"
	"place-distance/internal/report"
	"place-distance/internal/source"
)

const (
	exitOK              = 0
	exitFailure         = 1
	exitInvalidArgument = 2
	exitSourceNotFound  = 3
	exitParseError      = 4
)

type cliRoot struct {
	cfg config.Config
	out io.Writer

	trace  bool
	debug  bool
	errLvl bool
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := config.LoadEnv(); err != nil {
		log.Error(err)
		return exitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return exitFailure
	}

	cli := &cliRoot{cfg: cfg, out: stdout}
	cmd := cli.NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.ExecuteContext(context.Background())
	if err != nil {
		log.Error(err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	var (
		argErr   *source.InvalidArgumentError
		notFound *source.SourceNotFoundError
		parseErr *source.ParseError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &argErr):
		return exitInvalidArgument
	case errors.As(err, &notFound):
		return exitSourceNotFound
	case errors.As(err, &parseErr):
		return exitParseError
	default:
		return exitFailure
	}
}

// maximumNArgs is cobra.MaximumNArgs reporting extra positional arguments
// as an invalid argument, without printing usage.
func maximumNArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return &source.InvalidArgumentError{Reason: fmt.Sprintf("accepts at most %d arg(s), received %d", n, len(args))}
		}
		return nil
	}
}

func (cli *cliRoot) setLogLevel() {
	switch {
	case cli.trace:
		log.SetLevel(log.TraceLevel)
	case cli.debug:
		log.SetLevel(log.DebugLevel)
	case cli.errLvl:
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(cli.cfg.LogLevel)
	}
}

func (cli *cliRoot) NewCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "place-distance [n]",
		Short: "Compute great-circle distances between all pairs of places",
		Long: `Compute the great-circle distance of every unique pair of places.

Without argument, places are read from a CSV file (header: Name,Latitude,Longitude)
or from the first three columns of an .xlsx workbook. With an integer argument n >= 2,
n places are generated with random coordinates.`,
		Example: `place-distance
place-distance --file airports.csv --format table
place-distance 10 --seed 42 --names generated
place-distance 500 --format xlsx --output distances.xlsx`,
		Args:              maximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cli.setLogLevel()
			if cmd.Flags().Changed("seed") {
				cli.cfg.Seed = seed
				cli.cfg.HasSeed = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.compute(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cli.cfg.File, "file", "f", cli.cfg.File, "places file (.csv or .xlsx) read when no argument is given")
	flags.StringVar(&cli.cfg.Sheet, "sheet", cli.cfg.Sheet, "worksheet to read from an .xlsx places file (default: first sheet)")
	flags.StringVar(&cli.cfg.Format, "format", cli.cfg.Format, fmt.Sprintf("output format %v", report.Formats))
	flags.StringVar(&cli.cfg.Output, "output", cli.cfg.Output, "workbook written by the xlsx format")
	flags.StringVar(&cli.cfg.Method, "method", cli.cfg.Method, fmt.Sprintf("distance method %v", calculator.Methods))
	flags.StringVar(&cli.cfg.Names, "names", cli.cfg.Names, "names of random places: numbered or generated")
	flags.StringVar(&cli.cfg.Color, "color", cli.cfg.Color, "colorize table output: yes, no or auto")
	flags.Uint64Var(&seed, "seed", cli.cfg.Seed, "seed for random places (default: time based)")
	flags.BoolVar(&cli.trace, "trace", false, "set logging to trace")
	flags.BoolVar(&cli.debug, "debug", false, "set logging to debug")
	flags.BoolVar(&cli.errLvl, "error", false, "set logging to error")

	return cmd
}

func (cli *cliRoot) randomSource() source.RandomSource {
	if cli.cfg.HasSeed {
		return source.NewRandomSource(cli.cfg.Seed)
	}
	return source.NewTimeSeededSource()
}

func (cli *cliRoot) compute(cmd *cobra.Command, args []string) error {
	logger := log.WithField("run", uuid.New().String())

	method, err := calculator.ParseMethod(cli.cfg.Method)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cli.cfg.Format)
	if err != nil {
		return err
	}

	naming, err := source.ParseNaming(cli.cfg.Names)
	if err != nil {
		return err
	}

	places, err := source.Load(cmd.Context(), source.Options{
		Path:   cli.cfg.File,
		Sheet:  cli.cfg.Sheet,
		Naming: naming,
		Random: cli.randomSource(),
	}, args)
	if err != nil {
		return err
	}
	logger.Infof("%d places loaded", len(places))

	start := time.Now()

	progressCb := func(current, total int, _ string) {
		logger.Debugf("%d/%d pairs computed", current, total)
	}
	loggerCb := func(msg string) {
		logger.Debug(msg)
	}

	results, err := calculator.ComputePairs(places, method, progressCb, loggerCb)
	if err != nil {
		return err
	}

	summary, err := calculator.Summarize(results)
	if err != nil {
		return err
	}
	logger.Infof("%d distances computed in %s", len(results), time.Since(start))

	w := report.NewWriter(cli.out, report.Options{Color: cli.cfg.Color, Output: cli.cfg.Output})
	return w.Write(format, results, summary)
}

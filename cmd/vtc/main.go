// Command vtc converts timecodes and reports the timing of image sequences
// and movie files.
//
//	vtc convert [flags] value...
//	vtc seq [flags] searchroot
//	vtc mov [flags] file...
//
// Output columns are text/template fields read from the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansel1/merry/v2"
	"github.com/sirupsen/logrus"
)

// common holds the flags every subcommand takes.
type common struct {
	config    string
	rate      string
	ntsc      string
	timebase  bool
	film      string
	precision int
	sep       string
	verbose   bool
	write     bool
	writeTo   string
}

func (c *common) register(fs *flag.FlagSet, env *Env) {
	config := "config.toml"
	configHelp := "path of config file"
	if env.Config != "" {
		config = env.Config
		configHelp += ", default inherited from VTC_CONFIG environment variable"
	}
	fs.StringVar(&c.config, "config", config, configHelp)
	fs.StringVar(&c.rate, "rate", "", "framerate, as an integer, a decimal or n/d (default from config, else 24)")
	fs.StringVar(&c.ntsc, "ntsc", "", "ntsc flavor of -rate: none, ndf or df")
	fs.BoolVar(&c.timebase, "timebase", false, "read -rate as a timebase: 30 with -ntsc df is 29.97 drop-frame")
	fs.StringVar(&c.film, "film", "", "film format for feet+frames: 35mm-4perf, 35mm-3perf, 35mm-2perf or 16mm")
	fs.IntVar(&c.precision, "precision", -1, "digits of runtime fractions (default from config, else 9)")
	fs.StringVar(&c.sep, "sep", "\t", "fields will be separated by this value when printed")
	fs.BoolVar(&c.verbose, "v", false, "print errors from value calculation")
	fs.BoolVar(&c.write, "w", false, "write to excel file. will print instead when it is false.")
	fs.StringVar(&c.writeTo, "f", "vtc_output.xlsx", "excel file path to be written. no-op if -w flag is off. existing file will be overrided.")
}

// load reads the config and lays the flags that were set over it.
func (c *common) load(fs *flag.FlagSet, env *Env) (*Config, Settings, error) {
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := loadConfig(c.config, explicit || env.Config != "", env)
	if err != nil {
		return nil, Settings{}, err
	}
	if c.rate != "" {
		cfg.Rate = c.rate
	}
	if c.ntsc != "" {
		cfg.Ntsc = c.ntsc
	}
	if c.timebase {
		cfg.Timebase = true
	}
	if c.film != "" {
		cfg.FilmFormat = c.film
	}
	if c.precision >= 0 {
		cfg.Precision = c.precision
	}
	s, err := cfg.settings()
	if err != nil {
		return nil, Settings{}, err
	}
	return cfg, s, nil
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	// Do not print time in logs.
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func usage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "%s convert [args...] value...\n", name)
	fmt.Fprintf(os.Stderr, "%s seq [args...] searchroot\n", name)
	fmt.Fprintf(os.Stderr, "%s mov [args...] file...\n", name)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	env, err := loadEnv()
	if err != nil {
		logrus.Fatal(err)
	}
	err = run(context.Background(), os.Args[1], os.Args[2:], env, os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}
}

// run executes one subcommand, printing to stdout unless -w is set.
func run(ctx context.Context, cmd string, args []string, env *Env, stdout io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	c := &common{}
	c.register(fs, env)

	var (
		kindFlag string
		csvFlag  string
		extsFlag string
	)
	switch cmd {
	case "convert":
		fs.StringVar(&kindFlag, "kind", KindFrames.Value, "how values are read: frames, seconds or ticks")
		fs.StringVar(&csvFlag, "csv", "", "read values from a csv file with value,kind,rate,ntsc columns")
	case "seq":
		fs.StringVar(&extsFlag, "exts", "dpx,exr", "meaningful extensions")
	case "mov":
	default:
		usage()
		return merry.Errorf("unknown command %q", cmd)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	log := newLogger(c.verbose)
	cfg, s, err := c.load(fs, env)
	if err != nil {
		return err
	}

	var (
		rows   []Row
		fields []Field
	)
	switch cmd {
	case "convert":
		inputs := argInputs(fs.Args(), kindFlag)
		if csvFlag != "" {
			f, err := os.Open(csvFlag)
			if err != nil {
				return merry.Wrap(err)
			}
			defer f.Close()
			more, err := readInputs(f)
			if err != nil {
				return err
			}
			inputs = append(inputs, more...)
		}
		if len(inputs) == 0 {
			usage()
			fs.PrintDefaults()
			return nil
		}
		var errs []error
		rows, errs = convertRows(inputs, s)
		for _, err := range errs {
			log.WithError(err).Warn("could not convert")
		}
		fields = fieldsOr(cfg.Convert.Fields, convertFields)
	case "seq":
		if fs.NArg() != 1 {
			usage()
			fs.PrintDefaults()
			return nil
		}
		seqs, err := findSequences(filepath.Clean(fs.Arg(0)), strings.Split(extsFlag, ","))
		if err != nil {
			return err
		}
		if rows, err = seqRows(seqs, s); err != nil {
			return err
		}
		fields = fieldsOr(cfg.Seq.Fields, seqFields)
	case "mov":
		if fs.NArg() == 0 {
			usage()
			fs.PrintDefaults()
			return nil
		}
		for _, file := range fs.Args() {
			mov, err := parseMov(ctx, log, file)
			if err != nil {
				log.WithError(err).Error("could not probe")
				continue
			}
			rows = append(rows, mov.row(s))
		}
		fields = fieldsOr(cfg.Mov.Fields, movFields)
	}

	table, err := render(ctx, log, rows, fields, c.verbose)
	if err != nil {
		return err
	}
	if c.write && c.writeTo != "" {
		return table.save(c.writeTo)
	}
	return table.print(stdout, c.sep)
}

package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ansel1/merry/v2"
	"github.com/kelseyhightower/envconfig"
	"github.com/kzmdstu/vtc"
	"github.com/orsinium-labs/enum"
)

// Config is read from a toml file. Every subcommand has its own list of
// fields; a subcommand without fields prints its defaults.
type Config struct {
	Rate       string
	Ntsc       string
	Timebase   bool
	FilmFormat string
	Precision  int

	Convert Section
	Seq     Section
	Mov     Section
}

// Section holds the output fields of one subcommand.
type Section struct {
	Fields []Field
}

// Field is a labeled text/template evaluated against a Row.
type Field struct {
	Name  string
	Value string
}

// Env holds VTC_* environment overrides. They win over the config file,
// and flags win over them.
type Env struct {
	Config     string `envconfig:"CONFIG"`
	Rate       string `envconfig:"RATE"`
	Ntsc       string `envconfig:"NTSC"`
	FilmFormat string `envconfig:"FILM_FORMAT"`
	Precision  *int   `envconfig:"PRECISION"`
}

type NtscName enum.Member[string]

var (
	NtscNone = NtscName{"none"}
	NtscNDF  = NtscName{"ndf"}
	NtscDF   = NtscName{"df"}

	NtscNames = enum.New(NtscNone, NtscNDF, NtscDF)
)

// ntscOf maps a -ntsc name to the library flavor. An empty name is NotNtsc.
func ntscOf(name string) (vtc.Ntsc, error) {
	if name == "" {
		return vtc.NotNtsc, nil
	}
	n := NtscNames.Parse(name)
	if n == nil {
		return vtc.NotNtsc, merry.Errorf("unknown ntsc %q, want one of %v", name, NtscNames.Values())
	}
	switch *n {
	case NtscNDF:
		return vtc.NonDropFrame, nil
	case NtscDF:
		return vtc.DropFrame, nil
	}
	return vtc.NotNtsc, nil
}

func defaultConfig() *Config {
	return &Config{
		Rate:       "24",
		FilmFormat: vtc.FF35mm4perf.String(),
		Precision:  9,
	}
}

// loadEnv reads the VTC_* environment.
func loadEnv() (*Env, error) {
	env := &Env{}
	if err := envconfig.Process("VTC", env); err != nil {
		return nil, merry.Prepend(err, "could not read environment")
	}
	return env, nil
}

// loadConfig decodes the config file at path over the defaults, then applies
// env. A missing file is only an error when it was asked for explicitly.
func loadConfig(path string, explicit bool, env *Env) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		if err != nil && (explicit || !os.IsNotExist(err)) {
			return nil, merry.Prependf(err, "could not decode config file (toml) %s", path)
		}
	}
	if env != nil {
		if env.Rate != "" {
			cfg.Rate = env.Rate
		}
		if env.Ntsc != "" {
			cfg.Ntsc = env.Ntsc
		}
		if env.FilmFormat != "" {
			cfg.FilmFormat = env.FilmFormat
		}
		if env.Precision != nil {
			cfg.Precision = *env.Precision
		}
	}
	return cfg, nil
}

// Settings are the resolved values every subcommand works with.
type Settings struct {
	Rate      vtc.Framerate
	Film      vtc.FilmFormat
	Precision int
}

func (c *Config) settings() (Settings, error) {
	rate, err := parseRate(c.Rate, c.Ntsc, c.Timebase)
	if err != nil {
		return Settings{}, err
	}
	film, err := vtc.ParseFilmFormat(c.FilmFormat)
	if err != nil {
		return Settings{}, err
	}
	return Settings{Rate: rate, Film: film, Precision: c.Precision}, nil
}

// parseRate builds a Framerate from its command line form.
func parseRate(value, ntscName string, timebase bool) (vtc.Framerate, error) {
	ntsc, err := ntscOf(ntscName)
	if err != nil {
		return vtc.Framerate{}, err
	}
	if timebase {
		return vtc.WithTimebase(vtc.Text(value), ntsc)
	}
	return vtc.WithPlayback(vtc.Text(value), ntsc)
}

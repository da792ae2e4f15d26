package main

import (
	"context"
	"flag"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/traefik/fibfixture/astwalk"
	"github.com/traefik/fibfixture/internal/logx"
)

// loadFlags are the flags shared by commands that load packages.
type loadFlags struct {
	dir     string
	verbose bool
}

func (lf *loadFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&lf.dir, "C", "", "run the go command in `dir`")
	fs.BoolVar(&lf.verbose, "v", false, "log loading details")
}

func (lf *loadFlags) load(ctx context.Context, stderr io.Writer, patterns []string) ([]*astwalk.Unit, error) {
	log := logx.New(stderr, lf.verbose)

	dir := lf.dir
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = abs
	}
	log.WithFields(logrus.Fields{"dir": dir, "patterns": patterns}).Debug("loading packages")

	units, err := astwalk.Load(ctx, astwalk.Config{Dir: dir, Logf: log.Debugf}, patterns...)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		log.WithField("pkg", u.PkgPath).Debugf("loaded %d files", len(u.Files))
	}
	return units, nil
}

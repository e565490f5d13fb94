package main

import (
	"os"

	"github.com/felixge/fgprof"
	"github.com/rs/zerolog/log"
)

// startProfile starts a wall-clock profile in pprof format. The returned
// function stops it and closes the file.
func startProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	log.Debug().Str("path", path).Msg("profiling")
	return func() error {
		if err := stop(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

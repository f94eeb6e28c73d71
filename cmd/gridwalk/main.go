// Command gridwalk runs one of the grid puzzle solvers on an input file.
//
//	gridwalk -day 16 -part 2 -input day16.txt
//	gridwalk -day 18 -config gridwalk.yaml -input - < day18.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/internal/config"
)

var log = logrus.New()

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Error("gridwalk failed")
		os.Exit(1)
	}
}

// run parses args, solves the requested puzzle and prints the answer to stdout.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("gridwalk", flag.ContinueOnError)
	var (
		day     = fs.Int("day", 0, "puzzle day: 6, 8, 10, 12, 15, 16 or 18")
		part    = fs.Int("part", 1, "puzzle part: 1 or 2")
		input   = fs.String("input", "-", "input file; - reads stdin")
		cfgPath = fs.String("config", "", "optional YAML settings file")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	s, ok := solvers[*day]
	if !ok {
		return fmt.Errorf("unknown day %d", *day)
	}
	if *part != 1 && *part != 2 {
		return fmt.Errorf("unknown part %d", *part)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	text, err := readInput(*input, stdin)
	if err != nil {
		return err
	}

	entry := log.WithFields(logrus.Fields{
		"day":   *day,
		"part":  *part,
		"input": *input,
		"size":  humanize.Bytes(uint64(len(text))),
	})
	entry.Debug("solving")
	started := time.Now()

	answer, err := s(ctx, job{cfg: cfg, part: *part, text: text, log: entry})
	if err != nil {
		return fmt.Errorf("day %d part %d: %w", *day, *part, err)
	}
	entry.WithField("elapsed", time.Since(started)).Info("solved")

	_, err = fmt.Fprintln(stdout, answer)
	return err
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

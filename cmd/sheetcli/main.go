// Command sheetcli is a tiny demonstration binary for the spreadsheet
// core: it applies a sequence of cell assignments from repeated -set
// flags and prints the resulting sheet.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/vogtb/gridsheet/position"
	"github.com/vogtb/gridsheet/spreadsheet"
)

// assignments collects repeated -set flag values into a slice, the
// standard way to accept a repeatable flag with the stdlib flag package.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, ",") }

func (a *assignments) Set(v string) error {
	*a = append(*a, v)
	return nil
}

func main() {
	var sets assignments
	flag.Var(&sets, "set", "cell assignment in ADDR=TEXT form, e.g. -set A1=2 (repeatable)")
	showTexts := flag.Bool("texts", false, "print raw cell text instead of computed values")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sheet := spreadsheet.New()

	for _, assignment := range sets {
		addr, text, ok := strings.Cut(assignment, "=")
		if !ok {
			logger.Error("malformed assignment, expected ADDR=TEXT", "assignment", assignment)
			os.Exit(1)
		}
		pos, err := position.ParsePosition(addr)
		if err != nil {
			logger.Error("invalid cell address", "address", addr, "err", err)
			os.Exit(1)
		}
		if err := sheet.SetCell(pos, text); err != nil {
			logger.Error("set cell failed", "address", addr, "err", err)
			os.Exit(1)
		}
	}

	var printErr error
	if *showTexts {
		printErr = sheet.PrintTexts(os.Stdout)
	} else {
		printErr = sheet.PrintValues(os.Stdout)
	}
	if printErr != nil {
		logger.Error("print failed", "err", printErr)
		os.Exit(1)
	}
}

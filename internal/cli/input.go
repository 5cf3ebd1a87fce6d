package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqalign/sequence"
)

// errUsage reports a wrong combination of --in and positional arguments.
var errUsage = errors.New("expected two sequences as arguments, or --in FILE (plus one argument if the file holds a single record)")

// resolvePair returns the two raw sequences from the file and/or args,
// logging what was taken from where.
func (a *app) resolvePair(in string, args []string) (string, string, error) {
	if in == "" {
		if len(args) != 2 {
			return "", "", errUsage
		}
		return args[0], args[1], nil
	}

	recs, err := sequence.ReadFile(in)
	if err != nil {
		return "", "", err
	}
	sel, err := sequence.SelectPair(recs)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", in, err)
	}

	switch {
	case sel.Missing():
		if len(args) != 1 {
			return "", "", fmt.Errorf("%s holds 1 sequence: %w", in, errUsage)
		}
		a.logger.Printf("loaded 1 sequence from %s, second taken from the command line", in)
		return sel.First.Seq, args[0], nil
	case len(args) > 0:
		return "", "", fmt.Errorf("%s already holds two sequences: %w", in, errUsage)
	case sel.Truncated():
		a.logger.Printf("file contained %d sequences, using first 2", sel.Total)
	}

	return sel.First.Seq, sel.Second.Seq, nil
}

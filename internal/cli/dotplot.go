package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/dotplot"
	"github.com/katalvlaran/seqalign/guard"
	"github.com/katalvlaran/seqalign/render"
	"github.com/katalvlaran/seqalign/sequence"
)

// defaultMinRun is the shortest diagonal run listed by default.
const defaultMinRun = 3

func newDotPlotCommand(a *app) *cobra.Command {
	var (
		in     string
		minRun int
	)
	cmd := &cobra.Command{
		Use:   "dotplot [SEQ1 SEQ2]",
		Short: "Draw the pairwise identity grid of two sequences",
		Long: `Marks every cell where SEQ2[i] equals SEQ1[j] (SEQ1 across, SEQ2 down)
and lists diagonal runs: forward runs are identity stretches or repeats,
reverse runs are inversion signatures.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDotPlot(in, minRun, args)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "FASTA file holding the sequences")
	cmd.Flags().IntVar(&minRun, "min-run", defaultMinRun, "shortest run to list (0 lists none)")

	return cmd
}

func (a *app) runDotPlot(in string, minRun int, args []string) error {
	raw1, raw2, err := a.resolvePair(in, args)
	if err != nil {
		return err
	}
	limits, err := guard.Load()
	if err != nil {
		return err
	}
	s1, s2 := sequence.New(raw1), sequence.New(raw2)
	if err := limits.CheckCompute(s1.Len(), s2.Len()); err != nil {
		return err
	}

	p := dotplot.BuildSequences(s1, s2)
	if limits.Visual(s1.Len(), s2.Len()) {
		if err := render.DotPlot(a.out, p); err != nil {
			return err
		}
	} else {
		a.logger.Printf("large sequences detected (> %d symbols), grid hidden", limits.MaxVisual)
	}

	fmt.Fprintf(a.out, "hits: %d of %d cells\n", p.Matches(), p.Rows()*p.Cols())
	if minRun <= 0 {
		return nil
	}
	for _, r := range p.Runs(minRun) {
		fmt.Fprintf(a.out, "%s run of %d at seq2[%d] / seq1[%d]\n", r.Direction, r.Length, r.Row+1, r.Col+1)
	}

	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/guard"
	"github.com/katalvlaran/seqalign/render"
	"github.com/katalvlaran/seqalign/sequence"
)

// output formats of the align command.
const (
	formatText = "text"
	formatJSON = "json"
)

type alignFlags struct {
	in          string
	format      string
	width       int
	linearSpace bool
	showMatrix  bool
}

func newAlignCommand(a *app) *cobra.Command {
	var f alignFlags
	cmd := &cobra.Command{
		Use:   "align [SEQ1 SEQ2]",
		Short: "Compute the optimal global alignment of two sequences",
		Long: `Builds the Needleman-Wunsch score matrix under a linear gap model and
traces back one optimal alignment (diagonal, then up, then left on ties).

SEQ1 runs along the matrix columns, SEQ2 down the rows.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAlign(f, args)
		},
	}
	cmd.Flags().StringVarP(&f.in, "in", "i", "", "FASTA file holding the sequences")
	cmd.Flags().StringVarP(&f.format, "format", "f", formatText, "output format: text or json")
	cmd.Flags().IntVarP(&f.width, "width", "w", render.DefaultWidth, "alignment columns per block")
	cmd.Flags().BoolVar(&f.linearSpace, "linear-space", false, "use O(N+M) memory (Hirschberg); no matrix table")
	cmd.Flags().BoolVarP(&f.showMatrix, "show-matrix", "m", false, "print the score matrix with the traceback path")

	return cmd
}

func (a *app) runAlign(f alignFlags, args []string) error {
	if f.format != formatText && f.format != formatJSON {
		return fmt.Errorf("unknown format %q (valid: text, json)", f.format)
	}
	raw1, raw2, err := a.resolvePair(f.in, args)
	if err != nil {
		return err
	}
	sc, err := a.scoring()
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

	opts := []align.Option{align.WithScoring(sc), limits.AlignOption()}
	if f.linearSpace {
		opts = append(opts, align.WithMode(align.LinearSpace))
	}
	showMatrix := f.showMatrix
	if showMatrix && !limits.Visual(s1.Len(), s2.Len()) {
		a.logger.Printf("large sequences detected (> %d symbols), matrix table hidden", limits.MaxVisual)
		showMatrix = false
	}
	if showMatrix {
		opts = append(opts, align.WithKeepMatrix())
	}

	res, err := align.AlignSequences(s1, s2, opts...)
	if err != nil {
		return err
	}

	if f.format == formatJSON {
		return render.JSON(a.out, res)
	}
	if err := render.Metrics(a.out, res, s1.Len(), s2.Len()); err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	if err := render.Alignment(a.out, res, f.width); err != nil {
		return err
	}
	if res.Matrix != nil {
		fmt.Fprintln(a.out)
		return render.ScoreMatrix(a.out, res.Matrix, s1, s2, res.Path)
	}

	return nil
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gene_scout_go/evaluate"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compare scores with a reference annotation (ROC, AUC, flashbulb boundary)",
	Long: `Compare scores with a reference annotation.

A candidate counts as a gene when an annotated CDS ends (GFF column 5) right
after its stop codon. ROC curves and AUCs are reported for the Markov score,
the ORF length and the flashbulb combination of both; the threshold whose
accuracy is closest to --target-accuracy is marked on each curve.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, func() error {
			if cfg.Annotation == "" {
				return fmt.Errorf("--annotation is required")
			}
			a, err := evaluate.LoadAnnotation(cfg.Annotation)
			if err != nil {
				return err
			}
			m, err := loadModel()
			if err != nil {
				return err
			}
			if m.Degenerate() {
				return fmt.Errorf("no long ORFs (> %d bp) to train on; nothing to evaluate", cfg.LongLen)
			}

			results := m.Results()
			rep, err := evaluate.Evaluate(results, a, cfg.Ratio, cfg.TargetAccuracy)
			if err != nil {
				return err
			}
			w, closeOut, err := output()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, m.ORFs())
			rep.Write(w)
			if err := closeOut(); err != nil {
				return err
			}

			if cfg.PlotDir == "" {
				return nil
			}
			files, err := rep.Plot(cfg.PlotDir, results)
			for _, f := range files {
				log.Printf("wrote %s", f)
			}
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("annotation", "a", "", "reference annotation (GFF)")
	evaluateCmd.Flags().StringP("out", "o", "", "write the report to this file instead of stdout")
	evaluateCmd.Flags().String("plot-dir", "", "directory for ROC and decision boundary plots")
	evaluateCmd.Flags().Float64P("ratio", "r", 0.2, "flashbulb boundary position between the short and long medians")
	evaluateCmd.Flags().Float64("target-accuracy", 0.8, "accuracy the marked threshold should approach")
}

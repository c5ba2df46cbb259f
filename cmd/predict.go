package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gene_scout_go/markov_model"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score every ORF of a genome",
	Long: `Score every ORF of a genome.

One record is written per candidate ORF (all three frames, every length):
start and end (0-based, half-open, stop codon excluded), length, and the
log-likelihood ratio score. Positive scores favour coding.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, func() error {
			m, err := loadModel()
			if err != nil {
				return err
			}
			w, closeOut, err := output()
			if err != nil {
				return err
			}
			if err := writeResults(w, m.Results(), cfg.Format); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		})
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().StringP("out", "o", "", "write results to this file instead of stdout")
	predictCmd.Flags().StringP("format", "f", "tsv", "output format: tsv or json")
}

func writeResults(w io.Writer, results []markov_model.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "tsv":
		if _, err := fmt.Fprintln(w, "start\tend\tlength\tframe\tclass\tscore"); err != nil {
			return err
		}
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%.6f\n",
				r.Start, r.End, r.Length, r.Frame, r.Class, r.Score); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

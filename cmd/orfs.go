package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gene_scout_go/orf_finder"
)

var showSeq bool

var orfsCmd = &cobra.Command{
	Use:   "orfs",
	Short: "List candidate ORFs of the three forward frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, func() error {
			rec, err := loadGenome()
			if err != nil {
				return err
			}
			set := orf_finder.Find(rec.Sequence, cfg.LongLen, cfg.ShortLen)
			log.Printf("%s: %d candidates (%d long, %d short)", rec.ID, len(set.Total), len(set.Long), len(set.Short))

			w, closeOut, err := output()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "start\tend\tlength\tframe\tclass")
			for _, o := range set.Total {
				if showSeq {
					fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\n", o.Start, o.End, o.Len(), o.Frame, set.Classify(o), o.Sequence)
				} else {
					fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n", o.Start, o.End, o.Len(), o.Frame, set.Classify(o))
				}
			}
			return closeOut()
		})
	},
}

func init() {
	rootCmd.AddCommand(orfsCmd)

	orfsCmd.Flags().StringP("out", "o", "", "write the list to this file instead of stdout")
	orfsCmd.Flags().BoolVar(&showSeq, "showseq", false, "append the ORF sequence")
}

// Package cmd is for command line interactions with gene_scout
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gene_scout_go/benchmark"
	"gene_scout_go/config"
	"gene_scout_go/markov_model"
	common "gene_scout_go/utils"
)

var (
	cfgFile      string
	benchmarking bool

	// settings resolved in PersistentPreRunE
	v   *viper.Viper
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gene_scout",
	Short: "Predict protein coding regions with a k-th order Markov model",
	Long: `Predict protein coding regions in a genome.

Open reading frames between in-frame stop codons are collected from the three
forward frames. Long ORFs train a k-th order Markov chain, their reverse
complements train a background chain, and every ORF is scored with the
log-likelihood ratio of the two.`,
	Version:       config.Main_version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if v, err = config.New(cfgFile); err != nil {
			return err
		}
		if err = v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		cfg, err = config.Load(v)
		return err
	},
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("[gene_scout] ")

	rootCmd.SetVersionTemplate(fmt.Sprintf(`gene_scout {{.Version}}
Modular tools:
	ORF Finder:	%s
	K-mer Counts:	%s
	Markov Model:	%s
	Evaluate:	%s
	Benchmark:	%s
`, config.ORF_Finder, config.Kmer_Counts, config.Markov, config.Evaluate, config.Benchmark))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.BoolVar(&benchmarking, "benchmark", false, "report run time and memory use")
	pf.StringP("in-file", "i", "", "input genome FASTA (optionally gzipped)")
	pf.IntP("k", "k", 5, "Markov order")
	pf.Float64P("pseudocount", "p", 1, "additive smoothing pseudocount (> 0)")
	pf.Int("long-len", 1400, "ORFs longer than this train the model")
	pf.Int("short-len", 50, "ORFs shorter than this form the short band")
	pf.Int("workers", 1, "goroutines for counting and scoring (0 = all CPUs)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run wraps a command body with the benchmark when --benchmark is set.
func run(cmd *cobra.Command, args []string, body func() error) error {
	if !benchmarking {
		return body()
	}
	label := fmt.Sprintf("gene_scout %s %s", cmd.Name(), strings.Join(args, " "))
	_, err := benchmark.Run(label, body)
	return err
}

// loadGenome returns the first record of the configured FASTA file.
func loadGenome() (common.GenomeRecord, error) {
	if cfg.InFile == "" {
		return common.GenomeRecord{}, fmt.Errorf("--in-file is required")
	}
	records, err := common.ReadGenome(cfg.InFile)
	if err != nil {
		return common.GenomeRecord{}, err
	}
	if len(records) > 1 {
		log.Printf("%s holds %d records; using the first (%s)", cfg.InFile, len(records), records[0].ID)
	}
	return records[0], nil
}

// loadModel reads the genome and trains the model on it.
func loadModel() (*markov_model.Model, error) {
	rec, err := loadGenome()
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %s (%d bp); k=%d pseudocount=%g long>%d short<%d workers=%d",
		rec.ID, rec.Len(), cfg.K, cfg.Pseudocount, cfg.LongLen, cfg.ShortLen, cfg.EffectiveWorkers())
	return markov_model.New(rec.Sequence, cfg.Params())
}

// output opens --out, or stdout when it is empty. The returned closer is never nil.
func output() (io.Writer, func() error, error) {
	if cfg.Out == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// Package ran_dna_gen builds synthetic genomes: random intergenic DNA with a
// GC bias, interleaved with planted genes drawn from a skewed codon usage.
// The planted genes are written out as a GFF annotation so a model can be
// evaluated against a known truth.
package ran_dna_gen

import (
	"compress/gzip"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	common "gene_scout_go/utils"
)

// Options control the generated genome.
type Options struct {
	Name       string
	GCBias     float64 // 0.0 to 0.99
	Genes      int
	MinCodons  int // per planted gene, stop codon excluded
	MaxCodons  int
	MinSpacer  int // intergenic length between genes
	MaxSpacer  int
	Seed       int64
	FastaWidth int
}

// DefaultOptions plants 20 genes of 500-900 codons.
func DefaultOptions() Options {
	return Options{
		Name:       "random_seq",
		GCBias:     0.5,
		Genes:      20,
		MinCodons:  500,
		MaxCodons:  900,
		MinSpacer:  100,
		MaxSpacer:  600,
		Seed:       1,
		FastaWidth: 60,
	}
}

func (o Options) validate() error {
	switch {
	case o.GCBias < 0 || o.GCBias > 0.99:
		return fmt.Errorf("GC bias must be between 0.0 and 0.99, got %v", o.GCBias)
	case o.Genes < 0:
		return fmt.Errorf("gene count must not be negative, got %d", o.Genes)
	case o.MinCodons < 1 || o.MaxCodons < o.MinCodons:
		return fmt.Errorf("bad codon range %d-%d", o.MinCodons, o.MaxCodons)
	case o.MinSpacer < 0 || o.MaxSpacer < o.MinSpacer:
		return fmt.Errorf("bad spacer range %d-%d", o.MinSpacer, o.MaxSpacer)
	case o.FastaWidth < 1:
		return fmt.Errorf("FASTA width must be positive, got %d", o.FastaWidth)
	}
	return nil
}

// Gene is a planted coding region in GFF coordinates: 1-based, inclusive,
// the stop codon included.
type Gene struct {
	Start int
	End   int
}

// Genome is a generated sequence and its planted genes.
type Genome struct {
	Name     string
	Sequence string
	Genes    []Gene
	width    int
}

// preferred codons carry most of the coding signal; none of their reverse
// complements is preferred, so the two strands look different
var preferred = []string{"ATG", "GAA", "AAA", "GAT", "CTG", "GCC", "ACC", "CGC", "GAG", "AAG", "GAC", "ATT"}

// senseCodons are all 61 codons that are not stops.
var senseCodons = func() []string {
	var out []string
	for _, a := range common.Alphabet {
		for _, b := range common.Alphabet {
			for _, c := range common.Alphabet {
				codon := string([]rune{a, b, c})
				if !common.IsStopCodon(codon) {
					out = append(out, codon)
				}
			}
		}
	}
	return out
}()

// randSeq draws n bases with the given GC fraction.
func randSeq(r *rand.Rand, n int, gcBias float64) string {
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := (1 - gcBias) / 2

	seq := make([]byte, n)
	for i := range seq {
		x := r.Float64()
		switch {
		case x < aWeight:
			seq[i] = 'A'
		case x < aWeight+tWeight:
			seq[i] = 'T'
		case x < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return string(seq)
}

// randGene is ATG, codons-1 sense codons (80% from the preferred set), then a stop.
func randGene(r *rand.Rand, codons int) string {
	var b strings.Builder
	b.Grow(3 * (codons + 1))
	b.WriteString("ATG")
	for i := 1; i < codons; i++ {
		if r.Float64() < 0.8 {
			b.WriteString(preferred[r.Intn(len(preferred))])
		} else {
			b.WriteString(senseCodons[r.Intn(len(senseCodons))])
		}
	}
	b.WriteString(common.StopCodons[r.Intn(len(common.StopCodons))])
	return b.String()
}

func between(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Generate builds a genome deterministically from opts.Seed.
func Generate(opts Options) (Genome, error) {
	if err := opts.validate(); err != nil {
		return Genome{}, err
	}
	r := rand.New(rand.NewSource(opts.Seed))

	g := Genome{Name: opts.Name, width: opts.FastaWidth}
	var b strings.Builder
	b.WriteString(randSeq(r, between(r, opts.MinSpacer, opts.MaxSpacer), opts.GCBias))
	for i := 0; i < opts.Genes; i++ {
		gene := randGene(r, between(r, opts.MinCodons, opts.MaxCodons))
		g.Genes = append(g.Genes, Gene{Start: b.Len() + 1, End: b.Len() + len(gene)})
		b.WriteString(gene)
		b.WriteString(randSeq(r, between(r, opts.MinSpacer, opts.MaxSpacer), opts.GCBias))
	}
	g.Sequence = b.String()
	return g, nil
}

// wrapFasta breaks seq every width characters.
func wrapFasta(seq string, width int) string {
	var b strings.Builder
	for i := 0; i < len(seq); i += width {
		end := min(i+width, len(seq))
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFasta writes the genome as a single FASTA record.
func (g Genome) WriteFasta(w io.Writer) error {
	width := g.width
	if width < 1 {
		width = 60
	}
	_, err := fmt.Fprintf(w, ">%s\n%s", g.Name, wrapFasta(g.Sequence, width))
	return err
}

// WriteGFF writes one CDS line per planted gene.
func (g Genome) WriteGFF(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "##gff-version 3"); err != nil {
		return err
	}
	for i, gene := range g.Genes {
		_, err := fmt.Fprintf(w, "%s\tran_dna_gen\tCDS\t%d\t%d\t.\t+\t0\tID=gene%d\n",
			g.Name, gene.Start, gene.End, i+1)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteFile creates path (gzip compressed when gz is set) and fills it with write.
func WriteFile(path string, gz bool, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if !gz {
		if err := write(file); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return file.Close()
	}

	zw := gzip.NewWriter(file)
	if err := write(zw); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing %s: %w", path, err)
	}
	return file.Close()
}

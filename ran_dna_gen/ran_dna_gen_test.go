package ran_dna_gen

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"gene_scout_go/evaluate"
	"gene_scout_go/markov_model"
	common "gene_scout_go/utils"
)

func smallOptions() Options {
	o := DefaultOptions()
	o.Genes = 8
	o.Seed = 42
	return o
}

func TestGenerate_plantedGenes(t *testing.T) {
	g, err := Generate(smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Genes) != 8 {
		t.Fatalf("planted %d genes, want 8", len(g.Genes))
	}
	if err := common.Validate(g.Sequence); err != nil {
		t.Fatal(err)
	}
	for _, gene := range g.Genes {
		cds := g.Sequence[gene.Start-1 : gene.End]
		if len(cds)%3 != 0 || cds[:3] != "ATG" || !common.IsStopCodon(cds[len(cds)-3:]) {
			t.Errorf("gene %+v is not ATG...stop: %q...%q", gene, cds[:3], cds[len(cds)-3:])
		}
		for i := 0; i < len(cds)-3; i += 3 {
			if common.IsStopCodon(cds[i : i+3]) {
				t.Errorf("gene %+v has an internal stop at codon %d", gene, i/3)
				break
			}
		}
	}
}

func TestGenerate_deterministic(t *testing.T) {
	a, _ := Generate(smallOptions())
	b, _ := Generate(smallOptions())
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different genomes")
	}
}

func TestGenerate_invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"gc bias", func(o *Options) { o.GCBias = 1 }},
		{"genes", func(o *Options) { o.Genes = -1 }},
		{"codons", func(o *Options) { o.MaxCodons = o.MinCodons - 1 }},
		{"spacer", func(o *Options) { o.MinSpacer = -1 }},
		{"width", func(o *Options) { o.FastaWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			if _, err := Generate(o); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGenome_WriteFastaAndGFF(t *testing.T) {
	g, err := Generate(smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	fa := filepath.Join(dir, "genome.fna.gz")
	if err := WriteFile(fa, true, g.WriteFasta); err != nil {
		t.Fatal(err)
	}
	records, err := common.ReadGenome(fa)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Sequence != g.Sequence || records[0].ID != g.Name {
		t.Errorf("FASTA round trip lost data")
	}

	var buf bytes.Buffer
	if err := g.WriteGFF(&buf); err != nil {
		t.Fatal(err)
	}
	a, err := evaluate.ReadAnnotation(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if a.Genes != len(g.Genes) {
		t.Errorf("annotation has %d genes, want %d", a.Genes, len(g.Genes))
	}
}

// every planted gene ends a long candidate in its frame, and the trained model
// scores it as coding
func TestGenerate_plantedGenesScorePositive(t *testing.T) {
	g, err := Generate(smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	m, err := markov_model.New(g.Sequence, markov_model.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	ends := map[int]markov_model.Result{}
	for _, r := range m.Results() {
		ends[r.End+3] = r
	}
	for _, gene := range g.Genes {
		r, ok := ends[gene.End]
		if !ok {
			t.Errorf("no candidate ends at the stop of gene %+v", gene)
			continue
		}
		if r.Length <= 1400 {
			t.Errorf("candidate for gene %+v is only %d bp", gene, r.Length)
		}
		if r.Score <= 0 {
			t.Errorf("planted gene %+v scored %v", gene, r.Score)
		}
	}
}

func TestPreferred_strandAsymmetric(t *testing.T) {
	set := map[string]bool{}
	for _, c := range preferred {
		set[c] = true
	}
	for _, c := range preferred {
		rc, _ := common.ReverseComplement(c)
		if set[rc] {
			t.Errorf("reverse complement of %s (%s) is also preferred", c, rc)
		}
	}
	if len(senseCodons) != 61 {
		t.Errorf("len(senseCodons) = %d, want 61", len(senseCodons))
	}
}

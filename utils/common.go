// Common package holds the nucleotide alphabet and the genome loader shared by every tool.
// Nothing in here keeps mutable state: the complement table and stop codons are read-only.
package common

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Alphabet is the four-symbol nucleotide alphabet, in lexical order.
const Alphabet = "ACGT"

// Filler replaces any symbol outside Alphabet when a genome is loaded.
const Filler = 'T'

// StopCodons are the in-frame translation terminators.
var StopCodons = [3]string{"TAA", "TAG", "TGA"}

// ErrInvalidSymbol is matched by every SymbolError.
var ErrInvalidSymbol = errors.New("invalid nucleotide symbol")

// SymbolError reports a symbol outside {A,C,G,T} and where it was found.
type SymbolError struct {
	Pos    int
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrInvalidSymbol, e.Symbol, e.Pos)
}

func (e *SymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// complement[b] is zero for bytes outside the alphabet.
var complement = [256]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}

// IsStopCodon reports whether codon is one of TAA, TAG or TGA.
func IsStopCodon(codon string) bool {
	for _, stop := range StopCodons {
		if codon == stop {
			return true
		}
	}
	return false
}

// ReverseComplement returns the reverse complement of an upper-case DNA sequence.
// Unlike a display helper it never substitutes: any symbol outside the alphabet
// is returned as a *SymbolError.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	rc := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[i]]
		if c == 0 {
			return "", &SymbolError{Pos: i, Symbol: seq[i]}
		}
		rc[n-1-i] = c
	}
	return string(rc), nil
}

// Normalize upper-cases a raw sequence line and maps every non-ACGT symbol to Filler.
func Normalize(line string) string {
	b := []byte(strings.ToUpper(line))
	for i, c := range b {
		if complement[c] == 0 {
			b[i] = Filler
		}
	}
	return string(b)
}

// Validate returns a *SymbolError for the first symbol outside the alphabet.
func Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		if complement[seq[i]] == 0 {
			return &SymbolError{Pos: i, Symbol: seq[i]}
		}
	}
	return nil
}

// GenomeRecord is one FASTA record after normalization.
type GenomeRecord struct {
	ID       string
	Sequence string
}

// Len is the number of nucleotides in the record.
func (g GenomeRecord) Len() int { return len(g.Sequence) }

type FastaHandler func(rec GenomeRecord) error

// StreamFasta reads FASTA records from r and calls handler once per record.
// Sequence lines are normalized (upper-case, non-ACGT replaced by Filler) before
// being handed over, so handlers only ever see the four-letter alphabet.
func StreamFasta(r io.Reader, handler FastaHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var currentID string
	var buffer strings.Builder
	seen := false

	flush := func() error {
		if !seen {
			return nil
		}
		if err := handler(GenomeRecord{ID: currentID, Sequence: buffer.String()}); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimPrefix(line, ">")
			buffer.Reset()
			seen = true
			continue
		}
		seen = true
		buffer.WriteString(Normalize(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}

// StreamFastaFile opens file, transparently decompressing gzip input (detected by
// its magic bytes rather than the extension), and streams it through StreamFasta.
func StreamFastaFile(file string, handler FastaHandler) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var reader io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}
	return StreamFasta(reader, handler)
}

// ReadGenome loads every record of a FASTA file in order.
func ReadGenome(file string) ([]GenomeRecord, error) {
	var records []GenomeRecord
	err := StreamFastaFile(file, func(rec GenomeRecord) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no FASTA records found", file)
	}
	return records, nil
}

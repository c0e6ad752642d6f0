// Package translate converts nucleotide text into amino-acid text using the
// standard genetic code.
//
// Stop codons translate to '-' and any triplet containing a symbol outside
// {A, C, G, T} translates to 'X'.
package translate

import "github.com/aria-lang/orfscan-go/internal/sequence"

const (
	// Stop is the amino-acid symbol emitted for TAA, TAG and TGA.
	Stop = '-'
	// Unknown is emitted for codons that cannot be translated.
	Unknown = 'X'
	// Start is the amino-acid symbol that opens a reading frame.
	Start = 'M'
)

var codonTable = map[string]byte{
	"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
	"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
	"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
	"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
	"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
	"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
	"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
	"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
	"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
	"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
	"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
	"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
	"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
	"TAC": 'Y', "TAT": 'Y', "TAA": Stop, "TAG": Stop,
	"TGC": 'C', "TGT": 'C', "TGA": Stop, "TGG": 'W',
}

// Codon returns the amino acid for a single triplet, or Unknown.
func Codon(triplet string) byte {
	if aa, ok := codonTable[triplet]; ok {
		return aa
	}
	return Unknown
}

// Translate reads consecutive triplets of bases starting at offset.
// A trailing partial codon is dropped.
func Translate(bases string, offset int) string {
	bases = sequence.Normalize(bases)
	if offset < 0 {
		offset = 0
	}
	if offset >= len(bases) {
		return ""
	}

	n := (len(bases) - offset) / 3
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		p := offset + 3*i
		out[i] = Codon(bases[p : p+3])
	}
	return string(out)
}

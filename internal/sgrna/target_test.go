package sgrna

import (
	"testing"
)

func Test_reverseComplement(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{
			"simple sequence",
			"AAAATGG",
			"CCATTTT",
		},
		{
			"lowercase input",
			"atgc",
			"GCAT",
		},
		{
			"PAM pattern with a dot",
			".GG",
			"CC.",
		},
		{
			"N base passes through",
			"ANT",
			"ANT",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reverseComplement(tt.seq); got != tt.want {
				t.Errorf("reverseComplement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Target_key(t *testing.T) {
	fwd := Target{
		Seq:   "AAAA",
		Motif: "TGG",
		Chrom: "chr1",
		Start: 0,
		End:   4,
	}
	rev := fwd
	rev.Reverse = true

	if fwd.key() != "AAAA_TGG_chr1_0_4_F" {
		t.Errorf("Target.key() = %v, want AAAA_TGG_chr1_0_4_F", fwd.key())
	}

	// same coordinates on the other strand are a different target
	if fwd.key() == rev.key() {
		t.Errorf("keys of opposite-strand targets collide: %v", fwd.key())
	}

	// keys are stable
	if fwd.key() != fwd.key() {
		t.Error("Target.key() is not deterministic")
	}
}

func Test_Target_seqWithMotif(t *testing.T) {
	target := Target{Seq: "GAAA", Motif: "CGG"}

	if got := target.seqWithMotif(); got != "GAAACGG" {
		t.Errorf("Target.seqWithMotif() = %v, want GAAACGG", got)
	}

	// the reverse complement of seq+motif is the forward-strand substring
	if got := reverseComplement(target.seqWithMotif()); got != "CCGTTTC" {
		t.Errorf("reverseComplement(seqWithMotif()) = %v, want CCGTTTC", got)
	}
}

func Test_sortTargets(t *testing.T) {
	ts := []Target{
		{Chrom: "chr2", Start: 5, End: 9},
		{Chrom: "chr1", Start: 10, End: 14},
		{Chrom: "chr1", Start: 2, End: 6},
		{Chrom: "chr1", Start: 2, End: 5},
	}

	sortTargets(ts)

	want := []Target{
		{Chrom: "chr1", Start: 2, End: 5},
		{Chrom: "chr1", Start: 2, End: 6},
		{Chrom: "chr1", Start: 10, End: 14},
		{Chrom: "chr2", Start: 5, End: 9},
	}
	for i := range want {
		if ts[i] != want[i] {
			t.Errorf("sortTargets()[%d] = %v, want %v", i, ts[i], want[i])
		}
	}
}

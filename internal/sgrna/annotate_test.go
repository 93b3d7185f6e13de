package sgrna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetMap(ts ...Target) map[string]Target {
	targets := make(map[string]Target)
	for _, t := range ts {
		targets[t.key()] = t
	}

	return targets
}

func Test_annotate_offset(t *testing.T) {
	target := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 110, End: 130}
	lens := map[string]int{"chr1": 1000}

	// forward-strand gene: offset from the region start
	fwd, err := annotate(
		targetMap(target),
		[]Region{{"geneA", "chr1", 100, 200, '+'}},
		lens,
		true,
	)
	require.NoError(t, err)
	require.Len(t, fwd, 1)
	assert.Equal(t, "geneA", fwd[0].Gene)
	assert.Equal(t, 10, fwd[0].Offset)

	// reverse-strand gene: offset from the region end
	rev, err := annotate(
		targetMap(target),
		[]Region{{"geneA", "chr1", 100, 200, '-'}},
		lens,
		true,
	)
	require.NoError(t, err)
	require.Len(t, rev, 1)
	assert.Equal(t, 70, rev[0].Offset)
}

func Test_annotate_senseStrand(t *testing.T) {
	fwdTarget := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 110, End: 130}
	revTarget := fwdTarget
	revTarget.Reverse = true

	lens := map[string]int{"chr1": 1000}

	tests := []struct {
		name   string
		target Target
		strand byte
		want   bool
	}{
		{"reverse target in reverse gene", revTarget, '-', true},
		{"reverse target in forward gene", revTarget, '+', false},
		{"forward target in forward gene", fwdTarget, '+', true},
		{"forward target in reverse gene", fwdTarget, '-', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotated, err := annotate(
				targetMap(tt.target),
				[]Region{{"geneA", "chr1", 100, 200, tt.strand}},
				lens,
				true,
			)
			require.NoError(t, err)
			require.Len(t, annotated, 1)
			assert.Equal(t, tt.want, annotated[0].SenseStrand)
		})
	}
}

func Test_annotate_completeness(t *testing.T) {
	inGene := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 110, End: 130}
	inBoth := Target{Seq: "CAAA", Motif: "TGG", Chrom: "chr1", Start: 180, End: 200}
	orphan := Target{Seq: "GAAA", Motif: "TGG", Chrom: "chr1", Start: 500, End: 520}

	regions := []Region{
		{"geneA", "chr1", 100, 200, '+'},
		{"geneB", "chr1", 150, 250, '+'},
	}

	annotated, err := annotate(
		targetMap(inGene, inBoth, orphan),
		regions,
		map[string]int{"chr1": 1000},
		true,
	)
	require.NoError(t, err)

	// every target gets either >= 1 annotated rows or exactly one
	// unannotated row, never both, never neither
	annotatedRows := make(map[string]int)
	unannotatedRows := make(map[string]int)
	for _, row := range annotated {
		if row.annotated {
			annotatedRows[row.key()]++
		} else {
			unannotatedRows[row.key()]++
		}
	}

	assert.Equal(t, 1, annotatedRows[inGene.key()])
	assert.Equal(t, 2, annotatedRows[inBoth.key()])
	assert.Zero(t, unannotatedRows[inGene.key()])
	assert.Zero(t, unannotatedRows[inBoth.key()])

	assert.Zero(t, annotatedRows[orphan.key()])
	assert.Equal(t, 1, unannotatedRows[orphan.key()])
}

func Test_annotate_overlapPolicies(t *testing.T) {
	straddler := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 90, End: 110}
	regions := []Region{{"geneA", "chr1", 100, 200, '+'}}
	lens := map[string]int{"chr1": 1000}

	partial, err := annotate(targetMap(straddler), regions, lens, true)
	require.NoError(t, err)
	require.Len(t, partial, 1)
	assert.True(t, partial[0].annotated)
	assert.Equal(t, -10, partial[0].Offset)

	full, err := annotate(targetMap(straddler), regions, lens, false)
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.False(t, full[0].annotated)
}

func Test_annotate_containedTarget(t *testing.T) {
	contained := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 120, End: 140}
	regions := []Region{{"geneA", "chr1", 100, 200, '+'}}
	lens := map[string]int{"chr1": 1000}

	full, err := annotate(targetMap(contained), regions, lens, false)
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.True(t, full[0].annotated)
	assert.Equal(t, 20, full[0].Offset)
}

func Test_annotate_boundaryArithmetic(t *testing.T) {
	// a target starting exactly at the region end is never claimed
	after := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 200, End: 220}
	regions := []Region{{"geneA", "chr1", 100, 200, '+'}}
	lens := map[string]int{"chr1": 1000}

	annotated, err := annotate(targetMap(after), regions, lens, true)
	require.NoError(t, err)
	require.Len(t, annotated, 1)
	assert.False(t, annotated[0].annotated)
}

func Test_annotate_cursorPersistence(t *testing.T) {
	early := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 10, End: 30}
	late := Target{Seq: "CAAA", Motif: "TGG", Chrom: "chr1", Start: 310, End: 330}

	// the sweep bounds carry over from geneA to geneB on the same
	// chromosome without re-scanning
	regions := []Region{
		{"geneA", "chr1", 0, 100, '+'},
		{"geneB", "chr1", 300, 400, '+'},
	}

	annotated, err := annotate(
		targetMap(early, late),
		regions,
		map[string]int{"chr1": 1000},
		true,
	)
	require.NoError(t, err)
	require.Len(t, annotated, 2)

	genes := make(map[string]string)
	for _, row := range annotated {
		require.True(t, row.annotated)
		genes[row.key()] = row.Gene
	}
	assert.Equal(t, "geneA", genes[early.key()])
	assert.Equal(t, "geneB", genes[late.key()])
}

func Test_annotate_skipsUnknownChromosome(t *testing.T) {
	target := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 10, End: 30}

	regions := []Region{
		{"ghost", "chrX", 0, 100, '+'}, // no length entry, skipped
		{"geneA", "chr1", 0, 100, '+'},
	}

	annotated, err := annotate(
		targetMap(target),
		regions,
		map[string]int{"chr1": 1000},
		true,
	)
	require.NoError(t, err)
	require.Len(t, annotated, 1)
	assert.Equal(t, "geneA", annotated[0].Gene)
}

func Test_annotate_skipsRegionPastChromosomeEnd(t *testing.T) {
	target := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 10, End: 30}

	regions := []Region{{"geneA", "chr1", 1000, 1100, '+'}}

	annotated, err := annotate(
		targetMap(target),
		regions,
		map[string]int{"chr1": 1000},
		true,
	)
	require.NoError(t, err)
	require.Len(t, annotated, 1)
	assert.False(t, annotated[0].annotated)
}

func Test_annotate_unsortedRegions(t *testing.T) {
	target := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 10, End: 30}

	regions := []Region{
		{"geneB", "chr1", 300, 400, '+'},
		{"geneA", "chr1", 0, 100, '+'},
	}

	_, err := annotate(
		targetMap(target),
		regions,
		map[string]int{"chr1": 1000},
		true,
	)
	assert.Error(t, err)
}

func Test_annotate_copiesAreIndependent(t *testing.T) {
	target := Target{Seq: "AAAA", Motif: "TGG", Chrom: "chr1", Start: 150, End: 170}

	// two regions claim the same target
	regions := []Region{
		{"geneA", "chr1", 100, 200, '+'},
		{"geneB", "chr1", 140, 240, '+'},
	}

	targets := targetMap(target)
	annotated, err := annotate(targets, regions, map[string]int{"chr1": 1000}, true)
	require.NoError(t, err)
	require.Len(t, annotated, 2)

	// mutating one copy touches neither its sibling nor the source
	annotated[0].Seq = "TTTT"
	assert.Equal(t, "AAAA", annotated[1].Seq)
	assert.Equal(t, "AAAA", targets[target.key()].Seq)
}

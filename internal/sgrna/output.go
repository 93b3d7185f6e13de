package sgrna

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// reportHeader names every target field in the order rows are written.
var reportHeader = []string{
	"chrom",
	"start",
	"end",
	"sequence",
	"motif",
	"reverse",
	"specificity",
	"gene",
	"offset",
	"sense_strand",
}

// writeTSV writes one header row and one tab-separated row per annotated
// target to filename. Annotation fields of unannotated targets are left
// empty.
func writeTSV(filename string, targets []AnnotatedTarget) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file at %s: %v", filename, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, strings.Join(reportHeader, "\t"))

	for _, t := range targets {
		gene, offset, sense := "", "", ""
		if t.annotated {
			gene = t.Gene
			offset = strconv.Itoa(t.Offset)
			sense = strconv.FormatBool(t.SenseStrand)
		}

		fmt.Fprintf(
			w,
			"%s\t%d\t%d\t%s\t%s\t%t\t%d\t%s\t%s\t%s\n",
			t.Chrom,
			t.Start,
			t.End,
			t.Seq,
			t.Motif,
			t.Reverse,
			t.Specificity,
			gene,
			offset,
			sense,
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file at %s: %v", filename, err)
	}

	return nil
}

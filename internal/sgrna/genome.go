package sgrna

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SeqRecord is one entry of a multi-FASTA genome.
type SeqRecord struct {
	// Chrom is the record's name, the first token of its FASTA header
	Chrom string

	// Seq is the record's sequence, uppercased. 'N' bases are kept,
	// the extractor filters windows touching them
	Seq string
}

// readGenome reads every FASTA file into one list of sequence records.
func readGenome(paths []string) (records []SeqRecord, err error) {
	for _, path := range paths {
		if !filepath.IsAbs(path) {
			if path, err = filepath.Abs(path); err != nil {
				return nil, fmt.Errorf("failed to create path to genome file: %v", err)
			}
		}

		dat, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read genome file: %v", err)
		}

		fileRecords, err := readFasta(path, string(dat))
		if err != nil {
			return nil, err
		}
		records = append(records, fileRecords...)
	}

	return records, nil
}

// readFasta parses multi-FASTA contents to sequence records.
func readFasta(path, contents string) (records []SeqRecord, err error) {
	// split by newlines
	lines := strings.Split(contents, "\n")

	// read in the records
	var headerIndices []int
	var chroms []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			// the record name is the first whitespace-separated token
			chroms = append(chroms, strings.Fields(line[1:])[0])
		}
	}

	// accumulate the sequences from between the headers
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		seq := strings.TrimSpace(strings.Join(seqLines, ""))
		seq = strings.ReplaceAll(seq, "\r", "")
		seq = strings.ToUpper(seq)

		records = append(records, SeqRecord{
			Chrom: chroms[i],
			Seq:   seq,
		})
	}

	// opened and parsed file but found nothing
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse any sequence records from %s", path)
	}

	return records, nil
}

// chromLengths maps each record's name to its sequence length.
func chromLengths(records []SeqRecord) map[string]int {
	lens := make(map[string]int)
	for _, record := range records {
		lens[record.Chrom] = len(record.Seq)
	}

	return lens
}

// mergeGenomes returns a single FASTA path covering all the input files,
// for bowtie to index. One input is used as-is; several are merged into a
// new file next to the first.
func mergeGenomes(paths []string, records []SeqRecord) (string, error) {
	if len(paths) == 1 {
		return paths[0], nil
	}

	ext := filepath.Ext(paths[0])
	merged := strings.TrimSuffix(paths[0], ext) + ".merged" + ext

	var fasta strings.Builder
	for _, record := range records {
		fmt.Fprintf(&fasta, ">%s\n%s\n", record.Chrom, record.Seq)
	}

	if err := os.WriteFile(merged, []byte(fasta.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write merged genome file at %s: %v", merged, err)
	}

	return merged, nil
}

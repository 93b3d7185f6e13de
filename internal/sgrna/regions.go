package sgrna

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readRegions parses a tab-separated region file into gene regions.
//
// Each line is "name chrom start end strand". '#' comment lines are
// skipped. A line with the wrong number of fields, or no usable name, is
// fatal: annotation can't be trusted with a malformed region list. A line
// whose coordinates don't parse is skipped with a warning. A strand other
// than '+' or '-' means the strand is unknown and the record is expanded
// into one region per strand, so targets can be claimed from either
// orientation.
func readRegions(path string) (regions []Region, err error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read region file: %v", err)
	}

	skipped := 0
	for _, line := range strings.Split(string(dat), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 5 {
			return nil, fmt.Errorf("failed to parse region from %s: %q", path, line)
		}

		gene, chrom := parts[0], parts[1]
		if gene == "" {
			return nil, fmt.Errorf("region without a name in %s: %q", path, line)
		}

		start, startErr := strconv.Atoi(parts[2])
		end, endErr := strconv.Atoi(parts[3])
		if startErr != nil || endErr != nil {
			stderr.Printf("could not fully parse region %q, skipping", line)
			skipped++
			continue
		}

		switch parts[4] {
		case "+":
			regions = append(regions, Region{gene, chrom, start, end, '+'})
		case "-":
			regions = append(regions, Region{gene, chrom, start, end, '-'})
		default:
			// unknown strand, claim targets from both orientations
			regions = append(regions, Region{gene, chrom, start, end, '+'})
			regions = append(regions, Region{gene, chrom, start, end, '-'})
		}
	}

	if skipped > 0 {
		stderr.Printf("skipped %d unparseable region records", skipped)
	}
	stderr.Printf("found %d target regions in region file", len(regions))

	return regions, nil
}

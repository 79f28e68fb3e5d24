package genome_gen

import (
	"fmt"
	"os"
	"strings"

	"genome_forge_go/utils"
)

// WriteHTMLReport renders the composition report to filename + ".html".
func WriteHTMLReport(filename string, stats GenomeStats, svgWindow string, svgRegions string, svgDist string) error {
	if err := common.EnsureDir(filename); err != nil {
		return err
	}
	f, err := os.Create(filename + ".html")
	if err != nil {
		return err
	}
	defer f.Close()

	var kindRows strings.Builder
	for _, ks := range stats.Kinds {
		kindRows.WriteString(fmt.Sprintf(
			"\t\t<tr><td>%s</td><td>%d</td><td>%d</td><td>%.2f%%</td><td>%.2f%%</td><td>%.2f</td></tr>\n",
			ks.Kind, ks.Regions, ks.Bases, ks.MeanTarget, ks.MeanGC, ks.StdDevGC))
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<title>Genome Forge Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>Genome Forge Report</h1>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Genome Length</td><td>%d</td></tr>
		<tr><td>Region Count</td><td>%d</td></tr>
		<tr><td>GC Content</td><td>%.2f%%</td></tr>
		<tr><td>A Count</td><td>%d</td></tr>
		<tr><td>T Count</td><td>%d</td></tr>
		<tr><td>G Count</td><td>%d</td></tr>
		<tr><td>C Count</td><td>%d</td></tr>
	</table>
	<h2>Regions by Kind</h2>
	<table>
		<tr><th>Kind</th><th>Regions</th><th>Bases</th><th>Mean Target GC</th><th>Mean Realized GC</th><th>StdDev</th></tr>
%s	</table>
	<h2>Windowed GC Content</h2>
	<div>%s</div>
	<h2>Region Target vs Realized GC</h2>
	<div>%s</div>
	<h2>GC Distribution</h2>
	<div>%s</div>
</body>
</html>`,
		stats.Length,
		stats.RegionCount,
		stats.GCContent,
		stats.CountA,
		stats.CountT,
		stats.CountG,
		stats.CountC,
		kindRows.String(),
		svgWindow,
		svgRegions,
		svgDist,
	)

	_, err = f.WriteString(html)
	return err
}

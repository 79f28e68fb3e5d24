package genome_gen

import (
	"bytes"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"genome_forge_go/genome"
)

// renderSVG draws a finished plot into an SVG string.
func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateWindowedGCPlot draws GC percentage per fixed-width window
// across the genome.
func GenerateWindowedGCPlot(windows []float64, window int) (string, error) {
	p := plot.New()
	p.Title.Text = "Windowed GC Content"
	p.X.Label.Text = "Genome Position (bp)"
	p.Y.Label.Text = "GC Content (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	pts := make(plotter.XYs, len(windows))
	for i, val := range windows {
		pts[i].X = float64(i*window) + float64(window)/2
		pts[i].Y = val
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = color.RGBA{B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("GC %", line)
	p.Legend.Top = true

	return renderSVG(p)
}

// GenerateRegionGCPlot draws target against realized GC for every region
// in genome order.
func GenerateRegionGCPlot(regions []genome.Region) (string, error) {
	p := plot.New()
	p.Title.Text = "Region Composition: Target vs Realized"
	p.X.Label.Text = "Region Index"
	p.Y.Label.Text = "GC Content (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	targetXY := make(plotter.XYs, len(regions))
	realizedXY := make(plotter.XYs, len(regions))
	for i, r := range regions {
		targetXY[i].X = float64(i + 1)
		targetXY[i].Y = r.TargetGC * 100
		realizedXY[i].X = float64(i + 1)
		realizedXY[i].Y = r.RunningGC() * 100
	}

	realizedLine, err := plotter.NewLine(realizedXY)
	if err != nil {
		return "", err
	}
	realizedLine.Color = color.RGBA{B: 255, A: 255}
	realizedLine.Width = vg.Points(2)

	targetLine, err := plotter.NewLine(targetXY)
	if err != nil {
		return "", err
	}
	targetLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	targetLine.Width = vg.Points(2)
	targetLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(realizedLine, targetLine)
	p.Legend.Add("Realized", realizedLine)
	p.Legend.Add("Target", targetLine)
	p.Legend.Top = true

	return renderSVG(p)
}

// GenerateGCDistributionPlot draws the histogram of per-region realized
// GC values with a modeled normal curve overlaid.
func GenerateGCDistributionPlot(gcValues []float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Per Region GC Content"
	p.X.Label.Text = "GC Content (%)"
	p.Y.Label.Text = "Region Count"

	// A. Build observed GC histogram
	binCount := 50
	binWidth := 100.0 / float64(binCount)
	observed := make([]float64, binCount)

	for _, val := range gcValues {
		bin := int(val / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		observed[bin]++
	}

	// B. Mean and stddev of the observed values
	mean := stat.Mean(gcValues, nil)
	stddev := stat.StdDev(gcValues, nil)

	// C. Expected normal curve normalized to the same total
	total := float64(len(gcValues))
	expected := make([]float64, binCount)
	if stddev > 0 {
		normDist := distuv.Normal{Mu: mean, Sigma: stddev}
		scaleFactor := total * binWidth
		for i := 0; i < binCount; i++ {
			x := binWidth*float64(i) + binWidth/2
			expected[i] = normDist.Prob(x) * scaleFactor
		}
	}

	// D. Convert to line plots
	observedXY := make(plotter.XYs, binCount)
	expectedXY := make(plotter.XYs, binCount)
	for i := 0; i < binCount; i++ {
		x := binWidth*float64(i) + binWidth/2
		observedXY[i].X = x
		observedXY[i].Y = observed[i]
		expectedXY[i].X = x
		expectedXY[i].Y = expected[i]
	}

	obsLine, err := plotter.NewLine(observedXY)
	if err != nil {
		return "", err
	}
	obsLine.Color = color.RGBA{B: 255, A: 255}
	obsLine.Width = vg.Points(2)

	p.Add(obsLine)
	p.Legend.Add("Observed", obsLine)
	p.Legend.Top = true

	if stddev > 0 {
		expLine, err := plotter.NewLine(expectedXY)
		if err != nil {
			return "", err
		}
		expLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
		expLine.Width = vg.Points(2)
		expLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(expLine)
		p.Legend.Add("Modelled Normal", expLine)
	}

	return renderSVG(p)
}

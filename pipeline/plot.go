package pipeline

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sandeep-multani/SentimentAnalysisML/metrics"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// SaveROCPlot renders the model's ROC curve on the given examples and
// writes it to filename. The format follows the file extension (.png,
// .svg, .pdf). The plot is a report artifact only; it does not affect
// the Metrics value.
func SaveROCPlot(model *Model, examples []Example, filename string) error {
	if len(examples) == 0 {
		return errors.NewValueError("pipeline.SaveROCPlot", "no evaluation examples")
	}

	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
	}
	predictions, err := model.PredictBatch(texts)
	if err != nil {
		return err
	}

	yTrue := mat.NewVecDense(len(examples), nil)
	yScore := mat.NewVecDense(len(examples), nil)
	for i, ex := range examples {
		if ex.Label {
			yTrue.SetVec(i, 1)
		}
		yScore.SetVec(i, predictions[i].Score)
	}
	points, err := metrics.ROCCurve(yTrue, yScore)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	curve := make(plotter.XYs, len(points))
	for i, pt := range points {
		curve[i].X = pt.FPR
		curve[i].Y = pt.TPR
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return errors.Wrap(err, "building ROC line")
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	// Chance diagonal for reference.
	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return errors.Wrap(err, "building reference line")
	}
	diagonal.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	diagonal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(diagonal)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "saving ROC plot to %s", filename)
	}
	return nil
}

package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"

	"github.com/quantdash/retirement-planner/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with an inline
// trajectory chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"frac":   FormatFraction,
	"series": trajectorySeries,
	"age": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanComparison
		Recommendation Recommendation
	}{results, AnalyzeScenarios(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chartSeries is the shape embedded into the report for the canvas chart.
type chartSeries struct {
	Ages   []int     `json:"ages"`
	Values []float64 `json:"values"`
}

// trajectorySeries converts chart data into parallel age/value slices for the
// inline chart script.
func trajectorySeries(points []domain.DataPoint) chartSeries {
	s := chartSeries{
		Ages:   make([]int, len(points)),
		Values: make([]float64, len(points)),
	}
	for i, p := range points {
		s.Ages[i] = p.Age
		s.Values[i], _ = p.Value.Float64()
	}
	return s
}

package pipeline

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/pkoval/redline/internal/model"
)

// Renderer writes an AnalysisResult in one of the supported output formats.
type Renderer struct {
	format string
}

// NewRenderer creates a renderer for the given format. An empty format
// selects the plain-text report.
func NewRenderer(format string) *Renderer {
	return &Renderer{format: format}
}

// Render writes the result to w in the renderer's format.
func (r *Renderer) Render(w io.Writer, result *model.AnalysisResult) error {
	switch strings.ToLower(r.format) {
	case "", "text":
		return renderText(w, result)
	case "json":
		return renderJSON(w, result)
	case "html":
		return renderHTML(w, result)
	default:
		return fmt.Errorf("unknown output format: %s (supported: text, json, html)", r.format)
	}
}

func renderJSON(w io.Writer, result *model.AnalysisResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func renderText(w io.Writer, result *model.AnalysisResult) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("═══════════════════════════════════════════════════════════\n")
	b.WriteString("  Document Risk Analysis\n")
	b.WriteString("═══════════════════════════════════════════════════════════\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Document type:  %s (%.1f%% confidence)\n", result.DocumentType, result.DocumentTypeConf)
	fmt.Fprintf(&b, "  Source:         %s\n", result.Source)
	fmt.Fprintf(&b, "  Risky clauses:  %d\n", len(result.HighRiskClauses))
	if result.RiskIndex != nil {
		fmt.Fprintf(&b, "  Risk index:     %d/100 (%s, %s confidence)\n", result.RiskIndex.Index, result.RiskIndex.Label, result.RiskIndex.Confidence)
	}
	b.WriteString("\n")

	if result.Summary != "" {
		b.WriteString("Summary:\n")
		fmt.Fprintf(&b, "  %s\n\n", result.Summary)
	}

	if len(result.HighRiskClauses) == 0 {
		b.WriteString("No high-risk clauses detected.\n")
	}

	for i, clause := range result.HighRiskClauses {
		fmt.Fprintf(&b, "[%d] %s (risk %d/5)", i+1, clause.RiskLevel, clause.RiskScore)
		if clause.Category != "" {
			fmt.Fprintf(&b, " [%s]", clause.Category)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "    Clause:      %s\n", clause.ClauseText)
		if clause.Rationale != "" {
			fmt.Fprintf(&b, "    Why:         %s\n", clause.Rationale)
		}
		if clause.Mitigation != "" {
			fmt.Fprintf(&b, "    Mitigation:  %s\n", clause.Mitigation)
		}
		if clause.ReplacementClause != "" {
			fmt.Fprintf(&b, "    Replacement: %s\n", clause.ReplacementClause)
		}
		if clause.PatternMatched != "" {
			fmt.Fprintf(&b, "    Pattern:     %s (severity %d)\n", clause.PatternMatched, clause.PatternSeverity)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// htmlReport is the view model for the HTML template. Preview carries the
// pre-escaped highlighted document so the template does not escape it again.
type htmlReport struct {
	*model.AnalysisResult
	Clauses []htmlClause
	Preview template.HTML
}

type htmlClause struct {
	model.Clause
	Index int
	Class string
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Document Risk Analysis</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; margin: 40px; color: #222; }
        h1, h2 { color: #333; }
        .meta { color: #666; }
        .summary { background: #f5f5f5; padding: 16px; border-radius: 4px; }
        .clause { margin-bottom: 24px; padding: 8px 16px; border-left: 4px solid #ccc; }
        .clause.risk-high { border-color: #d32f2f; }
        .clause.risk-medium { border-color: #f57c00; }
        .clause.risk-low { border-color: #388e3c; }
        .clause blockquote { margin: 8px 0; font-style: italic; color: #444; }
        .replacement { background: #e8f5e9; padding: 8px 12px; border-radius: 4px; }
        .preview { border: 1px solid #ddd; padding: 20px; margin-top: 12px; }
        mark.risk-high { background: #ffcdd2; }
        mark.risk-medium { background: #ffe0b2; }
        mark.risk-low { background: #dcedc8; }
    </style>
</head>
<body>
    <h1>Document Risk Analysis</h1>
    <p class="meta">Document type: {{.DocumentType}} ({{printf "%.1f" .DocumentTypeConf}}% confidence) | Source: {{.Source}}</p>
    {{if .RiskIndex}}<p class="meta">Risk index: {{.RiskIndex.Index}}/100 ({{.RiskIndex.Label}})</p>{{end}}

    <h2>Summary</h2>
    <p class="summary">{{.Summary}}</p>

    <h2>High-Risk Clauses ({{len .Clauses}})</h2>
    {{range .Clauses}}
    <div class="clause {{.Class}}">
        <h3>{{.Index}}. {{.RiskLevel}} (risk {{.RiskScore}}/5)</h3>
        <blockquote>{{.ClauseText}}</blockquote>
        <p><strong>Why it matters:</strong> {{.Rationale}}</p>
        {{if .Mitigation}}<p><strong>Mitigation:</strong> {{.Mitigation}}</p>{{end}}
        {{if .ReplacementClause}}<p class="replacement"><strong>Suggested replacement:</strong> {{.ReplacementClause}}</p>{{end}}
        {{if .PatternMatched}}<p class="meta">Matched pattern: {{.PatternMatched}} ({{.PatternSeverity}})</p>{{end}}
    </div>
    {{end}}

    <h2>Highlighted Document</h2>
    <div class="preview">{{.Preview}}</div>
</body>
</html>
`))

func renderHTML(w io.Writer, result *model.AnalysisResult) error {
	report := htmlReport{
		AnalysisResult: result,
		Clauses:        make([]htmlClause, 0, len(result.HighRiskClauses)),
		Preview:        template.HTML(result.HighlightedPreview),
	}
	for i, clause := range result.HighRiskClauses {
		report.Clauses = append(report.Clauses, htmlClause{
			Clause: clause,
			Index:  i + 1,
			Class:  riskClass(clause.RiskScore),
		})
	}
	return htmlTemplate.Execute(w, report)
}

// riskClass mirrors the highlight mark classes so clause cards and
// document marks share one palette.
func riskClass(score int) string {
	switch {
	case score >= 4:
		return "risk-high"
	case score >= 3:
		return "risk-medium"
	default:
		return "risk-low"
	}
}

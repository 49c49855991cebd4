// Package render turns a scheduler response into a standalone HTML page or
// an exported JSON document.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

type classView struct {
	Tag     string
	Number  string
	Name    string
	Credits int
}

type semesterView struct {
	Label   string
	Classes []classView
	Credits int
}

type pageView struct {
	Title        string
	Empty        bool
	Summary      domain.ScheduleSummary
	Semesters    []semesterView
	Improvements []string
	HasQuality   bool
	Quality      int
	MetaNotes    []string
	ExportHref   string
}

// Options tunes the rendered page.
type Options struct {
	Title string
	// ExportHref is the link target of the export button. Empty hides it.
	ExportHref string
}

var page = template.Must(template.New("schedule").Parse(pageTemplate))

// HTML writes resp as a complete HTML document.
func HTML(w io.Writer, resp *domain.ScheduleResponse, opts Options) error {
	if err := page.Execute(w, buildView(resp, opts)); err != nil {
		return fmt.Errorf("rendering schedule page: %w", err)
	}
	return nil
}

func buildView(resp *domain.ScheduleResponse, opts Options) pageView {
	v := pageView{Title: opts.Title, ExportHref: opts.ExportHref}
	if v.Title == "" {
		v.Title = "Degree Schedule"
	}
	if resp == nil {
		v.Empty = true
		return v
	}

	summary, ok := domain.Summarize(resp.Schedule)
	if !ok {
		v.Empty = true
		return v
	}
	v.Summary = summary
	for _, sem := range resp.Schedule {
		sv := semesterView{Label: sem.Label(), Credits: sem.DisplayCredits()}
		for _, c := range sem.UniqueClasses() {
			sv.Classes = append(sv.Classes, classView{
				Tag:     c.Tag(),
				Number:  c.Number,
				Name:    c.Name,
				Credits: c.DisplayCredits(),
			})
		}
		v.Semesters = append(v.Semesters, sv)
	}

	v.Improvements = resp.Improvements
	if pct, ok := resp.Metadata.QualityPercent(); ok {
		v.HasQuality = true
		v.Quality = pct
		v.MetaNotes = resp.Metadata.Improvements
	}
	return v
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,sans-serif;margin:2rem;color:#282828;background:#fbf1c7}
.summary-box,.schedule-table{display:flex;flex-wrap:wrap;gap:1rem}
.summary-item,.semester-card{background:#fff;border-radius:8px;padding:1rem;min-width:12rem}
.classes-list{list-style:none;padding:0}
.class-tag{font-size:.75rem;text-transform:uppercase;margin-right:.5rem}
.class-credits,.semester-credits{color:#928374}
.error-message{border-left:4px solid #fb4934;padding:1rem;background:#fff}
</style>
</head>
<body>
<div id="schedule-container">
{{- if .Empty}}
<div class="error-message">
<h3>Unable to Generate Schedule</h3>
<p>Could not create a valid schedule with the given requirements.</p>
<p>Try adjusting your course selections or credit limits.</p>
</div>
{{- else}}
<div class="summary-box" id="summary">
<div class="summary-item" id="total-credits-box"><p>Total Credits Taken</p><h2 id="total-credits">{{.Summary.TotalCredits}}</h2></div>
<div class="summary-item" id="electives-needed-box"><p>Elective Credits Needed</p><h2 id="electives-needed">{{.Summary.ElectivesNeeded}}</h2></div>
<div class="summary-item" id="total-semesters-box"><p>Total Semesters</p><h2 id="total-semesters">{{.Summary.TotalSemesters}}</h2></div>
<div class="summary-item" id="graduation-date-box"><p>Graduation Date</p><h2 id="graduation-date">{{.Summary.GraduationLabel}}</h2></div>
</div>
<div class="schedule-table">
{{- range .Semesters}}
<div class="semester-card">
<div class="semester-header">{{.Label}}</div>
<ul class="classes-list">
{{- range .Classes}}
<li class="class-item"><span class="class-tag {{.Tag}}">{{.Tag}}</span><span class="class-number">{{.Number}}</span> <span class="class-name">{{.Name}}</span> <span class="class-credits">{{.Credits}} cr</span></li>
{{- end}}
</ul>
<div class="semester-credits">Total: {{.Credits}} credits</div>
</div>
{{- end}}
</div>
{{- if .Improvements}}
<div class="improvements-container">
<h3>Schedule Insights</h3>
<ul>{{range .Improvements}}<li>{{.}}</li>{{end}}</ul>
</div>
{{- end}}
{{- if .HasQuality}}
<div class="schedule-metadata">
<h3>Schedule Quality: {{.Quality}}%</h3>
<div class="improvements">{{range .MetaNotes}}<p>{{.}}</p>{{end}}</div>
</div>
{{- end}}
{{- if .ExportHref}}
<a class="export-button" href="{{.ExportHref}}" download="schedule.json">Export Schedule JSON</a>
{{- end}}
{{- end}}
</div>
</body>
</html>
`

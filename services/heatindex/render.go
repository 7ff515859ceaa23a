package heatindex

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"heatindex-backend/lib/timezone"
)

//go:embed templates/newsletter.html.tmpl
var newsletterTemplate string

var issueTemplate = template.Must(
	template.New("newsletter").Parse(newsletterTemplate),
)

type issueView struct {
	Title       string
	GeneratedAt string
	Entries     []Entry
	Sources     []SourceConfig
}

// RenderIssue produces the issue title and its HTML body.
func RenderIssue(now time.Time, entries []Entry, sources []SourceConfig) (title, body string, err error) {
	local := now.In(timezone.Location)
	title = fmt.Sprintf("NYC Heat Index — %s", timezone.MonthLabel(local))

	var buf bytes.Buffer
	err = issueTemplate.Execute(&buf, issueView{
		Title:       title,
		GeneratedAt: local.Format("2006-01-02 15:04 MST"),
		Entries:     entries,
		Sources:     sources,
	})
	if err != nil {
		return "", "", err
	}
	return title, buf.String(), nil
}

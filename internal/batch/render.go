package batch

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// reportTemplateText is the markdown layout written by `apply --report`
const reportTemplateText = `# Batch rewrite report

Run {{ .RunID }} on {{ dateInZone "2006-01-02 15:04" .CreatedAt "UTC" }}: {{ len .Results }} project(s), {{ .ChangedCount }} updated, {{ .FailedCount }} failed.

{{ range .Results -}}
## {{ .Project }}

` + "`{{ .Path }}`" + `

{{ if .Unchanged -}}
No tracked field differed from the requested values; nothing written.
{{ else -}}
{{ range .Changed -}}
- **{{ . }}** updated
{{ end -}}
{{ range .Failed -}}
- **{{ .Field }}** failed: {{ .Reason }}
{{ end -}}
{{ end }}
{{ end -}}
`

var reportTemplate = template.Must(
	template.New("report").Funcs(sprig.FuncMap()).Parse(reportTemplateText),
)

// RenderMarkdown renders the report into the markdown form used by the
// --report flag
func RenderMarkdown(r *Report) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package webui

import (
	"html/template"
	"strings"

	"github.com/agilekit/flowlens/internal/contract"
)

// indexTemplate is the single-page upload form. Kept inline: there is no
// asset pipeline to justify a separate static directory for one page.
var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Flowlens — Cycle Time &amp; Work Item Age</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.4rem; }
  label { display: block; margin-top: 1rem; font-weight: 600; }
  input[type=text], input[type=date] { width: 100%; padding: .4rem; box-sizing: border-box; }
  .hint { color: #666; font-size: .85rem; margin-top: .2rem; }
  button { margin-top: 1.5rem; padding: .5rem 1.2rem; font-size: 1rem; }
  code { background: #f4f4f4; padding: .1rem .3rem; }
</style>
</head>
<body>
<h1>Cycle Time &amp; Work Item Age</h1>
<p>Upload an issue-history export (CSV or Excel). Expected columns
(case-insensitive): <code>Key</code>, <code>Date of change</code>,
<code>Status</code>, <code>Status [new]</code>.</p>

<form method="post" action="/api/report/xlsx" enctype="multipart/form-data">
  <label for="file">History export</label>
  <input type="file" id="file" name="file" accept=".csv,.xlsx,.xlsm" required>

  <label for="timezone">Timezone</label>
  <input type="text" id="timezone" name="timezone" value="{{.Timezone}}">
  <div class="hint">IANA name, used for &quot;today&quot; when computing work item age.</div>

  <label for="in_progress">Treat these as In Progress (comma-separated)</label>
  <input type="text" id="in_progress" name="in_progress" value="{{.InProgress}}">

  <label for="done">Treat these as Done (comma-separated)</label>
  <input type="text" id="done" name="done" value="{{.Done}}">

  <label for="today">Today override (optional)</label>
  <input type="date" id="today" name="today">
  <div class="hint">Pin the reference date for work item age; leave empty for the current date.</div>

  <label><input type="checkbox" name="include_not_started" value="yes"> Include issues that never started</label>

  <button type="submit">Download spreadsheet</button>
</form>

<p class="hint">Prefer JSON? POST the same form to <code>/api/report</code>.</p>
</body>
</html>
`))

// indexData feeds the form defaults from the base configuration.
type indexData struct {
	Timezone   string
	InProgress string
	Done       string
}

// renderIndex renders the upload page with the server's default settings.
func renderIndex(cfg *contract.Config) (string, error) {
	data := indexData{
		Timezone:   cfg.LocationID,
		InProgress: strings.Join(cfg.InProgressAliases.Values(), ","),
		Done:       strings.Join(cfg.DoneAliases.Values(), ","),
	}
	var sb strings.Builder
	if err := indexTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

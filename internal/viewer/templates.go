package viewer

// pagesHTML holds the viewer templates. Kept deliberately small: the viewer
// is a read-only window into the local history, not a dashboard.
const pagesHTML = `
{{define "runs"}}<!DOCTYPE html>
<html>
<head><title>fairctl - evaluation history</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.error { color: #b00; }
.success { color: #080; }
</style>
</head>
<body>
<h1>Evaluation history</h1>
{{if .Rows}}
<table>
<tr><th>When</th><th>Kind</th><th>Model</th><th>Threshold</th><th>Status</th><th></th></tr>
{{range .Rows}}
<tr>
<td>{{.CreatedAt}}</td>
<td>{{.Kind}}</td>
<td>{{.ModelFile}}</td>
<td>{{.Threshold}}</td>
<td class="{{.Status}}">{{.Status}}</td>
<td><a href="/runs/{{.ID}}">detail</a></td>
</tr>
{{end}}
</table>
{{else}}
<p>No evaluations recorded yet. Run <code>fairctl loan evaluate</code> or <code>fairctl face evaluate</code> first.</p>
{{end}}
</body>
</html>{{end}}

{{define "run"}}<!DOCTYPE html>
<html>
<head><title>fairctl - run {{.Run.ID}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
pre { background: #f5f5f5; padding: 1rem; overflow: auto; }
.error { color: #b00; }
.success { color: #080; }
</style>
</head>
<body>
<p><a href="/">&larr; history</a></p>
<h1>{{.Run.Kind}} evaluation</h1>
<p>
{{.Run.CreatedAt}} &middot; model <code>{{.Run.ModelFile}}</code> &middot;
threshold {{.Run.Threshold}} &middot;
<span class="{{.Run.Status}}">{{.Run.Status}}</span>
</p>
{{if .Message}}<p class="error">{{.Message}}</p>{{end}}
<h2>Metrics</h2>
<pre>{{.Metrics}}</pre>
</body>
</html>{{end}}
`

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

// pageTemplate is the entire UI: create form, note selector, view pane,
// edit form, search box. Everything posts back to the same page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Collaborative Note Taking</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
fieldset { margin-bottom: 1.5rem; border: 1px solid #ccc; }
input[type=text], textarea { width: 100%; box-sizing: border-box; margin-bottom: .5rem; }
textarea { min-height: 6rem; }
.flash { padding: .5rem 1rem; margin-bottom: 1rem; border-radius: 4px; }
.flash.ok { background: #e6f4ea; color: #1e4620; }
.flash.error { background: #fce8e6; color: #5f2120; }
.note-content { white-space: pre-wrap; background: #f7f7f7; padding: 1rem; }
.actions form { display: inline; }
</style>
</head>
<body>
<h1>Collaborative Note Taking</h1>

{{if .Message}}<div class="flash ok">{{.Message}}</div>{{end}}
{{if .Error}}<div class="flash error">{{.Error}}</div>{{end}}

<fieldset>
<legend>Create New Note</legend>
<form method="post" action="/notes">
<label>Note Title <input type="text" name="title"></label>
<label>Note Content <textarea name="content"></textarea></label>
<label>Collaborators (optional, comma-separated emails) <input type="text" name="collaborators"></label>
<button type="submit">Create Note</button>
</form>
</fieldset>

<fieldset>
<legend>Search Notes</legend>
<form method="get" action="/">
<input type="text" name="q" value="{{.Query}}" placeholder="full-text query">
<button type="submit">Search</button>
</form>
{{if .Query}}
<ul>
{{range .Results}}<li><a href="/?note={{.ID}}">{{if .Title}}{{.Title}}{{else}}(untitled){{end}}</a></li>
{{else}}<li>No results found.</li>
{{end}}
</ul>
{{end}}
</fieldset>

{{if .Notes}}
<form method="get" action="/">
<label>Select Note
<select name="note" onchange="this.form.submit()">
<option value=""></option>
{{$sel := .Selected}}
{{range .Notes}}<option value="{{.ID}}"{{if and $sel (eq $sel.ID .ID)}} selected{{end}}>{{if .Title}}{{.Title}}{{else}}(untitled){{end}}</option>
{{end}}
</select>
</label>
<noscript><button type="submit">View</button></noscript>
</form>
{{end}}

{{with .Selected}}
<h2>Note: {{.Title}}</h2>
<div class="note-content">{{.Content}}</div>
{{if .Collaborators}}<p>Collaborators: {{range $i, $c := .Collaborators}}{{if $i}}, {{end}}{{$c}}{{end}}</p>{{end}}

<fieldset>
<legend>Edit Note</legend>
<form method="post" action="/notes/{{.ID}}">
<label>Update Title <input type="text" name="title" value="{{.Title}}"></label>
<label>Update Content <textarea name="content">{{.Content}}</textarea></label>
<label>Update Collaborators <input type="text" name="collaborators" value="{{$.Collaborators}}"></label>
<button type="submit">Update Note</button>
</form>
</fieldset>

<div class="actions">
<a href="/notes/{{.ID}}/pdf">Download Note as PDF</a>
<form method="post" action="/notes/{{.ID}}/delete">
<button type="submit">Delete Note</button>
</form>
</div>
{{end}}

<p><a href="/notes/export?format=yaml">Export all (YAML)</a> | <a href="/notes/export?format=json">Export all (JSON)</a></p>
</body>
</html>
`

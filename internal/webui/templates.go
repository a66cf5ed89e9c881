package webui

import "github.com/gymwear/storeadmin/internal/console"

// template helpers for field rendering

func (f fieldView) IsSelect() bool { return f.Kind == console.Select }
func (f fieldView) IsBool() bool   { return f.Kind == console.Bool }
func (f fieldView) IsLines() bool  { return f.Kind == console.Lines }

// InputType maps a field kind onto the HTML input type.
func (f fieldView) InputType() string {
	switch f.Kind {
	case console.Email:
		return "email"
	case console.Number, console.Decimal:
		return "number"
	default:
		return "text"
	}
}

const pageTemplates = `
{{define "header"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>gymwear admin</title>
<style>
body{font-family:sans-serif;margin:0;background:#f5f5f5}
nav{background:#1f2937;color:#fff;padding:10px 16px;display:flex;gap:16px;align-items:center}
nav a{color:#d1d5db;text-decoration:none}
nav a:hover{color:#fff}
nav .who{margin-left:auto;color:#9ca3af}
main{padding:16px;max-width:1000px;margin:0 auto}
table{border-collapse:collapse;width:100%;background:#fff}
th,td{border:1px solid #e5e7eb;padding:6px 10px;text-align:left}
th a{text-decoration:none;color:#111}
.flash{padding:8px 12px;margin:8px 0;border-radius:4px}
.flash.error{background:#fee2e2}
.flash.success{background:#d1fae5}
.flash.info{background:#dbeafe}
.field-error{color:#ef4444;font-size:0.85em}
.form-card{background:#fff;padding:12px;margin:12px 0;border:1px solid #e5e7eb}
.dialog{background:#fff;padding:24px;margin:48px auto;max-width:420px;text-align:center;border:1px solid #e5e7eb}
.dialog.danger h2{color:#ef4444}
.dialog.warning h2{color:#f59e0b}
.dialog.info h2{color:#3b82f6}
.cards{display:flex;gap:12px;flex-wrap:wrap}
.card{background:#fff;border:1px solid #e5e7eb;padding:12px;min-width:140px}
</style>
</head>
<body>
<nav>
  <a href="/">Dashboard</a>
  <a href="/categories">Categories</a>
  <a href="/products">Products</a>
  <a href="/users">Users</a>
  <a href="/orders">Orders</a>
  <span class="who">{{.User.Name}} ({{.User.Role}})</span>
</nav>
<main>
{{range .Flashes}}<div class="flash {{.Level}}">{{.Message}}</div>{{end}}
{{end}}

{{define "footer"}}
</main>
</body>
</html>
{{end}}

{{define "screen"}}
{{template "header" .}}
<h1>{{.Title}}</h1>

{{if .Failed}}<div class="flash error">Could not load {{.Name}}</div>{{end}}

<form method="GET" action="/{{.Name}}">
  <input type="text" name="q" value="{{.Filter}}" placeholder="Filter {{.Name}}">
  <button type="submit">Filter</button>
  <a href="/{{.Name}}?form=new">New {{.Singular}}</a>
  <a href="/{{.Name}}/export.csv">Export CSV</a>
</form>

{{if .FormOpen}}
<div class="form-card">
  <h2>{{if .Editing}}Edit {{.Singular}} #{{.EditingID}}{{else}}New {{.Singular}}{{end}}</h2>
  {{if .FormError}}<div class="flash error">{{.FormError}}</div>{{end}}
  <form method="POST" action="/{{.Name}}">
    {{range .Fields}}
    <p>
      <label>{{.Label}}</label><br>
      {{if .IsSelect}}
      <select name="{{.Name}}">
        {{$f := .}}{{range .Options}}<option value="{{.}}" {{if eq . $f.Value}}selected{{end}}>{{.}}</option>{{end}}
      </select>
      {{else if .IsBool}}
      <input type="checkbox" name="{{.Name}}" {{if .Checked}}checked{{end}}>
      {{else if .IsLines}}
      <textarea name="{{.Name}}" rows="4" cols="50">{{.Value}}</textarea>
      {{else}}
      <input type="{{.InputType}}" name="{{.Name}}" value="{{.Value}}" step="any">
      {{end}}
      {{if and .Touched .Error}}<br><span class="field-error">{{.Error}}</span>{{end}}
    </p>
    {{end}}
    <button type="submit" {{if .Submitting}}disabled{{end}}>Save</button>
  </form>
  <form method="POST" action="/{{.Name}}/close"><button type="submit">Cancel</button></form>
</div>
{{end}}

<table>
  <tr>
    {{$v := .}}
    {{range .Columns}}
    <th><a href="/{{$v.Name}}?sort={{.Name}}&order={{if and (eq $v.SortCol .Name) $v.SortAsc}}desc{{else}}asc{{end}}">{{.Label}}</a></th>
    {{end}}
    <th></th>
  </tr>
  {{range .Rows}}
  <tr>
    {{range .Cells}}<td>{{.}}</td>{{end}}
    <td>
      {{if .HasID}}
      <a href="/{{$v.Name}}?form=edit&id={{.ID}}">Edit</a>
      <a href="/{{$v.Name}}/delete?id={{.ID}}">Delete</a>
      {{if $v.HasReceipts}}
      <a href="/{{$v.Name}}/{{.ID}}/receipt.pdf">PDF</a>
      <form method="POST" action="/{{$v.Name}}/{{.ID}}/email" style="display:inline"><button type="submit">Email</button></form>
      {{end}}
      {{end}}
    </td>
  </tr>
  {{end}}
</table>

<p>
  Page {{.Page}} of {{.Pages}}
  {{if gt .Page 1}}<a href="/{{.Name}}?page={{pageDec .Page}}">Prev</a>{{end}}
  {{if lt .Page .Pages}}<a href="/{{.Name}}?page={{pageInc .Page}}">Next</a>{{end}}
</p>
{{template "footer" .}}
{{end}}

{{define "confirm"}}
{{template "header" .}}
<div class="dialog {{.Prompt.Severity}}">
  <h2>{{.Prompt.Title}}</h2>
  <p>{{.Prompt.Message}}</p>
  <form method="POST" action="{{.Action}}">
    <input type="hidden" name="id" value="{{.ID}}">
    <button type="submit" name="decision" value="cancel">{{.CancelText}}</button>
    <button type="submit" name="decision" value="confirm">{{.ConfirmText}}</button>
  </form>
</div>
{{template "footer" .}}
{{end}}

{{define "dashboard"}}
{{template "header" .}}
<h1>Dashboard</h1>
{{if .Failed}}
<div class="flash error">Could not load dashboard stats</div>
{{else}}
<div class="cards">
  <div class="card"><h3>Categories</h3><p>{{.Stats.Categories}}</p></div>
  <div class="card"><h3>Products</h3><p>{{.Stats.Products}}</p></div>
  <div class="card"><h3>Users</h3><p>{{.Stats.Users}}</p></div>
  <div class="card"><h3>Orders</h3><p>{{.Stats.Orders}}</p></div>
  <div class="card"><h3>Total revenue</h3><p>{{printf "%.2f" .Stats.TotalRevenue}}</p></div>
  <div class="card"><h3>Average order</h3><p>{{printf "%.2f" .Stats.AverageOrder}}</p></div>
</div>
<h2>Recent products</h2>
<table>
  <tr><th>ID</th><th>Name</th><th>Price</th></tr>
  {{range .Stats.RecentProducts}}<tr><td>{{deref .ID}}</td><td>{{.Name}}</td><td>{{.BasePrice}}</td></tr>{{end}}
</table>
<h2>Recent orders</h2>
<table>
  <tr><th>ID</th><th>User</th><th>Status</th><th>Total</th></tr>
  {{range .Stats.RecentOrders}}<tr><td>{{deref .ID}}</td><td>{{.UserID}}</td><td>{{.Status}}</td><td>{{.GrandTotal}}</td></tr>{{end}}</table>
{{end}}
{{template "footer" .}}
{{end}}
`

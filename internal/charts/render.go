package charts

import (
	"fmt"
	"html/template"
	"io"
	"reflect"

	chartrender "github.com/go-echarts/go-echarts/v2/render"
	tpls "github.com/go-echarts/go-echarts/v2/templates"
)

// Figure is anything the fragment handler can write into the chart panel.
type Figure interface {
	Render(w io.Writer) error
}

// snippetTpl is the library's base template (chart div + init script),
// parsed once with the helper funcs that template expects.
var snippetTpl = template.Must(template.New("chart").
	Funcs(template.FuncMap{
		"safeJS": func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
		"isSet": func(name string, data interface{}) bool {
			v := reflect.ValueOf(data)
			if v.Kind() == reflect.Ptr {
				v = v.Elem()
			}
			if v.Kind() != reflect.Struct {
				return false
			}
			return v.FieldByName(name).IsValid()
		},
	}).
	Parse(tpls.BaseTpl))

// snippetRenderer renders only the chart div and its init script, without
// the surrounding HTML document. The dashboard page loads echarts once and
// swaps these snippets in as the dropdown changes.
type snippetRenderer struct {
	c      interface{}
	before []func()
}

// NewSnippetRenderer replaces a chart's default full-page renderer.
func NewSnippetRenderer(c interface{}, before ...func()) chartrender.Renderer {
	return &snippetRenderer{c: c, before: before}
}

func (r *snippetRenderer) Render(w io.Writer) error {
	for _, fn := range r.before {
		fn()
	}
	return snippetTpl.ExecuteTemplate(w, "base", r.c)
}

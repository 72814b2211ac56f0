// Package web chứa các HTML templates được embed vào binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// MediaURL là prefix public của object storage (GET /media/*key)
const MediaURL = "/media/"

var funcs = template.FuncMap{
	"media": func(key string) string {
		return MediaURL + key
	},
	"date": func(t time.Time) string {
		return t.Local().Format("02.01.2006 15:04")
	},
	"linebreaksbr": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"fieldError": func(errs map[string]string, field string) string {
		return errs[field]
	},
	"eqID": func(raw string, id int64) bool {
		return raw == strconv.FormatInt(id, 10)
	},
}

// Templates parse toàn bộ template set; mỗi trang là một {{define "<name>.html"}}
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

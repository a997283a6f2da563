// Package web 內嵌看板的 HTML 樣板
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	"formatTime": formatTime,
	"add":        func(a, b int) int { return a + b },
	"sub":        func(a, b int) int { return a - b },
}

// Templates 解析所有內嵌樣板，供 gin 的 SetHTMLTemplate 使用
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"miniboard/internal/models"
)

func TestTemplatesRenderIndex(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}

	data := map[string]interface{}{
		"title": "miniBoard",
		"login": &models.Login{ID: 1, Name: "alice"},
		"collection": []models.Message{
			{ID: 2, Message: "<b>newer</b>", User: models.User{Name: "bob"}, CreatedAt: time.Now()},
			{ID: 1, Message: "older", User: models.User{Name: "alice"}, CreatedAt: time.Now()},
		},
		"pagination": models.NewPagination(2, 10, 25),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index", data); err != nil {
		t.Fatalf("ExecuteTemplate returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"&lt;b&gt;newer&lt;/b&gt;", "bob", `href="/1"`, `href="/3"`, "2 / 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered index missing %q", want)
		}
	}
	if strings.Index(out, "newer") > strings.Index(out, "older") {
		t.Error("messages rendered out of order")
	}
}

func TestTemplatesDefined(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}
	for _, name := range []string{"index", "login", "add", "header", "footer"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %q not defined", name)
		}
	}
}

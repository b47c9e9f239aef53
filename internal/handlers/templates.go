package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"groqchat/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type setupView struct {
	Settings      models.Settings
	Models        []string
	Errors        map[string]string
	Saved         bool
	SetupRequired bool
}

type chatView struct {
	Settings models.Settings
	Messages []models.ChatMessage
	Error    string
}

func render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// renderTemplate executes a template into a buffer first so a template error
// never leaks a half-written page to the client.
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.log.Error("template error for %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		a.log.Error("error writing template response: %v", err)
	}
}

// writeJSON writes a JSON response with the given status code.
func (a *App) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.log.Error("error encoding JSON response: %v", err)
	}
}

// Package web holds the HTML views of the application.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/jwalitptl/clinic-records/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const displayDateLayout = "2006-01-02 15:04"

// Funcs are the helpers available to every view.
var Funcs = template.FuncMap{
	"formatDate":   formatDate,
	"formatAmount": formatAmount,
	"dateInput":    dateInput,
}

// Templates parses every embedded view into one set. Each view is a named
// template matching its file name, e.g. "patients.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// MustTemplates is like Templates but panics on error.
func MustTemplates() *template.Template {
	tmpl, err := Templates()
	if err != nil {
		panic(err)
	}
	return tmpl
}

// formatDate accepts a time.Time or *time.Time; nil and zero render empty.
func formatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(displayDateLayout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.UTC().Format(displayDateLayout)
	default:
		return ""
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// dateInput renders t in the layout accepted by the appointment form.
func dateInput(t time.Time) string {
	return t.UTC().Format(model.AppointmentDateLayout)
}

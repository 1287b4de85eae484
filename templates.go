package main

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/listing"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"title":     titleCase,
	"label":     label,
	"join":      strings.Join,
	"date":      displayDate,
	"techNames": techNames,
	"year":      func() int { return time.Now().Year() },
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// titleCase capitalizes each word and leaves the rest alone, so "SaaS"
// stays "SaaS".
func titleCase(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}

// label turns an enum value such as "technical-expertise" into
// "Technical Expertise".
func label(s string) string {
	return titleCase(strings.ReplaceAll(s, "-", " "))
}

// displayDate formats an ISO date for reading. Unparsable dates are shown
// as written.
func displayDate(s string) string {
	t := listing.ParseDate(s)
	if t.Equal(time.Unix(0, 0).UTC()) {
		return s
	}
	return t.Format("January 2, 2006")
}

func techNames(techs []content.Technology) string {
	names := make([]string, len(techs))
	for i, t := range techs {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}

type sortOption struct {
	Value listing.SortKey
	Label string
}

var postSorts = []sortOption{
	{listing.SortLatest, "Newest first"},
	{listing.SortOldest, "Oldest first"},
	{listing.SortReadTime, "Quickest read"},
}

var projectSorts = []sortOption{
	{listing.SortLatest, "Newest first"},
	{listing.SortOldest, "Oldest first"},
	{listing.SortImpact, "Biggest impact"},
}

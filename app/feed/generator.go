package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"time"

	"github.com/ewurbel/gematom/app/scanner"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders the model as an Atom 1.0 document. Entry ids and links are
// the base URL joined with the entry's root-relative path, so they stay
// identical across runs and aggregators recognize unchanged entries.
func (g *Generator) Run(model *Model) ([]byte, error) {
	base, err := url.Parse(model.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", model.BaseURL, err)
	}

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n")

	g.writeElement(&buf, "id", model.BaseURL, 2)
	g.writeElement(&buf, "title", model.Title, 2)
	g.writeElement(&buf, "subtitle", model.Subtitle, 2)
	g.writeElement(&buf, "updated", model.Updated.Format(time.RFC3339), 2)
	buf.WriteString(fmt.Sprintf("  <generator version=\"%s\">gematom</generator>\n",
		html.EscapeString(model.Version)))

	if model.Author != "" || model.Email != "" {
		buf.WriteString("  <author>\n")
		g.writeElement(&buf, "name", model.Author, 4)
		g.writeElement(&buf, "email", model.Email, 4)
		buf.WriteString("  </author>\n")
	}

	buf.WriteString(fmt.Sprintf("  <link href=\"%s\" rel=\"self\" type=\"application/atom+xml\"/>\n",
		html.EscapeString(model.SelfURL)))
	buf.WriteString(fmt.Sprintf("  <link href=\"%s\" rel=\"alternate\"/>\n",
		html.EscapeString(model.BaseURL)))

	for i := range model.Entries {
		g.writeEntry(&buf, base, &model.Entries[i])
	}

	buf.WriteString("</feed>\n")

	return buf.Bytes(), nil
}

func (g *Generator) writeEntry(buf *bytes.Buffer, base *url.URL, entry *scanner.Entry) {
	entryURL := base.JoinPath(entry.Path).String()

	buf.WriteString("  <entry>\n")
	g.writeElement(buf, "id", entryURL, 4)
	g.writeElement(buf, "title", entry.Title, 4)
	g.writeElement(buf, "updated", entry.Published.Format(time.RFC3339), 4)
	buf.WriteString(fmt.Sprintf("    <link href=\"%s\" rel=\"alternate\"/>\n",
		html.EscapeString(entryURL)))

	if entry.Open != nil {
		content, err := entry.Open()
		if err != nil {
			// The entry stays in the feed; only its content is lost.
			slog.Warn("could not read article content", "path", entry.Path, "error", err)
		} else {
			buf.WriteString(`    <content type="text/gemini">`)
			xml.EscapeText(buf, content)
			buf.WriteString("</content>\n")
		}
	}

	buf.WriteString("  </entry>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

package ticket

import (
	"bytes"
	"fmt"
	"html/template"

	"driwich/internal/domain"
)

// Document is a complete HTML page ready for a print surface.
type Document struct {
	Title string
	HTML  []byte
}

var documentTemplate = template.Must(template.New("ticket").Parse(`<html>
  <head>
    <title>{{.Title}}</title>
    <style>
      @page {
        margin: 0;
        size: 80mm auto;
      }
      body {
        margin: 0;
        padding: 8px;
        font-family: 'Courier New', monospace;
        font-size: 12px;
        line-height: 1.2;
        white-space: pre;
        width: 80mm;
      }
      .ticket {
        width: 100%;
      }
    </style>
  </head>
  <body>
    <div class="ticket">
      <pre>{{.Text}}</pre>
    </div>
  </body>
</html>
`))

// NewDocument wraps formatted ticket text in the print page.
func NewDocument(order domain.Order, text string) (Document, error) {
	title := fmt.Sprintf("Print Order #%d", order.OrderNumber)

	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, struct {
		Title string
		Text  string
	}{Title: title, Text: text})
	if err != nil {
		return Document{}, fmt.Errorf("rendering ticket document: %w", err)
	}

	return Document{Title: title, HTML: buf.Bytes()}, nil
}

package labels

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"
)

// maxStyleBytes bounds how much CSS is carried into each standalone label
const maxStyleBytes = 64 * 1024

var stylePattern = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)

var standaloneTemplate = template.Must(template.New("label").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
{{- if .Style}}
<style>{{.Style}}</style>
{{- end}}
</head>
<body>
{{.Body}}
</body>
</html>
`))

type standalonePage struct {
	Style string
	Body  string
}

// ExtractStyle returns the contents of the first <style> element in document
func ExtractStyle(document string) (string, bool) {
	m := stylePattern.FindStringSubmatch(document)
	if m == nil {
		return "", false
	}
	css := strings.TrimSpace(m[1])
	if css == "" || len(css) > maxStyleBytes {
		return "", false
	}
	return css, true
}

// Wrap embeds a single label fragment into a minimal standalone page, carrying
// over the styling of the document it came from. The fragment's top offsets
// are re-anchored first. If the page cannot be rendered the raw fragment is
// returned.
func Wrap(fragment, document string) string {
	out, err := tryWrap(fragment, document)
	if err != nil {
		return fragment
	}
	return out
}

func tryWrap(fragment, document string) (string, error) {
	style, _ := ExtractStyle(document)
	var buf bytes.Buffer
	err := standaloneTemplate.Execute(&buf, standalonePage{
		Style: style,
		Body:  NormalizePositioning(fragment),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

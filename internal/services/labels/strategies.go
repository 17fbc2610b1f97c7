package labels

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// codePattern matches a Code 39 human-readable payload such as "*ABC123*"
var codePattern = regexp.MustCompile(`\*[A-Z0-9]+\*`)

// CodeFromMarker returns the inner text of the first element whose class list
// contains class. Blank text counts as not found.
func CodeFromMarker(fragment, class string) (string, bool) {
	if class == "" {
		return "", false
	}
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", false
	}

	node := findByClass(doc, class)
	if node == nil {
		return "", false
	}
	text := strings.TrimSpace(textContent(node))
	if text == "" {
		return "", false
	}
	return text, true
}

// CodeFromPattern returns the first "*CODE*" run of uppercase letters and
// digits, delimiters included
func CodeFromPattern(fragment string) (string, bool) {
	m := codePattern.FindString(fragment)
	if m == "" {
		return "", false
	}
	return m, true
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			if token == class {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

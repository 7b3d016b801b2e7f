package report

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"

	"github.com/alexanderramin/propwiz/internal/domain"
)

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// RenderMarkdown converts the print view to GitHub-flavoured Markdown, so
// the budget table survives as a pipe table.
func RenderMarkdown(p *domain.Proposal, opts Options) (string, error) {
	page, err := RenderHTML(p, opts)
	if err != nil {
		return "", err
	}
	body, err := bodyHTML(page)
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	out, err := converter.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting print view to markdown: %w", err)
	}
	return cleanMarkdown(out), nil
}

// bodyHTML drops the head (title and stylesheet) and returns the body.
func bodyHTML(page string) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parsing print view: %w", err)
	}
	body := findElement(doc, "body")
	if body == nil {
		return page, nil
	}
	var b strings.Builder
	if err := html.Render(&b, body); err != nil {
		return "", fmt.Errorf("rendering print view body: %w", err)
	}
	return b.String(), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func cleanMarkdown(s string) string {
	s = excessiveLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s) + "\n"
}

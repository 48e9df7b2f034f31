package content

import (
	"bytes"
	"strings"

	"scamurl/features/pagefetch"

	"golang.org/x/net/html"
)

// PageInfo is the shallow inspection of a fetched page. Observed=false
// means the page was unavailable or unparsable; absence of evidence is not
// evidence of absence, so nothing here contributes to the score in that
// case.
type PageInfo struct {
	Observed         bool   `json:"observed"`
	HasPasswordField bool   `json:"has_password_field"`
	FormCount        int    `json:"form_count"`
	Title            string `json:"title,omitempty"`
}

// Inspect walks the fetched HTML and records whether any <input> carries a
// password type, plus informational page metadata.
func Inspect(res pagefetch.Result) PageInfo {
	info := PageInfo{}
	if !res.Available {
		return info
	}

	doc, err := html.Parse(bytes.NewReader(res.Body))
	if err != nil {
		return info
	}

	info.Observed = true
	walk(doc, &info)
	return info
}

func walk(n *html.Node, info *PageInfo) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "input":
			if attrValue(n, "type") == "password" {
				info.HasPasswordField = true
			}
		case "form":
			info.FormCount++
		case "title":
			if info.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				info.Title = strings.TrimSpace(n.FirstChild.Data)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, info)
	}
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return strings.ToLower(strings.TrimSpace(attr.Val))
		}
	}
	return ""
}

package app

import (
	"encoding/json"
	"fmt"
)

const schemaContext = "https://schema.org"

// Graph is a schema.org JSON-LD document with an @graph array.
type Graph struct {
	Context string `json:"@context"`
	Nodes   []any  `json:"@graph"`
}

// WebSiteNode describes the site and its search action.
type WebSiteNode struct {
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	Description     string       `json:"description"`
	PotentialAction SearchAction `json:"potentialAction"`
}

// SearchAction advertises the site search URL template.
type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// OrganizationNode describes the publisher.
type OrganizationNode struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo string `json:"logo"`
}

// FAQPageNode lists the page's questions.
type FAQPageNode struct {
	Type       string         `json:"@type"`
	MainEntity []QuestionNode `json:"mainEntity"`
}

// QuestionNode is one FAQ entry.
type QuestionNode struct {
	Type           string     `json:"@type"`
	Name           string     `json:"name"`
	AcceptedAnswer AnswerNode `json:"acceptedAnswer"`
}

// AnswerNode is the accepted answer to a QuestionNode.
type AnswerNode struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// BuildStructuredData assembles the WebSite, Organization and FAQPage graph.
func BuildStructuredData(site Site, faqs []FAQ) Graph {
	questions := make([]QuestionNode, 0, len(faqs))
	for _, f := range faqs {
		questions = append(questions, QuestionNode{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: AnswerNode{Type: "Answer", Text: f.Answer},
		})
	}

	return Graph{
		Context: schemaContext,
		Nodes: []any{
			WebSiteNode{
				Type:        "WebSite",
				Name:        site.Name,
				URL:         site.URL,
				Description: site.LDDescription,
				PotentialAction: SearchAction{
					Type:       "SearchAction",
					Target:     fmt.Sprintf("%s?q={%s}", site.URL, site.SearchParameter),
					QueryInput: "required name=" + site.SearchParameter,
				},
			},
			OrganizationNode{
				Type: "Organization",
				Name: site.Name,
				URL:  site.URL,
				Logo: site.Logo(),
			},
			FAQPageNode{
				Type:       "FAQPage",
				MainEntity: questions,
			},
		},
	}
}

// JSON serializes the graph. HTML-significant characters are escaped so the
// result can sit inside a script element.
func (g Graph) JSON() ([]byte, error) {
	buf, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("marshal structured data: %w", err)
	}
	return buf, nil
}

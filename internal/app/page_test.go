package app

import (
	"bytes"
	"html"
	"regexp"
	"strings"
	"testing"
	"time"
)

var (
	ldScript   = regexp.MustCompile(`(?s)<script type="application/ld\+json">(.*?)</script>`)
	faqSummary = regexp.MustCompile(`(?s)<summary>(.*?)</summary>`)
	faqAnswer  = regexp.MustCompile(`(?s)<div class="answer">(.*?)</div>`)
)

func renderTestPage(t *testing.T, result LoaderResult, lang string) string {
	t.Helper()
	page, err := NewPage(TerraFinance, result, lang)
	if err != nil {
		t.Fatalf("NewPage unexpected error: %v", err)
	}
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		t.Fatalf("Render unexpected error: %v", err)
	}
	return buf.String()
}

func TestNewPageFooterFallback(t *testing.T) {
	page, err := NewPage(TerraFinance, LoaderResult{Now: time.Now()}, "")
	if err != nil {
		t.Fatalf("NewPage unexpected error: %v", err)
	}
	if page.FooterText != "Clear personal finance education" {
		t.Fatalf("FooterText = %q", page.FooterText)
	}

	page, err = NewPage(TerraFinance, LoaderResult{Message: "Hello from the host", HasMessage: true, Now: time.Now()}, "")
	if err != nil {
		t.Fatalf("NewPage unexpected error: %v", err)
	}
	if page.FooterText != "Hello from the host" {
		t.Fatalf("FooterText = %q", page.FooterText)
	}
}

func TestRenderCardCounts(t *testing.T) {
	out := renderTestPage(t, LoaderResult{Now: time.Now()}, "")
	counts := map[string]int{
		`class="pillar-card"`:   3,
		`class="topic-card"`:    6,
		`class="lab-card"`:      2,
		`class="tool-card"`:     3,
		`class="audience-card"`: 3,
		`class="faq-item"`:      5,
	}
	for needle, want := range counts {
		if got := strings.Count(out, needle); got != want {
			t.Fatalf("count(%s) = %d, want %d", needle, got, want)
		}
	}
}

func TestRenderFAQMatchesStructuredData(t *testing.T) {
	out := renderTestPage(t, LoaderResult{Now: time.Now()}, "")

	m := ldScript.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("rendered page has no JSON-LD script")
	}
	_, nodes := decodeGraph(t, []byte(m[1]))
	entities := nodes[2].MainEntity

	questions := faqSummary.FindAllStringSubmatch(out, -1)
	answers := faqAnswer.FindAllStringSubmatch(out, -1)
	if len(questions) != len(entities) || len(answers) != len(entities) {
		t.Fatalf("accordion has %d/%d items, structured data has %d", len(questions), len(answers), len(entities))
	}
	for i, e := range entities {
		if got := html.UnescapeString(questions[i][1]); got != e.Name {
			t.Fatalf("accordion question %d = %q, structured data = %q", i, got, e.Name)
		}
		if got := html.UnescapeString(answers[i][1]); got != e.AcceptedAnswer.Text {
			t.Fatalf("accordion answer %d = %q, structured data = %q", i, got, e.AcceptedAnswer.Text)
		}
	}
}

func TestRenderHeadMetadata(t *testing.T) {
	out := renderTestPage(t, LoaderResult{Now: time.Now()}, "")
	escapedTitle := html.EscapeString(TerraFinance.Title)
	escapedDesc := html.EscapeString(TerraFinance.Description)
	needles := []string{
		"<title>" + escapedTitle + "</title>",
		`<meta name="description" content="` + escapedDesc + `">`,
		`<meta property="og:title" content="` + escapedTitle + `">`,
		`<meta property="og:description" content="` + escapedDesc + `">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="theme-color" content="#0B1B2B">`,
		`<link rel="canonical" href="https://terrafinanceedu.com/">`,
	}
	for _, needle := range needles {
		if !strings.Contains(out, needle) {
			t.Fatalf("rendered head missing %s", needle)
		}
	}
}

func TestRenderFooterAndDates(t *testing.T) {
	now := time.Date(2031, time.January, 9, 8, 0, 0, 0, time.UTC)

	out := renderTestPage(t, LoaderResult{Now: now}, "en-US")
	if !strings.Contains(out, "<span>Clear personal finance education</span>") {
		t.Fatalf("footer fallback missing")
	}
	if !strings.Contains(out, "© 2031 Terra Finance Edu") {
		t.Fatalf("copyright year missing")
	}
	if !strings.Contains(out, `Last updated <time class="last-updated">1/9/2031</time>.`) {
		t.Fatalf("last updated banner missing or has a time component")
	}

	out = renderTestPage(t, LoaderResult{Message: "Fees <waived> this month", HasMessage: true, Now: now}, "en-GB")
	if !strings.Contains(out, `<span aria-live="polite">Fees &lt;waived&gt; this month</span>`) {
		t.Fatalf("footer message not rendered verbatim")
	}
	if strings.Contains(out, "Clear personal finance education") {
		t.Fatalf("fallback text rendered alongside a message")
	}
	if !strings.Contains(out, `<time class="last-updated">09/01/2031</time>`) {
		t.Fatalf("en-GB date missing")
	}
}

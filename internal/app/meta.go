package app

// MetaTag is a single head entry. Exactly one of Title, Name or Property is set.
type MetaTag struct {
	Title    string
	Name     string
	Property string
	Content  string
}

// IsTitle reports whether the tag renders as the document title.
func (m MetaTag) IsTitle() bool {
	return m.Name == "" && m.Property == ""
}

// BuildMeta returns the head metadata for the landing page.
func BuildMeta(site Site) []MetaTag {
	return []MetaTag{
		{Title: site.Title},
		{Name: "description", Content: site.Description},
		{Name: "keywords", Content: site.Keywords},
		{Name: "robots", Content: "index, follow, max-image-preview:large"},
		{Property: "og:title", Content: site.Title},
		{Property: "og:description", Content: site.Description},
		{Property: "og:type", Content: "website"},
		{Property: "og:url", Content: site.URL},
		{Property: "og:image", Content: site.OGImage()},
		{Name: "twitter:card", Content: "summary_large_image"},
		{Name: "twitter:title", Content: site.Title},
		{Name: "twitter:description", Content: site.Description},
		// dark navy
		{Name: "theme-color", Content: site.ThemeColor},
	}
}

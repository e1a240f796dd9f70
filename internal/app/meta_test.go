package app

import "testing"

func metaIndex(tags []MetaTag) map[string]string {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		switch {
		case tag.IsTitle():
			out["title"] = tag.Title
		case tag.Property != "":
			out[tag.Property] = tag.Content
		default:
			out[tag.Name] = tag.Content
		}
	}
	return out
}

func TestBuildMeta(t *testing.T) {
	tags := BuildMeta(TerraFinance)
	if len(tags) != 13 {
		t.Fatalf("BuildMeta returned %d tags, want 13", len(tags))
	}
	if !tags[0].IsTitle() {
		t.Fatalf("first tag should be the title, got %+v", tags[0])
	}

	got := metaIndex(tags)
	want := map[string]string{
		"title":               TerraFinance.Title,
		"description":         TerraFinance.Description,
		"keywords":            TerraFinance.Keywords,
		"robots":              "index, follow, max-image-preview:large",
		"og:title":            TerraFinance.Title,
		"og:description":      TerraFinance.Description,
		"og:type":             "website",
		"og:url":              "https://terrafinanceedu.com/",
		"og:image":            "https://terrafinanceedu.com/og-image.jpg",
		"twitter:card":        "summary_large_image",
		"twitter:title":       TerraFinance.Title,
		"twitter:description": TerraFinance.Description,
		"theme-color":         "#0B1B2B",
	}
	for key, value := range want {
		if got[key] != value {
			t.Fatalf("meta %s = %q, want %q", key, got[key], value)
		}
	}
}

func TestBuildMetaTitleAndDescriptionPairs(t *testing.T) {
	got := metaIndex(BuildMeta(TerraFinance))
	if got["title"] != got["og:title"] || got["title"] != got["twitter:title"] {
		t.Fatalf("title mismatch: %q / %q / %q", got["title"], got["og:title"], got["twitter:title"])
	}
	if got["description"] != got["og:description"] || got["description"] != got["twitter:description"] {
		t.Fatalf("description mismatch: %q / %q / %q", got["description"], got["og:description"], got["twitter:description"])
	}
}

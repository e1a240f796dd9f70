package app

import (
	"time"

	"golang.org/x/text/language"
)

// date-only layouts per supported locale, mirroring common toLocaleDateString output
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.German, "2.1.2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(dateLayouts))
	for _, l := range dateLayouts {
		tags = append(tags, l.tag)
	}
	return language.NewMatcher(tags)
}()

// DateLayout picks the date layout for an Accept-Language header value.
// Unknown or empty input falls back to US English.
func DateLayout(acceptLanguage string) string {
	if acceptLanguage == "" {
		return dateLayouts[0].layout
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return dateLayouts[0].layout
	}
	_, idx, confidence := dateMatcher.Match(tags...)
	if confidence == language.No {
		return dateLayouts[0].layout
	}
	return dateLayouts[idx].layout
}

// FormatDate renders t as a date without a time component.
func FormatDate(t time.Time, acceptLanguage string) string {
	return t.Format(DateLayout(acceptLanguage))
}

package config

import "coursekit/internal/page"

// PageOptions converts the page settings into prettify options. dedupe forces
// the suffix policy for duplicate section ids.
func (c Config) PageOptions(dedupe bool) page.Options {
	duplicates := page.DuplicatePolicy(c.Page.DuplicateIDs)
	if dedupe {
		duplicates = page.DuplicateSuffix
	}
	return page.Options{
		HeadingShift: c.Page.HeadingShift,
		StripTags:    append([]string(nil), c.Page.StripTags...),
		TopLevel:     c.Page.TopLevel,
		Delimiter:    c.Page.HeadingDelimiter,
		Duplicates:   duplicates,
		Style: page.TableStyle{
			HeaderColor:         c.Page.HeaderColor,
			HeaderBackground:    c.Page.HeaderBackground,
			SubheaderColor:      c.Page.SubheaderColor,
			SubheaderBackground: c.Page.SubheaderBackground,
		},
	}
}

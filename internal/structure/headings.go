package structure

import (
	"regexp"
	"strings"
)

// headingPattern matches a whole second-level heading line. The character
// after "##" must be a space or tab, so "###" never matches.
var headingPattern = regexp.MustCompile(`(?m)^##[ \t]+(.+)$`)

// Section is a second-level heading and the text that follows it up to the
// next heading or the end of the document.
type Section struct {
	Title string
	Body  string
}

// ExtractHeadings returns the trimmed titles of all second-level headings in
// order of appearance.
func ExtractHeadings(text string) []string {
	matches := headingPattern.FindAllStringSubmatch(text, -1)
	titles := make([]string, 0, len(matches))
	for _, m := range matches {
		titles = append(titles, strings.TrimSpace(m[1]))
	}
	return titles
}

// SplitSections splits text on heading lines. Text before the first heading
// belongs to no section and is dropped.
func SplitSections(text string) []Section {
	locs := headingPattern.FindAllStringSubmatchIndex(text, -1)
	sections := make([]Section, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sections = append(sections, Section{
			Title: strings.TrimSpace(text[loc[2]:loc[3]]),
			Body:  text[loc[1]:end],
		})
	}
	return sections
}

package search

import (
	"fmt"
	"strings"
)

// maxNewsResults caps how many news entries feed the prompt; older entries
// rarely add signal and inflate token usage.
const maxNewsResults = 3

// BuildContext flattens a search result into the textual digest used to
// ground the answer synthesis prompt. Sections are rendered in a fixed
// priority order: news first, then the answer box, then organic results.
// A result with none of the sections yields an empty string, which is a
// valid outcome the synthesis step must tolerate.
func BuildContext(result *Result) string {
	if result == nil {
		return ""
	}

	sections := make([]string, 0, 3)

	if len(result.NewsResults) > 0 {
		news := result.NewsResults
		if len(news) > maxNewsResults {
			news = news[:maxNewsResults]
		}
		entries := make([]string, 0, len(news))
		for _, item := range news {
			date := item.Date
			if date == "" {
				date = "N/A"
			}
			entries = append(entries, fmt.Sprintf("News: %s\nSource: %s\nDate: %s\nLink: %s",
				item.Title, item.Source, date, item.Link))
		}
		sections = append(sections, strings.Join(entries, "\n\n"))
	}

	if result.AnswerBox != nil {
		sections = append(sections, "Answer: "+answerBoxText(result.AnswerBox))
	}

	if len(result.OrganicResults) > 0 {
		entries := make([]string, 0, len(result.OrganicResults))
		for _, item := range result.OrganicResults {
			entries = append(entries, fmt.Sprintf("Title: %s\nSnippet: %s\nLink: %s",
				item.Title, item.Snippet, item.Link))
		}
		sections = append(sections, strings.Join(entries, "\n\n"))
	}

	return strings.Join(sections, "\n\n")
}

// answerBoxText prefers the snippet, then the short answer, then the raw
// provider payload as a last resort.
func answerBoxText(box *AnswerBox) string {
	if box.Snippet != "" {
		return box.Snippet
	}
	if box.Answer != "" {
		return box.Answer
	}
	return box.RawJSON()
}

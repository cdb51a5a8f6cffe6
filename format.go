package hashscraper

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportSeparator separates per-page sections of a batch report.
const ReportSeparator = "\n\n---\n\n"

// FormatPage formats a single successful result as a Markdown document
// headed by the page title and resolved source URL.
func FormatPage(result *PageResult) string {
	source := result.ResolvedURL
	if source == "" {
		source = result.URL
	}
	return strings.Join([]string{
		"# " + titleOrDefault(result.Title),
		"",
		"> Source: " + source,
		"",
		result.Content,
	}, "\n")
}

// FormatBatchReport formats a batch report as a summary heading followed by
// one numbered section per requested URL.
func FormatBatchReport(report *BatchReport) string {
	sections := make([]string, 0, report.Total())
	for i, result := range report.Results {
		sections = append(sections, formatSection(i+1, result))
	}

	var b strings.Builder
	b.WriteString("# Scrape Results (")
	b.WriteString(strconv.Itoa(report.SuccessCount()))
	b.WriteString("/")
	b.WriteString(strconv.Itoa(report.Total()))
	b.WriteString(" successful)\n\n")
	b.WriteString(strings.Join(sections, ReportSeparator))
	return b.String()
}

// FormatUsage formats account usage as a Markdown table.
func FormatUsage(u *Usage) string {
	p := message.NewPrinter(language.English)
	return strings.Join([]string{
		"## API Usage",
		"",
		"| Item | Value |",
		"|------|-------|",
		"| Plan | " + u.Plan + " |",
		p.Sprintf("| Total Credits | %d |", u.CreditsTotal),
		p.Sprintf("| Used Credits | %d |", u.CreditsUsed),
		p.Sprintf("| Remaining Credits | %d |", u.CreditsRemaining),
		"| Reset Date | " + u.ResetDate + " |",
	}, "\n")
}

// FormatError formats an error message for display to a caller.
func FormatError(err error) string {
	msg := ErrorMessage(err)
	if msg == "" {
		msg = "Unknown error"
	}
	return "Error: " + msg
}

func formatSection(index int, result *PageResult) string {
	heading := "Error"
	body := "Error: " + result.Error
	if result.Success {
		heading = titleOrDefault(result.Title)
		body = result.Content
	}
	return strings.Join([]string{
		"## " + strconv.Itoa(index) + ". " + heading,
		"",
		"> Source: " + result.URL,
		"",
		body,
	}, "\n")
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return UntitledPage
	}
	return title
}

package page

import (
	"context"
	"strings"
	"testing"

	"coursekit/internal/domain"
)

// TestParseHeadingSplitsOnFirstDelimiter verifies list value and title derivation.
func TestParseHeadingSplitsOnFirstDelimiter(t *testing.T) {
	listValue, title := ParseHeading("A. Biography. Early", ". ")
	if listValue != "A" || title != "Biography. Early" {
		t.Fatalf("unexpected split %q %q", listValue, title)
	}
	listValue, title = ParseHeading("Overview", ". ")
	if listValue != "Overview" || title != "Overview" {
		t.Fatalf("expected whole text for both, got %q %q", listValue, title)
	}
	if id := SectionID("Unit  1\tPart"); id != "tab-Unit-1-Part" {
		t.Fatalf("unexpected id %q", id)
	}
}

// TestAssembleKeepsHeadingOrderAndCoverage verifies m headings give m sections in order.
func TestAssembleKeepsHeadingOrderAndCoverage(t *testing.T) {
	lines := []string{
		"<p>intro</p>",
		"<h2>A. One</h2>",
		"<p>a</p>",
		"<h3>nested</h3>",
		"<h2 id=\"b\">B. <strong>Two</strong></h2>",
		"<h2>C. Three</h2>",
		"<p>last</p>",
	}
	layout, err := Assemble(lines, AssembleOptions{Level: 2, Delimiter: ". "})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(layout.Preamble) != 1 || layout.Preamble[0] != "<p>intro</p>" {
		t.Fatalf("unexpected preamble %q", layout.Preamble)
	}
	if len(layout.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(layout.Sections))
	}
	wantIDs := []string{"tab-A", "tab-B", "tab-C"}
	wantTitles := []string{"One", "Two", "Three"}
	wantLens := []int{3, 1, 2}
	for i, section := range layout.Sections {
		if section.ID != wantIDs[i] || section.Title != wantTitles[i] || len(section.Lines) != wantLens[i] {
			t.Fatalf("section %d: unexpected %+v", i, section)
		}
	}
	if last := layout.Sections[2].Lines; last[len(last)-1] != "<p>last</p>" {
		t.Fatalf("last section must run to the end of the document, got %q", last)
	}
}

// TestAssembleDuplicateIdentifiers verifies the error and suffix policies.
func TestAssembleDuplicateIdentifiers(t *testing.T) {
	lines := []string{"<h2>A. One</h2>", "<h2>A. Again</h2>", "<h2>A-2. Taken</h2>", "<h2>A. Third</h2>"}

	_, err := Assemble(lines, AssembleOptions{Level: 2, Delimiter: ". "})
	if !domain.HasCode(err, domain.ErrDuplicateSectionIdentifier) {
		t.Fatalf("expected duplicate identifier error, got %v", err)
	}

	layout, err := Assemble(lines, AssembleOptions{Level: 2, Delimiter: ". ", Duplicates: DuplicateSuffix})
	if err != nil {
		t.Fatalf("assemble with suffix: %v", err)
	}
	var ids []string
	for _, section := range layout.Sections {
		ids = append(ids, section.ID)
	}
	if got := strings.Join(ids, ","); got != "tab-A,tab-A-2,tab-A-2-2,tab-A-3" {
		t.Fatalf("unexpected ids %q", got)
	}
}

// TestAssembleRejectsUnclosedHeading verifies headings pair like other tags.
func TestAssembleRejectsUnclosedHeading(t *testing.T) {
	lines := []string{"<h2>A. Intro", "<p>x</p>", "<h2>B. Next</h2>"}
	_, err := Assemble(lines, AssembleOptions{Level: 2, Delimiter: ". "})
	if !domain.HasCode(err, domain.ErrMalformedTagStructure) {
		t.Fatalf("expected malformed tag error, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected error to name line 1, got %v", err)
	}
}

// TestAssembleReadsHeadingAcrossLines verifies a wrapped heading still starts one section.
func TestAssembleReadsHeadingAcrossLines(t *testing.T) {
	lines := []string{"<p>lead</p>", "<h2 class=\"x\">A. Long", "title</h2>", "<p>body</p>"}
	layout, err := Assemble(lines, AssembleOptions{Level: 2, Delimiter: ". "})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(layout.Sections) != 1 || len(layout.Preamble) != 1 {
		t.Fatalf("unexpected layout %+v", layout)
	}
	section := layout.Sections[0]
	if section.ID != "tab-A" || section.Title != "Long title" || len(section.Lines) != 3 {
		t.Fatalf("unexpected section %+v", section)
	}
}

// TestRenderWithoutSectionsKeepsDocument verifies documents without headings pass through.
func TestRenderWithoutSectionsKeepsDocument(t *testing.T) {
	layout, err := Assemble([]string{"<p>only</p>"}, AssembleOptions{Level: 2})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	out, err := Render(context.Background(), layout)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<p>only</p>\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestPrettifyProducesOneTabPerHeading runs the whole pipeline on a small export.
func TestPrettifyProducesOneTabPerHeading(t *testing.T) {
	input := strings.Join([]string{
		"<p>Intro</p>",
		"<h1>A. Biography</h1>",
		`<p><span style="font-weight:700">Born</span> 1900</p>`,
		"<h2>Early life</h2>",
		"<h1>B. Research &amp; Work</h1>",
		"<table>",
		"<tr>",
		"<td>Col</td>",
		"</tr>",
		"</table>",
		"<h1>C. Links</h1>",
		"<p>end</p>",
	}, "\n") + "\n"

	result, err := Prettify(context.Background(), input, FixedHeader(true), DefaultOptions())
	if err != nil {
		t.Fatalf("prettify: %v", err)
	}
	out := result.Output
	if result.Sections != 3 || result.Tables != 1 {
		t.Fatalf("unexpected counts %+v", result)
	}
	if !strings.HasPrefix(out, "<p>Intro</p>\n<div class=\"enhanceable_content tabs\">\n") {
		t.Fatalf("expected preamble ahead of the tab container:\n%s", out)
	}
	if strings.Count(out, "<li>") != 3 || strings.Count(out, `<div id="tab-`) != 3 {
		t.Fatalf("expected 3 tabs and 3 blocks:\n%s", out)
	}
	for _, fragment := range []string{
		`<li><a href="#tab-B">Research &amp; Work</a></li>`,
		"<p>Born 1900</p>",
		"<h3>Early life</h3>",
		wantHeader + "Col</th>",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, out)
		}
	}
	order := []string{`href="#tab-A"`, `href="#tab-B"`, `href="#tab-C"`, `id="tab-A"`, `id="tab-B"`, `id="tab-C"`}
	last := -1
	for _, marker := range order {
		at := strings.Index(out, marker)
		if at <= last {
			t.Fatalf("expected %s after previous marker:\n%s", marker, out)
		}
		last = at
	}
	if !strings.HasSuffix(out, "  </div>\n</div>\n") {
		t.Fatalf("expected closed tab container:\n%s", out)
	}
}

// TestPrettifyRejectsMalformedTables surfaces structural errors.
func TestPrettifyRejectsMalformedTables(t *testing.T) {
	_, err := Prettify(context.Background(), "<h1>A. x</h1>\n<table>\n<tr>\n</table>\n", FixedHeader(false), DefaultOptions())
	if !domain.HasCode(err, domain.ErrMalformedTagStructure) {
		t.Fatalf("expected malformed tag error, got %v", err)
	}
}

// TestPrettifyRejectsUnclosedHeading surfaces unclosed headings from the pipeline.
func TestPrettifyRejectsUnclosedHeading(t *testing.T) {
	_, err := Prettify(context.Background(), "<h1>A. Intro\n<p>text</p>\n", FixedHeader(false), DefaultOptions())
	if !domain.HasCode(err, domain.ErrMalformedTagStructure) {
		t.Fatalf("expected malformed tag error, got %v", err)
	}
}

// TestOutputPathReplacesExtension verifies output naming.
func TestOutputPathReplacesExtension(t *testing.T) {
	if got := OutputPath("/tmp/notes.v2/page.html", "_prettified.txt"); got != "/tmp/notes.v2/page_prettified.txt" {
		t.Fatalf("unexpected output path %q", got)
	}
	if got := OutputPath("page", "_prettified.txt"); got != "page_prettified.txt" {
		t.Fatalf("unexpected output path %q", got)
	}
}

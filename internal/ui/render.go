package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mochizou/placenews/internal/models"
)

const fallbackWidth = 100

// swapped in tests
var getSize = term.GetSize

// terminalWidth reports the usable column count, with a fallback for
// pipes and redirects.
func terminalWidth() int {
	w, _, err := getSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// Header renders the banner line above the results.
func Header(place string, count int) string {
	return HeaderStyle.Render(fmt.Sprintf("📰 %s の関連ニュース（%d件）", place, count))
}

// Cards renders the articles as a stacked list, one block per article.
func Cards(articles []models.Article) string {
	var b strings.Builder

	for i, a := range articles {
		b.WriteString(fmt.Sprintf("%s %s\n",
			DimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			TitleStyle.Render(a.Title)))

		meta := make([]string, 0, 2)
		if a.Source != "" {
			meta = append(meta, SourceStyle.Render(a.Source))
		}
		if a.PublishedAt != "" {
			meta = append(meta, DateStyle.Render("🕒 "+a.PublishedAt+"（JST）"))
		}
		if len(meta) > 0 {
			b.WriteString("    " + strings.Join(meta, DimStyle.Render(" · ")) + "\n")
		}

		b.WriteString("    " + LinkStyle.Render(a.Link) + "\n")
		if i < len(articles)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Table renders the articles as an aligned table. Widths are measured
// in display cells so Japanese text lines up, and the title column
// shrinks to keep the table inside the terminal.
func Table(articles []models.Article) string {
	headers := []string{"#", "タイトル", "媒体", "公開（JST）"}

	rows := make([][]string, 0, len(articles))
	for i, a := range articles {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			a.Title,
			a.Source,
			a.PublishedAt,
		})
	}

	widths := make([]int, len(headers))
	for col, h := range headers {
		widths[col] = lipgloss.Width(h)
		for _, row := range rows {
			if w := lipgloss.Width(row[col]); w > widths[col] {
				widths[col] = w
			}
		}
	}

	const gap = 2
	total := gap * (len(headers) - 1)
	for _, w := range widths {
		total += w
	}
	if max := terminalWidth(); total > max {
		title := widths[1] - (total - max)
		if min := lipgloss.Width(headers[1]); title < min {
			title = min
		}
		widths[1] = title
		for i, row := range rows {
			rows[i][1] = runewidth.Truncate(row[1], title, "…")
		}
	}

	var b strings.Builder
	b.WriteString(joinRow(headers, widths, TitleStyle))
	b.WriteByte('\n')

	sep := make([]string, len(headers))
	for col, w := range widths {
		sep[col] = strings.Repeat("─", w)
	}
	b.WriteString(DimStyle.Render(strings.Join(sep, strings.Repeat("─", gap))))
	b.WriteByte('\n')

	plain := lipgloss.NewStyle()
	for _, row := range rows {
		b.WriteString(joinRow(row, widths, plain))
		b.WriteByte('\n')
	}

	return b.String()
}

// Notice renders an informational line.
func Notice(msg string) string {
	return DimStyle.Render(msg)
}

// Warning renders a warning line.
func Warning(msg string) string {
	return WarningStyle.Render("⚠ " + msg)
}

// Error renders a failure line.
func Error(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// RequestURL renders the feed URL footnote shown under the results.
func RequestURL(url string) string {
	return DimStyle.Render("RSS: ") + LinkStyle.Render(url)
}

func joinRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for col, cell := range cells {
		parts[col] = padRight(cell, widths[col])
	}
	return style.Render(strings.TrimRight(strings.Join(parts, "  "), " "))
}

// padRight pads s with spaces up to the given display width.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

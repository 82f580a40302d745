package handler

import (
	"fmt"
	"strings"

	"wordsaver/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Callback uniques of the per-word buttons; the payload is the word or entry id
const (
	uniqueOpen        = "open"
	uniqueSpeak       = "speak"
	uniqueTranslate   = "translate"
	uniqueAdd         = "add"
	uniqueDeleteWord  = "delw"
	uniqueDeleteEntry = "del"
)

// maxListEntries caps the per-entry buttons under the word list
const maxListEntries = 30

// Inline keyboard buttons
var (
	btnList = tele.Btn{
		Unique: "list",
		Text:   "📚 My words",
	}
	btnReview = tele.Btn{
		Unique: "review",
		Text:   "🎯 Daily review",
	}
	btnAdd = tele.Btn{
		Unique: "add_prompt",
		Text:   "➕ Add word",
	}
	btnCopy = tele.Btn{
		Unique: "copy",
		Text:   "📋 Copy all",
	}
	btnExport = tele.Btn{
		Unique: "export",
		Text:   "📤 Export",
	}
	btnProgress = tele.Btn{
		Unique: "progress",
		Text:   "⭐ Progress",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnList, btnReview),
		menu.Row(btnAdd, btnProgress),
		menu.Row(btnCopy, btnExport),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

func backMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return markup
}

// toolbarMarkup is the per-word toolbar: speak, translate and add or delete
func toolbarMarkup(word string, saved bool) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	toggle := markup.Data("➕ Add", uniqueAdd, word)
	if saved {
		toggle = markup.Data("🗑 Delete", uniqueDeleteWord, word)
	}

	markup.Inline(
		markup.Row(
			markup.Data("🔊 Speak", uniqueSpeak, word),
			markup.Data("🌐 Translate", uniqueTranslate, word),
		),
		markup.Row(toggle),
		markup.Row(btnMainMenu),
	)
	return markup
}

func toolbarText(word string, saved bool) string {
	if saved {
		return fmt.Sprintf("🔤 %s\n\n✅ In your list", word)
	}
	return fmt.Sprintf("🔤 %s", word)
}

// listMarkup has one row per entry: open its toolbar, or delete it by id
func listMarkup(groups []domain.Group) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	count := 0
	for _, group := range groups {
		for _, entry := range group.Entries {
			if count == maxListEntries {
				break
			}
			rows = append(rows, markup.Row(
				markup.Data("🔤 "+entry.Word, uniqueOpen, entry.Word),
				markup.Data("🗑", uniqueDeleteEntry, entry.ID),
			))
			count++
		}
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// reviewMarkup opens each sampled word, two per row
func reviewMarkup(entries []domain.WordEntry) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for i := 0; i < len(entries); i += 2 {
		row := tele.Row{markup.Data(entries[i].Word, uniqueOpen, entries[i].Word)}
		if i+1 < len(entries) {
			row = append(row, markup.Data(entries[i+1].Word, uniqueOpen, entries[i+1].Word))
		}
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(btnReview), markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// formatGroups renders the grouped word list
func formatGroups(groups []domain.Group) string {
	total := 0
	for _, group := range groups {
		total += len(group.Entries)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Your words (%d)\n", total)
	for _, group := range groups {
		fmt.Fprintf(&b, "\n%s\n", group.Title)
		for _, entry := range group.Entries {
			mark := "•"
			if entry.Reviewed {
				mark = "✅"
			}
			fmt.Fprintf(&b, "%s %s\n", mark, entry.Word)
		}
	}
	return b.String()
}

func formatReview(entries []domain.WordEntry) string {
	var b strings.Builder
	b.WriteString("🎯 Daily review\n\nTap a word to hear or translate it:\n\n")
	for i, entry := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, entry.Word)
	}
	return b.String()
}

func formatProgress(p domain.Progress) string {
	next := p.Level * domain.PointsPerLevel
	return fmt.Sprintf(
		"⭐ Score: %d\n🏆 Level: %d\n📈 %d points to level %d",
		p.Score, p.Level, next-p.Score, p.Level+1,
	)
}

// splitMessage cuts text on line boundaries into chunks of at most limit bytes
func splitMessage(text string, limit int) []string {
	var chunks []string
	var b strings.Builder

	for _, line := range strings.Split(text, "\n") {
		if b.Len() > 0 && b.Len()+1+len(line) > limit {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

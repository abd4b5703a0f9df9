package components

import (
	"fmt"
	"strings"

	"github.com/omarelders/shipdash/internal/dashboard/themes"
	"github.com/omarelders/shipdash/internal/model"
)

// FileList renders uploaded spreadsheet files with a movable cursor.
type FileList struct {
	Title  string
	Files  []model.UploadedFile
	Cursor int
}

// MoveUp moves the cursor one file up.
func (f *FileList) MoveUp() {
	if f.Cursor > 0 {
		f.Cursor--
	}
}

// MoveDown moves the cursor one file down.
func (f *FileList) MoveDown() {
	if f.Cursor < len(f.Files)-1 {
		f.Cursor++
	}
}

// ClampCursor pulls the cursor back inside range after the list changed.
func (f *FileList) ClampCursor() {
	if f.Cursor >= len(f.Files) {
		f.Cursor = len(f.Files) - 1
	}
	if f.Cursor < 0 {
		f.Cursor = 0
	}
}

// CurrentFile returns the file under the cursor.
func (f FileList) CurrentFile() (model.UploadedFile, bool) {
	if f.Cursor < 0 || f.Cursor >= len(f.Files) {
		return model.UploadedFile{}, false
	}
	return f.Files[f.Cursor], true
}

// Remove drops the file with the given ID from the list.
func (f *FileList) Remove(fileID int64) {
	for i, file := range f.Files {
		if file.ID == fileID {
			f.Files = append(f.Files[:i], f.Files[i+1:]...)
			break
		}
	}
	f.ClampCursor()
}

// View renders the list.
func (f FileList) View(theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(f.Title))
	b.WriteString("\n")

	if len(f.Files) == 0 {
		b.WriteString(theme.Faint.Render("no files uploaded"))
		return b.String()
	}

	header := fmt.Sprintf("%s %s %s",
		pad("Filename", 36), pad("Rows", 8), pad("Uploaded", 19))
	b.WriteString(theme.TableHeader.Render(header))
	b.WriteString("\n")

	for i, file := range f.Files {
		line := fmt.Sprintf("%s %s %s",
			pad(file.Filename, 36),
			pad(fmt.Sprintf("%d", file.RecordCount), 8),
			pad(file.UploadDate, 19))
		if i == f.Cursor {
			line = theme.Highlighted.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

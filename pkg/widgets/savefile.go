// Package widgets holds helpers shared by the chart windows.
package widgets

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	sdialog "github.com/sqweek/dialog"
)

// SaveFile asks for a file name with the native dialog and calls cb on the
// main goroutine. ext is appended when the user left it out.
func SaveFile(cb func(filename string), desc, ext string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, ext).Title("Save " + desc).Save()
		if err != nil {
			if errors.Is(err, sdialog.ErrCancelled) {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		filename = WithExt(filename, ext)
		fyne.Do(func() {
			cb(filename)
		})
	}()
}

// WithExt adds .ext to filename unless it already ends with it.
func WithExt(filename, ext string) string {
	if strings.HasSuffix(strings.ToLower(filename), "."+strings.ToLower(ext)) {
		return filename
	}
	return filename + "." + ext
}

// Package archive derives collision-free filesystem names for processed
// invoice documents.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invoice-kit/invoice-archiver/internal/entity"
)

// reservedChars are replaced with underscores before a name touches any
// filesystem.
const reservedChars = `\/:*?"<>|`

// Filename composes the archive name for a record: remark+total+date, or
// total+date when there is no remark, keeping the source extension.
func Filename(rec *entity.InvoiceRecord, ext string) string {
	var name string
	if rec.Remark != "" {
		name = rec.Remark + "+" + rec.Total + "+" + rec.Date
	} else {
		name = rec.Total + "+" + rec.Date
	}
	return sanitize(name) + ext
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedChars, r) {
			return '_'
		}
		return r
	}, name)
}

// TargetPath returns the rename target for src in its own directory,
// disambiguated with a numeric suffix until unique. Uniqueness is only
// guaranteed within a single sequential batch run.
func TargetPath(src string, rec *entity.InvoiceRecord) string {
	dir := filepath.Dir(src)
	name := Filename(rec, filepath.Ext(src))
	return disambiguate(dir, name, func(p string) bool {
		_, err := os.Stat(p)
		return err == nil
	})
}

// disambiguate appends _1, _2, ... before the extension while exists reports
// a collision.
func disambiguate(dir, name string, exists func(string) bool) string {
	candidate := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for counter := 1; exists(candidate); counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
	}
	return candidate
}

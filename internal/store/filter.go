package store

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-jobtrack/internal/models"
)

// normalizeText lowercases and strips combining marks so "Hà Nội" matches
// "ha noi".
func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// Filter narrows the collection by a search term (matched against company
// and position) and a status. Empty search or status "all"/"" means no
// constraint. Pure read; the owned collection is untouched.
func (l *ApplicationList) Filter(search, status string) []models.Application {
	needle := normalizeText(strings.TrimSpace(search))
	out := make([]models.Application, 0, len(l.items))
	for _, app := range l.items {
		if needle != "" &&
			!strings.Contains(normalizeText(app.CompanyName), needle) &&
			!strings.Contains(normalizeText(app.PositionTitle), needle) {
			continue
		}
		if status != "" && status != "all" && string(app.Status) != status {
			continue
		}
		out = append(out, app)
	}
	return out
}

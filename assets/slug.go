package assets

import "strings"

var slugReplacer = strings.NewReplacer("/", "-", "\\", "-")

// Slugify turns an asset path into the cache key used for it: path separators
// become dashes, the result is lowercased and a trailing map extension is
// dropped. Applying it twice gives the same result as applying it once.
func Slugify(path string) string {
	slug := slugReplacer.Replace(path)
	slug = strings.ToLower(slug)
	for _, ext := range []string{".json", ".tmx"} {
		if strings.HasSuffix(slug, ext) {
			slug = strings.TrimSuffix(slug, ext)
			break
		}
	}
	return slug
}

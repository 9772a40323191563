package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var localeFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

var catalogs = mustLoadAndRegister()

// Messages returns a copy of the catalog for tag, or nil when none exists.
func Messages(tag language.Tag) map[string]string {
	source, ok := catalogs[tag.String()]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}

func mustLoadAndRegister() map[string]map[string]string {
	loaded, err := loadCatalogs(localeFS)
	if err != nil {
		panic(err)
	}
	register(loaded)
	return loaded
}

// loadCatalogs reads locales/<tag>.yaml files. Every locale must define the
// same keys as the default locale.
func loadCatalogs(fsys fs.FS) (map[string]map[string]string, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	out := make(map[string]map[string]string, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.UnmarshalStrict(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		locale := strings.TrimSpace(file.Locale)
		if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, want)
		}
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: messages are required", p)
		}
		messages := make(map[string]string, len(file.Messages))
		for key, value := range file.Messages {
			key = strings.TrimSpace(key)
			if key == "" {
				return nil, fmt.Errorf("catalog %s: message key cannot be blank", p)
			}
			messages[key] = value
		}
		out[locale] = messages
	}

	base, ok := out[Default().String()]
	if !ok {
		return nil, fmt.Errorf("default locale %s has no catalog", Default())
	}
	for locale, messages := range out {
		for key := range base {
			if _, ok := messages[key]; !ok {
				return nil, fmt.Errorf("catalog %s: missing key %q", locale, key)
			}
		}
		for key := range messages {
			if _, ok := base[key]; !ok {
				return nil, fmt.Errorf("catalog %s: key %q is not in the default catalog", locale, key)
			}
		}
	}
	return out, nil
}

func register(loaded map[string]map[string]string) {
	for locale, messages := range loaded {
		tag := language.MustParse(locale)
		for key, value := range messages {
			if err := message.SetString(tag, key, value); err != nil {
				panic(fmt.Errorf("register %s %q: %w", locale, key, err))
			}
		}
	}
}

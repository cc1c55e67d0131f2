package translator

import (
	"io/fs"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"taskmanager/pkg/translator/translation"
)

var Translator *i18n.Bundle

var matcher = language.NewMatcher([]language.Tag{language.English})

type Config struct {
	TranslationFolder  string   // empty loads the embedded message files
	SupportedLanguages []string // first entry is the fallback
}

const (
	LanguageEn = "en"
	LanguagePt = "pt"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	setSupportedLanguages(cfg.SupportedLanguages)

	var files fs.FS = translation.Files
	if cfg.TranslationFolder != "" {
		files = os.DirFS(cfg.TranslationFolder)
	}

	// List files in the translation folder
	lstFiles, err := fs.ReadDir(files, ".")
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}

		_, err := Translator.LoadMessageFileFS(files, f.Name())
		if err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Match picks the supported language closest to an Accept-Language header.
func Match(acceptLanguage string) string {
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	return base.String()
}

func setSupportedLanguages(languages []string) {
	tags := make([]language.Tag, 0, len(languages)+1)
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
	}
	matcher = language.NewMatcher(tags)
}

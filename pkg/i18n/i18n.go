// Package i18n resolves user-facing prompt text for a requested locale.
package i18n

// Translator resolves English prompt text for a language. Implementations
// must return the English text unchanged for an unrecognized language; the
// key identifies the prompt for catalogs that index by context rather than
// by source text.
type Translator interface {
	Translate(englishText, language, key string) string
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(englishText, language, key string) string

func (f TranslatorFunc) Translate(englishText, language, key string) string {
	return f(englishText, language, key)
}

// Passthrough returns the English text unchanged for every language.
func Passthrough() Translator {
	return TranslatorFunc(func(englishText, _, _ string) string {
		return englishText
	})
}

// catalogs indexes translated prompt text by language and prompt key.
var catalogs = map[string]map[string]string{
	"de": {
		"prefix":             "Wähle die Art der Änderung, die du committest",
		"scope":              "Was ist der Geltungsbereich dieser Änderung? (Klasse oder Dateiname): (mit [enter] überspringen)",
		"subject":            "Schreibe eine kurze, prägnante Zusammenfassung der Änderungen: (Kleinschreibung, kein Punkt)",
		"body":               "Ergänzende Kontextinformationen über die Änderungen: (mit [enter] überspringen)",
		"is_breaking_change": "Ist dies ein BREAKING CHANGE? Entspricht MAJOR in SemVer",
		"footer":             "Footer. Informationen zu Breaking Changes und referenzierten Issues: (mit [enter] überspringen)",
	},
	"es": {
		"prefix":             "Selecciona el tipo de cambio que vas a confirmar",
		"scope":              "¿Cuál es el alcance de este cambio? (clase o nombre de archivo): (pulsa [enter] para omitir)",
		"subject":            "Escribe un resumen corto e imperativo de los cambios: (minúsculas y sin punto)",
		"body":               "Proporciona información contextual adicional sobre los cambios: (pulsa [enter] para omitir)",
		"is_breaking_change": "¿Es un BREAKING CHANGE? Corresponde a MAJOR en SemVer",
		"footer":             "Footer. Información sobre breaking changes e issues que cierra este commit: (pulsa [enter] para omitir)",
	},
}

// Builtin translates prompt text using the small built-in catalogs, falling
// back to the English text for unknown languages or missing keys.
func Builtin() Translator {
	return TranslatorFunc(func(englishText, language, key string) string {
		catalog, ok := catalogs[language]
		if !ok {
			return englishText
		}
		if text, ok := catalog[key]; ok {
			return text
		}
		return englishText
	})
}

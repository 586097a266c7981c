package validator

import "strings"

// IsValidLangCode 验证语言代码格式（ISO 639-1，可带地区子标签，如 en、pt-BR）
func IsValidLangCode(lang string) bool {
	if lang == "" {
		return false
	}

	parts := strings.SplitN(lang, "-", 2)

	primary := parts[0]
	if len(primary) < 2 || len(primary) > 3 || !isAlpha(primary) {
		return false
	}

	if len(parts) == 2 {
		region := parts[1]
		if len(region) != 2 || !isAlpha(region) {
			return false
		}
	}

	return true
}

// NormalizeLangCode 规范化语言代码（小写主标签，大写地区标签）
// 无效输入回退到默认值。
func NormalizeLangCode(lang, defaultLang string) string {
	lang = strings.TrimSpace(lang)
	if !IsValidLangCode(lang) {
		return defaultLang
	}

	parts := strings.SplitN(lang, "-", 2)
	normalized := strings.ToLower(parts[0])
	if len(parts) == 2 {
		normalized += "-" + strings.ToUpper(parts[1])
	}
	return normalized
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

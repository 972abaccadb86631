package health

import "strings"

// LabelResolver maps a checklist item key to a human-readable label. It
// must always return some non-empty string for any key.
type LabelResolver func(key string) string

// FallbackLabel renders a raw checklist key readable: underscores become
// spaces and each word is title-cased ("brake_lights" -> "Brake Lights").
// Used for legacy or ad-hoc keys missing from the catalog.
func FallbackLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NewCatalogResolver builds a LabelResolver backed by a key->label catalog.
// Configured labels have any trailing parenthetical stripped (the catalog
// stores operator hints like "Tyre pressure (check psi)"). Unknown keys
// fall back to FallbackLabel.
func NewCatalogResolver(labels map[string]string) LabelResolver {
	return func(key string) string {
		if label, ok := labels[key]; ok && label != "" {
			return stripParenthetical(label)
		}
		return FallbackLabel(key)
	}
}

// stripParenthetical removes a trailing "(...)" suffix and surrounding
// whitespace from a label.
func stripParenthetical(label string) string {
	open := strings.LastIndex(label, "(")
	if open >= 0 && strings.HasSuffix(strings.TrimSpace(label), ")") {
		label = label[:open]
	}
	return strings.TrimSpace(label)
}

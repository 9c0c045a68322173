package config

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderDefaultTOML renders a commented TOML config holding every default.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# tldr configuration (TOML)\n\n")

	sections := make(map[string][]Option)
	order := make([]string, 0)
	for _, o := range GetOptions() {
		section, key := "", o.Key
		if idx := strings.LastIndex(o.Key, "."); idx >= 0 {
			section, key = o.Key[:idx], o.Key[idx+1:]
		}
		if _, ok := sections[section]; !ok {
			order = append(order, section)
		}
		sections[section] = append(sections[section], Option{Key: key, Default: o.Default, Comment: o.Comment})
	}

	for _, section := range order {
		if section != "" {
			b.WriteString("[" + section + "]\n")
		}
		for _, o := range sections[section] {
			writeTOMLOption(&b, o.Key, o.Default, o.Comment)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeTOMLOption(b *strings.Builder, key string, value any, comment string) {
	if comment != "" {
		b.WriteString("# " + comment + "\n")
	}
	switch v := value.(type) {
	case string:
		b.WriteString(fmt.Sprintf("%s = %s\n", key, strconv.Quote(v)))
	case bool, int, int64:
		b.WriteString(fmt.Sprintf("%s = %v\n", key, v))
	case []string:
		quoted := make([]string, 0, len(v))
		for _, s := range v {
			quoted = append(quoted, strconv.Quote(s))
		}
		b.WriteString(fmt.Sprintf("%s = [%s]\n", key, strings.Join(quoted, ", ")))
	}
}

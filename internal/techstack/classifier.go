// Package techstack turns a free-text technology listing into the four
// fixed categories used throughout the screening flow.
package techstack

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fixed category names. Categories lists them in classification priority
// order: the first category whose keyword list matches a token wins.
const (
	CategoryLanguages  = "Programming Languages"
	CategoryFrameworks = "Frameworks"
	CategoryDatabases  = "Databases"
	CategoryTools      = "Tools & Technologies"
)

var Categories = []string{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryTools,
}

var categoryKeywords = map[string][]string{
	CategoryLanguages: {
		"python", "javascript", "java", "c++", "c#", "go", "rust", "php",
		"ruby", "swift", "kotlin", "typescript",
	},
	CategoryFrameworks: {
		"react", "angular", "vue", "django", "flask", "spring", "express",
		"laravel", "rails", "nextjs", "svelte",
	},
	CategoryDatabases: {
		"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
		"cassandra", "elasticsearch",
	},
	CategoryTools: {
		"docker", "kubernetes", "aws", "gcp", "azure", "git", "jenkins",
		"terraform", "ansible",
	},
}

var tokenSplitRe = regexp.MustCompile(`[,\n]`)

// Stack maps a category name to the technologies declared under it. Only
// non-empty categories are present; iterate via Categories for stable order.
type Stack map[string][]string

// Parse splits the raw text on commas and newlines and extracts every known
// keyword from each token, so "MySQL and Docker" yields one database and one
// tool. Tokens matching no keyword at all land whole in Tools & Technologies.
func Parse(raw string) Stack {
	stack := Stack{}

	for _, token := range tokenSplitRe.Split(raw, -1) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}

		matched := false
		for _, name := range Categories {
			for _, keyword := range categoryKeywords[name] {
				if !strings.Contains(token, keyword) || shadowed(token, keyword) {
					continue
				}
				stack[name] = appendUnique(stack[name], titleCase(keyword))
				matched = true
			}
		}

		if !matched {
			stack[CategoryTools] = appendUnique(stack[CategoryTools], titleCase(token))
		}
	}

	return stack
}

// shadowed reports whether a longer keyword also present in the token
// contains this one, e.g. "java" inside "javascript" or "go" inside
// "django".
func shadowed(token, keyword string) bool {
	for _, keywords := range categoryKeywords {
		for _, other := range keywords {
			if other == keyword {
				continue
			}
			if strings.Contains(other, keyword) && strings.Contains(token, other) {
				return true
			}
		}
	}
	return false
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

// titleCase upper-cases the first rune of every word in the token.
func titleCase(token string) string {
	words := strings.Fields(token)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// Empty reports whether no technology was categorized at all.
func (s Stack) Empty() bool {
	for _, technologies := range s {
		if len(technologies) > 0 {
			return false
		}
	}
	return true
}

// Technologies returns all declared technologies in category order.
func (s Stack) Technologies() []string {
	var all []string
	for _, category := range Categories {
		all = append(all, s[category]...)
	}
	return all
}

// Summary renders the stack as a bulleted list for the conversation reply.
func (s Stack) Summary() string {
	var lines []string
	for _, category := range Categories {
		if len(s[category]) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", category, strings.Join(s[category], ", ")))
	}
	return strings.Join(lines, "\n")
}

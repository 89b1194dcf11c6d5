package techstack

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCategorizesFreeText(t *testing.T) {
	stack := Parse("I use Python, React, MySQL and Docker")

	expected := Stack{
		CategoryLanguages:  {"Python"},
		CategoryFrameworks: {"React"},
		CategoryDatabases:  {"Mysql"},
		CategoryTools:      {"Docker"},
	}
	if !reflect.DeepEqual(stack, expected) {
		t.Fatalf("unexpected stack: %#v", stack)
	}
}

func TestParseLongerKeywordWins(t *testing.T) {
	cases := []struct {
		input    string
		category string
		want     string
	}{
		{"javascript", CategoryLanguages, "Javascript"},
		{"django", CategoryFrameworks, "Django"},
		{"mongodb", CategoryDatabases, "Mongodb"},
	}

	for _, tc := range cases {
		stack := Parse(tc.input)
		got := stack[tc.category]
		if len(got) != 1 || got[0] != tc.want {
			t.Fatalf("Parse(%q): expected [%s] in %s, got %#v", tc.input, tc.want, tc.category, stack)
		}
		if langs := stack[CategoryLanguages]; tc.category != CategoryLanguages && len(langs) != 0 {
			t.Fatalf("Parse(%q): unexpected language match: %#v", tc.input, langs)
		}
	}
}

func TestParseUnknownTokenDefaultsToTools(t *testing.T) {
	stack := Parse("jira, confluence")

	expected := []string{"Jira", "Confluence"}
	if !reflect.DeepEqual(stack[CategoryTools], expected) {
		t.Fatalf("expected %v in tools, got %#v", expected, stack)
	}
}

func TestParseDeduplicatesRepeatedMentions(t *testing.T) {
	stack := Parse("python, python scripting\npython")

	if got := stack[CategoryLanguages]; len(got) != 1 || got[0] != "Python" {
		t.Fatalf("expected single Python entry, got %#v", got)
	}
}

func TestParseTitleCasesMultibyteTokens(t *testing.T) {
	stack := Parse("émacs")

	if got := stack[CategoryTools]; len(got) != 1 || got[0] != "Émacs" {
		t.Fatalf("expected Émacs in tools, got %#v", stack)
	}
}

func TestParseBlankInputIsEmpty(t *testing.T) {
	stack := Parse("  , \n ")

	if !stack.Empty() {
		t.Fatalf("expected empty stack, got %#v", stack)
	}
}

func TestTechnologiesFollowCategoryOrder(t *testing.T) {
	stack := Parse("docker, mysql, react, go")

	expected := []string{"Go", "React", "Mysql", "Docker"}
	if !reflect.DeepEqual(stack.Technologies(), expected) {
		t.Fatalf("unexpected order: %v", stack.Technologies())
	}
}

func TestSummaryListsOnlyPopulatedCategories(t *testing.T) {
	stack := Parse("python, postgresql")

	summary := stack.Summary()
	lines := strings.Split(summary, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 summary lines, got %d: %q", len(lines), summary)
	}
	if lines[0] != "- Programming Languages: Python" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "- Databases: Postgresql" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

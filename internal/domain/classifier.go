package domain

import "strings"

// frameworkRules is the fixed keyword table for framework/ecosystem
// inference. Matching is substring-based over the lowercased concatenation
// of a repo's name, description and topics; names come back in table order
// so callers get a deterministic slice.
var frameworkRules = []struct {
	name     string
	keywords []string
}{
	{"React", []string{"react", "next.js"}},
	{"Vue", []string{"vue"}},
	{"Angular", []string{"angular"}},
	{"Node.js", []string{"express", "koa"}},
	{"Python", []string{"django", "flask"}},
	{"Ruby on Rails", []string{"rails"}},
	{"Spring", []string{"spring"}},
	{"Go", []string{"gin", "echo", "golang"}},
	{"Rust", []string{"actix", "rocket", "rust"}},
}

// InferFrameworks returns the framework/ecosystem names whose keywords
// appear in the repo's name, description or topics.
func InferFrameworks(name, description string, topics []string) []string {
	allText := strings.ToLower(name + " " + description + " " + strings.Join(topics, " "))

	var matched []string
	for _, rule := range frameworkRules {
		for _, kw := range rule.keywords {
			if strings.Contains(allText, kw) {
				matched = append(matched, rule.name)
				break
			}
		}
	}
	return matched
}

// ClassifyRepoType buckets a repository as app, library or tool from its
// name and description. Shallow on purpose; unknown is a valid answer.
func ClassifyRepoType(name, description string) RepoType {
	n := strings.ToLower(name)
	d := strings.ToLower(description)

	switch {
	case strings.Contains(n, "app") || strings.Contains(n, "web") || strings.Contains(d, "application"):
		return RepoTypeApp
	case strings.Contains(n, "lib") || strings.Contains(d, "library"):
		return RepoTypeLibrary
	case strings.Contains(n, "cli") || strings.Contains(n, "tool") || strings.Contains(d, "tool"):
		return RepoTypeTool
	default:
		return RepoTypeUnknown
	}
}

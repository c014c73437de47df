package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferFrameworks(t *testing.T) {
	tests := []struct {
		name        string
		repoName    string
		description string
		topics      []string
		expect      []string
	}{
		{
			name:        "react from topics",
			repoName:    "awesome-project",
			description: "a project",
			topics:      []string{"react", "javascript"},
			expect:      []string{"React"},
		},
		{
			name:        "next.js maps to React",
			repoName:    "portfolio",
			description: "Built with Next.js",
			expect:      []string{"React"},
		},
		{
			name:        "multiple matches keep table order",
			repoName:    "fullstack-demo",
			description: "Django backend with a Vue frontend on Rails-like routing",
			expect:      []string{"Vue", "Python", "Ruby on Rails"},
		},
		{
			name:        "golang keyword",
			repoName:    "some-server",
			description: "HTTP server written in Golang",
			expect:      []string{"Go"},
		},
		{
			name:        "rust via actix",
			repoName:    "web-svc",
			description: "actix based service",
			expect:      []string{"Rust"},
		},
		{
			name:        "no match",
			repoName:    "dotfiles",
			description: "my personal configuration",
			expect:      nil,
		},
		{
			name:     "case insensitive",
			repoName: "REACT-COMPONENTS",
			expect:   []string{"React"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferFrameworks(tt.repoName, tt.description, tt.topics)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestClassifyRepoType(t *testing.T) {
	tests := []struct {
		name        string
		repoName    string
		description string
		expect      RepoType
	}{
		{"app by name", "todo-app", "", RepoTypeApp},
		{"web counts as app", "webshop", "", RepoTypeApp},
		{"application in description", "acme", "An application for tracking", RepoTypeApp},
		{"library by name", "httplib", "", RepoTypeLibrary},
		{"library in description", "parser", "A parsing library", RepoTypeLibrary},
		{"cli is a tool", "mycli", "", RepoTypeTool},
		{"tool in description", "fixer", "A tool for fixing things", RepoTypeTool},
		{"app wins over tool", "web-tool", "", RepoTypeApp},
		{"nothing matches", "stuff", "miscellaneous", RepoTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ClassifyRepoType(tt.repoName, tt.description))
		})
	}
}

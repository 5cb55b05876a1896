package models

import "strings"

// FilterProjects returns the projects matching both the active category and
// the search query, preserving the input order. A category of AllCategories
// matches everything; otherwise a project matches when any of its stack tags
// contains the category as a case-insensitive substring. An empty query
// matches everything; otherwise the query must appear, case-insensitively,
// in the title, the short description, or one of the stack tags.
func FilterProjects(projects []Project, category, query string) []Project {
	var out []Project
	for _, p := range projects {
		if matchesCategory(p, category) && matchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}

func matchesCategory(p Project, category string) bool {
	if category == AllCategories {
		return true
	}
	needle := strings.ToLower(category)
	for _, tag := range p.Stack {
		// Substring match is intentional: category "script" selects both
		// "JavaScript" and "TypeScript" tags.
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesQuery(p Project, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Short), needle) {
		return true
	}
	for _, tag := range p.Stack {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Categories returns the distinct stack tags across all projects in
// first-appearance order, prefixed with the AllCategories sentinel. The
// result backs the category selector controls.
func Categories(projects []Project) []string {
	cats := []string{AllCategories}
	seen := map[string]bool{}
	for _, p := range projects {
		for _, tag := range p.Stack {
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			cats = append(cats, tag)
		}
	}
	return cats
}

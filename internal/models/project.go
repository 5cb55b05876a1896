package models

// AllCategories is the sentinel category meaning "no restriction"
const AllCategories = "all"

// Project represents a single portfolio entry
type Project struct {
	ID         string   `json:"id"`                   // Unique, stable identifier
	Title      string   `json:"title"`                // Display title
	Short      string   `json:"short"`                // Short description
	Stack      []string `json:"stack"`                // Technology tags, in display order
	Screenshot string   `json:"screenshot,omitempty"` // Screenshot URI
	Demo       string   `json:"demo,omitempty"`       // Live demo URI
	Repo       string   `json:"repo,omitempty"`       // Source repository URI
	Metrics    string   `json:"metrics,omitempty"`    // Optional metrics blurb
}

// Package portfoliotest provides the shared eight-record dataset used by
// tests across packages.
package portfoliotest

import "github.com/HendryAvila/portfolio-mcp/internal/portfolio"

// Records returns a fresh copy of the fixture dataset.
func Records() []portfolio.Record {
	return []portfolio.Record{
		{
			ID:          1,
			Category:    "Profile Summary",
			Title:       "Srikanth Karthikeyan - Full Stack & Cloud Engineer",
			Description: "cloud/migration engineer at Presidio",
			Keywords:    []string{"profile", "cloud engineer", "devops"},
		},
		{
			ID:          2,
			Category:    "Current Position",
			Title:       "Job Title",
			Description: "Devops Engineer",
			Keywords:    []string{"job title", "devops"},
		},
		{
			ID:          3,
			Category:    "Contact",
			Title:       "Email",
			Description: "test@example.com",
			Keywords:    []string{"contact", "email"},
		},
		{
			ID:          4,
			Category:    "Contact",
			Title:       "LinkedIn",
			Description: "https://linkedin.com/in/test",
			Keywords:    []string{"contact", "linkedin", "social media"},
		},
		{
			ID:          5,
			Category:    "Tech Stack",
			Title:       "Programming Languages",
			Description: "Experienced in C, C++, Java, Python, TypeScript",
			Keywords:    []string{"tech stack", "programming", "languages", "python", "java"},
		},
		{
			ID:          6,
			Category:    "Tech Stack",
			Title:       "Cloud Platforms",
			Description: "Proficient with AWS and Azure",
			Keywords:    []string{"tech stack", "cloud", "aws", "azure"},
		},
		{
			ID:          7,
			Category:    "Experience",
			Title:       "Presidio",
			Description: "DevOps Engineer working on cloud migration projects",
			Keywords:    []string{"experience", "presidio", "devops", "cloud migration"},
		},
		{
			ID:          8,
			Category:    "Education",
			Title:       "Engineering Degree",
			Description: "B.E. in Electronics and Communication",
			Keywords:    []string{"education", "degree", "engineering"},
		},
	}
}

// Store returns a portfolio.Store over Records.
func Store() *portfolio.Store {
	return portfolio.NewStore(Records())
}

// IDs extracts record ids in order, for compact assertions.
func IDs(records []portfolio.Record) []int64 {
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

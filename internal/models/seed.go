package models

// SeedProfiles returns the mock profiles loaded at startup.
// Each call returns a fresh slice.
func SeedProfiles() []Profile {
	return []Profile{
		{
			ID:         1,
			Name:       "Ada Lovelace",
			Title:      "Algorithm Designer",
			Bio:        "Wrote the first published program for the Analytical Engine.",
			Skills:     []string{"Mathematics", "Algorithms", "Technical Writing"},
			Experience: 12,
			Location:   "London, UK",
			Avatar:     "https://avatars.githubusercontent.com/u/1001",
			GitHub:     "https://github.com/ada",
			Available:  true,
		},
		{
			ID:         2,
			Name:       "Grace Hopper",
			Title:      "Compiler Engineer",
			Bio:        "Built the first compiler and pushed for machine-independent languages.",
			Skills:     []string{"COBOL", "Compilers", "Leadership"},
			Experience: 30,
			Location:   "Arlington, VA",
			Avatar:     "https://avatars.githubusercontent.com/u/1002",
			GitHub:     "https://github.com/grace",
			Available:  false,
		},
		{
			ID:         3,
			Name:       "Linus Torvalds",
			Title:      "Kernel Maintainer",
			Bio:        "Maintains a kernel and a version control system.",
			Skills:     []string{"C", "Git", "Operating Systems"},
			Experience: 33,
			Location:   "Portland, OR",
			Avatar:     "https://avatars.githubusercontent.com/u/1003",
			GitHub:     "https://github.com/torvalds",
			Available:  false,
		},
		{
			ID:         4,
			Name:       "Margaret Hamilton",
			Title:      "Software Engineering Lead",
			Bio:        "Led flight software development for the Apollo program.",
			Skills:     []string{"Flight Software", "Systems Design", "Reliability"},
			Experience: 40,
			Location:   "Cambridge, MA",
			Avatar:     "https://avatars.githubusercontent.com/u/1004",
			GitHub:     "https://github.com/mhamilton",
			Available:  true,
		},
		{
			ID:         5,
			Name:       "Rob Pike",
			Title:      "Language Designer",
			Bio:        "Co-designed Go, UTF-8 and Plan 9.",
			Skills:     []string{"Go", "Concurrency", "Distributed Systems"},
			Experience: 35,
			Location:   "Sydney, AU",
			Avatar:     "https://avatars.githubusercontent.com/u/1005",
			GitHub:     "https://github.com/robpike",
			Available:  true,
		},
	}
}

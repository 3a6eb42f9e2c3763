package mockgen

import (
	"fmt"
	"strings"

	"github.com/ashrithsingam-prog/Employee-Burnout-Predictor/internal"
)

const emailDomain = "nimbuscorp.io"

// departmentCatalog pairs each department with its plausible roles. Kept as
// an ordered slice so random picks are reproducible across runs.
var departmentCatalog = []struct {
	name  string
	roles []string
}{
	{"Engineering", []string{"Software Engineer", "Senior Software Engineer", "QA Engineer", "DevOps Engineer"}},
	{"Product", []string{"Product Manager", "Product Designer", "UX Researcher"}},
	{"Sales", []string{"Account Executive", "Sales Development Rep", "Sales Manager"}},
	{"Marketing", []string{"Marketing Specialist", "Content Strategist", "Growth Analyst"}},
	{"Customer Support", []string{"Support Agent", "Support Team Lead"}},
	{"Finance", []string{"Financial Analyst", "Accountant"}},
	{"Human Resources", []string{"HR Generalist", "Recruiter"}},
}

// buildRoster assigns identity, org attributes and a hidden profile to each
// of count employees. Profile buckets follow a ~30/40/30 split with every
// bucket guaranteed at least one member.
func (g *Generator) buildRoster(count int) []*internal.Employee {
	profiles := g.profileSplit(count)

	managers := managerPool(count)
	seen := make(map[string]bool, count)
	roster := make([]*internal.Employee, 0, count)

	for i := 0; i < count; i++ {
		name := g.uniqueName(seen, i)
		dept := departmentCatalog[g.rng.Intn(len(departmentCatalog))]
		emp := &internal.Employee{
			ID:         fmt.Sprintf("EMP%03d", i+1),
			Name:       name,
			Email:      emailFor(name),
			Department: dept.name,
			Role:       dept.roles[g.rng.Intn(len(dept.roles))],
			Profile:    profiles[i],
			JoinDate:   g.opts.Now.AddDate(0, 0, -g.rng.Intn(5*365)),
			ManagerID:  managers[g.rng.Intn(len(managers))],
		}
		roster = append(roster, emp)
	}
	return roster
}

// profileSplit produces a shuffled profile assignment per ordinal index:
// ~30% healthy, ~40% at-risk, ~30% burnout, each bucket floored at one.
func (g *Generator) profileSplit(count int) []internal.Profile {
	healthy := count * 30 / 100
	burnout := count * 30 / 100
	if healthy < 1 {
		healthy = 1
	}
	if burnout < 1 {
		burnout = 1
	}
	atRisk := count - healthy - burnout
	if atRisk < 1 {
		atRisk = 1
	}

	profiles := make([]internal.Profile, 0, healthy+atRisk+burnout)
	for i := 0; i < healthy; i++ {
		profiles = append(profiles, internal.ProfileHealthy)
	}
	for i := 0; i < atRisk; i++ {
		profiles = append(profiles, internal.ProfileAtRisk)
	}
	for i := 0; i < burnout; i++ {
		profiles = append(profiles, internal.ProfileBurnout)
	}

	// Floors can overshoot for rosters smaller than the bucket count.
	// Shuffle before trimming so the dropped bucket isn't always the same.
	g.rng.Shuffle(len(profiles), func(i, j int) {
		profiles[i], profiles[j] = profiles[j], profiles[i]
	})
	return profiles[:count]
}

// uniqueName draws faker person names until one is unused. After too many
// collisions (large rosters) it disambiguates with the ordinal.
func (g *Generator) uniqueName(seen map[string]bool, ordinal int) string {
	var name string
	for attempt := 0; ; attempt++ {
		name = g.fake.Person().Name()
		if !seen[name] {
			break
		}
		if attempt >= 50 {
			name = fmt.Sprintf("%s %d", name, ordinal+1)
			break
		}
	}
	seen[name] = true
	return name
}

func emailFor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('.')
		}
	}
	return b.String() + "@" + emailDomain
}

// managerPool sizes the MGR id pool to the roster so managers stay distinct
// from employee ids and small rosters don't all share one manager.
func managerPool(count int) []string {
	n := count / 6
	if n < 2 {
		n = 2
	}
	if n > 8 {
		n = 8
	}
	pool := make([]string, n)
	for i := range pool {
		pool[i] = fmt.Sprintf("MGR%03d", i+1)
	}
	return pool
}

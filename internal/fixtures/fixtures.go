// Package fixtures generates deterministic sample collections for tests and
// demos. The same kind, size and seed always yield the same items.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/cristianoliveira/jobdeck/internal/domain"
)

var (
	firstNames  = []string{"Ada", "Grace", "Linus", "Margaret", "Ken", "Barbara", "Dennis", "Frances", "Rob", "Radia", "Alan", "Edsger"}
	lastNames   = []string{"Lovelace", "Hopper", "Torvalds", "Hamilton", "Thompson", "Liskov", "Ritchie", "Allen", "Pike", "Perlman", "Turing", "Dijkstra"}
	locations   = []string{"Berlin", "Lisbon", "Remote", "New York", "London", "Sao Paulo"}
	levels      = []string{"junior", "mid", "senior", "lead"}
	skillPool   = []string{"go", "python", "kubernetes", "postgres", "react", "typescript", "aws", "terraform", "rust", "graphql"}
	titles      = []string{"Backend Engineer", "Frontend Engineer", "Platform Engineer", "Data Engineer", "Engineering Manager", "SRE"}
	companies   = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Stark"}
	jobTypes    = []string{"full-time", "part-time", "contract"}
	stages      = []string{"screening", "technical", "onsite", "final"}
	modes       = []string{"video", "phone", "onsite"}
	sources     = []string{"referral", "linkedin", "careers-page", "agency"}
	interviewer = []string{"Alice", "Bob", "Carol", "Dave"}
)

var epoch = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

// Generate returns n items of the given kind with IDs 1..n.
func Generate(kind domain.Kind, n int, seed int64) []domain.Item {
	schema := domain.MustSchema(kind)
	r := rand.New(rand.NewSource(seed))
	items := make([]domain.Item, 0, n)
	for i := 1; i <= n; i++ {
		var attrs map[string]any
		var score *float64
		switch kind {
		case domain.KindCandidates:
			attrs, score = candidate(r, i)
		case domain.KindJobs:
			attrs, score = job(r)
		case domain.KindInterviews:
			attrs, score = interview(r, i)
		default:
			attrs, score = application(r, i)
		}
		attrs[domain.FieldStatus] = pick(r, schema.Statuses)
		items = append(items, domain.NewItem(i, attrs, score))
	}
	return items
}

// Candidates returns n candidates whose scores and statuses are given
// explicitly, for tests that need exact values. Missing entries get no
// score and status "new".
func Candidates(scores []float64, statuses []string) []domain.Item {
	n := max(len(scores), len(statuses))
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		attrs := map[string]any{
			"name":   fmt.Sprintf("Candidate %02d", i+1),
			"email":  fmt.Sprintf("candidate%02d@example.com", i+1),
			"status": "new",
		}
		if i < len(statuses) {
			attrs["status"] = statuses[i]
		}
		var score *float64
		if i < len(scores) {
			score = domain.Float(scores[i])
		}
		items = append(items, domain.NewItem(i+1, attrs, score))
	}
	return items
}

func candidate(r *rand.Rand, i int) (map[string]any, *float64) {
	first, last := pick(r, firstNames), pick(r, lastNames)
	return map[string]any{
		"name":            first + " " + last,
		"email":           fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
		"location":        pick(r, locations),
		"experienceLevel": pick(r, levels),
		"experienceYears": r.Intn(20),
		"skills":          skills(r),
		"appliedAt":       date(r),
	}, domain.Float(float64(40 + r.Intn(61)))
}

func job(r *rand.Rand) (map[string]any, *float64) {
	minSalary := 40000 + r.Intn(80)*1000
	return map[string]any{
		"title":     pick(r, titles),
		"company":   pick(r, companies),
		"location":  pick(r, locations),
		"jobType":   pick(r, jobTypes),
		"remote":    r.Intn(2) == 0,
		"skills":    skills(r),
		"salaryMin": minSalary,
		"salaryMax": minSalary + r.Intn(40)*1000,
		"postedAt":  date(r),
	}, domain.Float(float64(50 + r.Intn(51)))
}

func interview(r *rand.Rand, i int) (map[string]any, *float64) {
	return map[string]any{
		"candidate":   fmt.Sprintf("%s %s", pick(r, firstNames), pick(r, lastNames)),
		"position":    pick(r, titles),
		"interviewer": pick(r, interviewer),
		"stage":       pick(r, stages),
		"mode":        pick(r, modes),
		"scheduledAt": date(r),
		"round":       1 + i%3,
	}, nil
}

func application(r *rand.Rand, i int) (map[string]any, *float64) {
	first, last := pick(r, firstNames), pick(r, lastNames)
	return map[string]any{
		"candidate": first + " " + last,
		"email":     fmt.Sprintf("%s%d@example.com", strings.ToLower(first), i),
		"job":       pick(r, titles),
		"source":    pick(r, sources),
		"appliedAt": date(r),
	}, domain.Float(float64(30 + r.Intn(71)))
}

func pick(r *rand.Rand, list []string) string {
	return list[r.Intn(len(list))]
}

func skills(r *rand.Rand) []string {
	perm := r.Perm(len(skillPool))
	out := make([]string, 0, 3)
	for _, idx := range perm[:1+r.Intn(3)] {
		out = append(out, skillPool[idx])
	}
	return out
}

func date(r *rand.Rand) string {
	return epoch.Add(time.Duration(r.Intn(90*24)) * time.Hour).Format(time.RFC3339)
}

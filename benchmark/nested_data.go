package benchmark

import (
	"fmt"
	"strings"
)

// GenerateComplexJSON builds a deeply nested document —
// organizations[] -> departments[] -> teams[] -> projects[] -> tasks[] ->
// subtasks[] -> comments[] — seven levels of arrays-of-objects deep. It
// backs BenchmarkFilter and BenchmarkRecursiveDescent, which exercise
// `..tasks[?(@.hours > 10)].title` and `..commentId` against it: the
// widest and deepest paths this engine's benchmarks run.
func GenerateComplexJSON(orgCount, deptPerOrg, teamsPerDept, projectsPerTeam, tasksPerProject, subtasksPerTask int) []byte {
	var sb strings.Builder
	sb.Grow(orgCount * deptPerOrg * teamsPerDept * projectsPerTeam * 500)

	sb.WriteString(`{"version":"1.0","timestamp":"2026-01-10T00:00:00Z","organizations":[`)

	idx := 0
	for o := 0; o < orgCount; o++ {
		if o > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf(`{"orgId":%d,"orgName":"Organization %d","country":"%s","departments":[`,
			o, o, countries[o%len(countries)]))

		for d := 0; d < deptPerOrg; d++ {
			if d > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(fmt.Sprintf(`{"deptId":%d,"deptName":"Department %d","budget":%d,"teams":[`,
				d, d, 100000+(d*10000)))

			for t := 0; t < teamsPerDept; t++ {
				if t > 0 {
					sb.WriteString(",")
				}
				sb.WriteString(fmt.Sprintf(`{"teamId":%d,"teamName":"Team %d","lead":"%s","projects":[`,
					t, t, firstNames[t%len(firstNames)]))

				for p := 0; p < projectsPerTeam; p++ {
					if p > 0 {
						sb.WriteString(",")
					}
					sb.WriteString(fmt.Sprintf(`{"projectId":%d,"projectName":"Project %d","status":"%s","priority":%d,"tasks":[`,
						p, p, []string{"active", "pending", "complete"}[p%3], 1+(p%5)))

					for tk := 0; tk < tasksPerProject; tk++ {
						if tk > 0 {
							sb.WriteString(",")
						}
						sb.WriteString(fmt.Sprintf(`{"taskId":%d,"title":"Task %d","assignee":"%s %s","hours":%d,"subtasks":[`,
							tk, tk, firstNames[tk%len(firstNames)], lastNames[tk%len(lastNames)], 4+(tk%20)))

						for st := 0; st < subtasksPerTask; st++ {
							if st > 0 {
								sb.WriteString(",")
							}
							sb.WriteString(fmt.Sprintf(`{"subtaskId":%d,"description":"Subtask %d item %d","complete":%t,"comments":[`,
								st, idx, st, st%3 == 0))

							// 2-4 comments per subtask
							for c := 0; c < 2+(idx%3); c++ {
								if c > 0 {
									sb.WriteString(",")
								}
								sb.WriteString(fmt.Sprintf(`{"commentId":%d,"author":"%s","text":"Comment %d on subtask","timestamp":"2026-01-0%dT1%d:00:00Z","reactions":[{"type":"like","count":%d},{"type":"helpful","count":%d}]}`,
									c, firstNames[c%len(firstNames)], c, 1+(c%9), c%12, idx%50, idx%20))
							}
							sb.WriteString("]}")
							idx++
						}
						sb.WriteString("]}")
					}
					sb.WriteString("]}")
				}
				sb.WriteString("]}")
			}
			sb.WriteString("]}")
		}
		sb.WriteString("]}")
	}

	sb.WriteString("]}")
	return []byte(sb.String())
}

// Package benchmark generates synthetic JSON documents for measuring
// njsonpath's parse/evaluate/edit throughput, grounded on the teacher
// repo's own benchmark data generators.
package benchmark

import (
	"fmt"
	"strings"
)

var (
	firstNames = []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	cities     = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin"}
	countries  = []string{"USA", "Canada", "UK", "Germany", "France", "Australia", "Japan", "Brazil", "India", "Mexico"}
	themes     = []string{"light", "dark", "system", "custom"}
	colorSchemes = []string{"default", "ocean", "forest", "sunset", "midnight"}
)

func generateName(i int) string {
	return firstNames[i%len(firstNames)] + " " + lastNames[(i*7)%len(lastNames)]
}

func generateCity(i int) string      { return cities[i%len(cities)] }
func generateCountry(i int) string   { return countries[i%len(countries)] }
func generateTheme(i int) string     { return themes[i%len(themes)] }
func generateColorScheme(i int) string { return colorSchemes[i%len(colorSchemes)] }

// GenerateLargeJSONWithMetadata builds a flat `{"metadata":..,"users":[...]}`
// document of count user records, the shape BenchmarkFind_FastJSON,
// BenchmarkFind_GJSON, BenchmarkReplace, and BenchmarkGojqComparison
// evaluate `$.users...` paths against and BenchmarkQuickExtract reads
// `$.metadata.version` from.
func GenerateLargeJSONWithMetadata(count int) []byte {
	var sb strings.Builder
	sb.Grow(count*350 + 200)

	sb.WriteString(`{"metadata":{"generated":"2026-01-09","version":"1.0","count":`)
	sb.WriteString(fmt.Sprintf("%d", count))
	sb.WriteString(`},"users":[`)

	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(",")
		}

		user := fmt.Sprintf(`{"id":%d,"name":"%s","email":"user%d@example.com","age":%d,"active":%t,"score":%.2f,"profile":{"bio":"User %d biography with some longer text to increase size","avatar":"https://avatars.example.com/user%d.png","address":{"street":"%d Main Street","city":"%s","country":"%s","zip":"%05d"}},"settings":{"notifications":%t,"theme":"%s","language":"en","preferences":{"darkMode":%t,"fontSize":%d,"colorScheme":"%s"}}}`,
			i,
			generateName(i),
			i,
			18+(i%62),
			i%3 != 0,
			float64(50+(i%50))+float64(i%100)/100.0,
			i,
			i,
			100+(i%900),
			generateCity(i),
			generateCountry(i),
			10000+(i%90000),
			i%2 == 0,
			generateTheme(i),
			i%4 == 0,
			12+(i%8),
			generateColorScheme(i),
		)
		sb.WriteString(user)
	}

	sb.WriteString(`]}`)
	return []byte(sb.String())
}

package benchmark

import (
	"encoding/json"
	"testing"

	"github.com/dhawalhost/njsonpath"
	"github.com/dhawalhost/njsonpath/jsonvalue"
	"github.com/itchyny/gojq"
	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"
)

var smallJSON = []byte(`{"name":"John","age":30,"city":"New York","tags":["a","b","c"]}`)

var mediumJSON = GenerateLargeJSONWithMetadata(500)

var largeJSON = GenerateComplexJSON(2, 3, 2, 2, 3, 2)

// BenchmarkCompile measures parse-time cost for a representative set of
// path expressions, independent of any document.
func BenchmarkCompile(b *testing.B) {
	paths := []string{
		"$.name",
		"$.users[*].profile.address.city",
		"$..email",
		"$.users[?(@.age > 30)].name",
		"$.users[0,2,4]",
		"$.users[1:5:2]",
	}
	for _, p := range paths {
		p := p
		b.Run(p, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := njsonpath.Compile(p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFind_FastJSON measures Path.Find against a fastjson-backed
// document, the engine's primary host adapter.
func BenchmarkFind_FastJSON(b *testing.B) {
	path := njsonpath.MustCompile("$.users[*].profile.address.city")
	doc, err := jsonvalue.Parse(mediumJSON)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = path.Find(doc)
	}
}

// BenchmarkFind_GJSON measures Path.Find against a gjson-backed document
// for comparison against the fastjson path.
func BenchmarkFind_GJSON(b *testing.B) {
	path := njsonpath.MustCompile("$.users[*].profile.address.city")
	root := gjson.ParseBytes(mediumJSON)
	doc := jsonvalue.FromGJSON(root)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = path.Find(doc)
	}
}

// BenchmarkQuickExtract compares the gjson dotted-path fast path against
// running the full compiled evaluator for the plain-name case it targets.
func BenchmarkQuickExtract(b *testing.B) {
	path := njsonpath.MustCompile("$.metadata.version")
	b.Run("QuickExtract", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, ok := jsonvalue.QuickExtract(mediumJSON, path); !ok {
				b.Fatal("expected quick extract to resolve")
			}
		}
	})
	b.Run("FullEval", func(b *testing.B) {
		doc, err := jsonvalue.Parse(mediumJSON)
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = path.Find(doc)
		}
	})
}

// BenchmarkFilter measures a filter-predicate selector over a deeply
// nested document, the costliest selector kind this engine evaluates.
func BenchmarkFilter(b *testing.B) {
	path := njsonpath.MustCompile("$..tasks[?(@.hours > 10)].title")
	doc, err := jsonvalue.Parse(largeJSON)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = path.Find(doc)
	}
}

// BenchmarkRecursiveDescent measures `..` traversal cost across a wide,
// deeply nested document.
func BenchmarkRecursiveDescent(b *testing.B) {
	path := njsonpath.MustCompile("$..commentId")
	doc, err := jsonvalue.Parse(largeJSON)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = path.Find(doc)
	}
}

// BenchmarkReplace measures the edit driver's Clone+ReplaceAt cost for a
// moderately wide match set.
func BenchmarkReplace(b *testing.B) {
	path := njsonpath.MustCompile("$.users[*].active")
	doc, err := jsonvalue.Parse(mediumJSON)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		path.Replace(doc, func(njsonpath.Value) njsonpath.Replacement {
			return njsonpath.ReplaceWith(njsonpath.NewBool(true))
		})
	}
}

// BenchmarkGojqComparison runs an equivalent query through gojq, as an
// external reference point for this engine's filter-selector throughput.
func BenchmarkGojqComparison(b *testing.B) {
	var doc any
	if err := json.Unmarshal(mediumJSON, &doc); err != nil {
		b.Fatal(err)
	}
	query, err := gojq.Parse(".users[] | select(.age > 30) | .name")
	if err != nil {
		b.Fatal(err)
	}
	b.Run("gojq", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			iter := query.Run(doc)
			for {
				_, ok := iter.Next()
				if !ok {
					break
				}
			}
		}
	})
	b.Run("njsonpath", func(b *testing.B) {
		path := njsonpath.MustCompile("$.users[?(@.age > 30)].name")
		d, err := jsonvalue.Parse(mediumJSON)
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = path.Find(d)
		}
	})
}

// BenchmarkFastJSONRawParse measures the baseline parse cost beneath
// jsonvalue.Parse, isolating the engine's own overhead above it.
func BenchmarkFastJSONRawParse(b *testing.B) {
	var p fastjson.Parser
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseBytes(mediumJSON); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSmallDocument(b *testing.B) {
	path := njsonpath.MustCompile("$.tags[*]")
	doc, err := jsonvalue.Parse(smallJSON)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = path.Find(doc)
	}
}

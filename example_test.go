package njsonpath_test

import (
	"fmt"

	"github.com/dhawalhost/njsonpath"
	"github.com/dhawalhost/njsonpath/jsonvalue"
)

func ExamplePath_Find() {
	doc := []byte(`{
		"users": [
			{"name": "Alice", "age": 30},
			{"name": "Bob", "age": 25}
		]
	}`)

	d, err := jsonvalue.Parse(doc)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	path := njsonpath.MustCompile("$.users[*].name")
	for _, v := range path.Find(d) {
		fmt.Println(v.String())
	}

	// Output:
	// Alice
	// Bob
}

func ExamplePath_Replace() {
	doc := []byte(`{"users":[{"name":"Alice","age":30},{"name":"Bob","age":25}]}`)

	d, err := jsonvalue.Parse(doc)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	path := njsonpath.MustCompile("$.users[?(@.age < 30)].age")
	edited := path.Replace(d, func(njsonpath.Value) njsonpath.Replacement {
		return njsonpath.ReplaceWith(njsonpath.NewInt(26))
	})

	for _, v := range njsonpath.MustCompile("$.users[*].age").Find(edited) {
		fmt.Println(v.Int())
	}

	// Output:
	// 30
	// 26
}

package query_test

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-query/query"
	"github.com/hasbyte1/go-laravel-query/record"
)

func ExampleFrom() {
	q, _ := query.From([]record.Record{
		{"id": 1, "age": 30},
		{"id": 2, "age": 20},
	})
	fmt.Println(q.Count())
	// Output: 2
}

func ExampleQuery_Where() {
	q, _ := query.From([]record.Record{
		{"id": 1, "age": 30},
		{"id": 2, "age": 20},
		{"id": 3, "age": 20},
	})
	twenties, _ := q.Where("age", query.OpEqual, 20)
	total, _ := twenties.Sum("age")
	fmt.Println(twenties.Count(), total)
	// Output: 2 40
}

func ExampleQuery_Select() {
	q, _ := query.From([]record.Record{
		{"id": 1, "name": "Alice", "age": 30},
		{"id": 2, "name": "Bob", "age": 20},
	})
	fmt.Println(q.Select("id").All())
	// Output: [map[id:1] map[id:2]]
}

func ExampleQuery_Paginate() {
	q, _ := query.From([]record.Record{
		{"id": 1}, {"id": 2}, {"id": 3}, {"id": 4}, {"id": 5},
	})
	page, _ := q.Paginate(2, 2)
	fmt.Println(page.All())
	// Output: [map[id:3] map[id:4]]
}

func ExampleQuery_KeyBy() {
	q, _ := query.From([]record.Record{
		{"id": 1, "name": "Alice"},
		{"id": 2, "name": "Bob"},
	})
	byID := q.KeyBy("id")
	fmt.Println(byID["2"]["name"])
	// Output: Bob
}

func ExampleQuery_First() {
	q := query.Empty[record.Record]()
	if _, ok := q.First(); !ok {
		fmt.Println("no records")
	}
	// Output: no records
}

func ExampleOperators() {
	for _, op := range query.Operators()[:3] {
		fmt.Println(op)
	}
	// Output:
	// =
	// !=
	// <
}

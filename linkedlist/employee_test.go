package linkedlist

import "fmt"

type employee struct {
	fname string
	lname string
	age   int
}

func (e employee) Field(name string) (any, bool) {
	switch name {
	case "fname":
		return e.fname, true
	case "lname":
		return e.lname, true
	case "age":
		return e.age, true
	}
	return nil, false
}

func (e employee) String() string {
	return fmt.Sprintf("Employee: %s %s, Age: %d", e.fname, e.lname, e.age)
}

func employees() []any {
	return []any{
		employee{fname: "Dan", lname: "McGonigle", age: 33},
		employee{fname: "Dan", lname: "McGonigle", age: 71},
		employee{fname: "Buster", lname: "Rodriguez", age: 4},
		employee{fname: "Desiree", lname: "Pombo", age: 36},
		employee{fname: "Cora", lname: "Loo", age: 8},
	}
}

func ages(list *OrderedSinglyLinkedList) []int {
	result := []int{}
	for _, item := range list.All() {
		result = append(result, item.(employee).age)
	}
	return result
}

package serializer_test

import (
	"fmt"

	serializer "github.com/tarantool/go-serializer"
	"github.com/tarantool/go-serializer/codec"
)

func ExampleSerialize() {
	type Person struct {
		Name string `xml:"name"`
		Age  int    `xml:"age"`
	}

	text, err := serializer.Serialize(Person{Name: "Ada", Age: 37}, serializer.XML, codec.WithIndent("", "  "))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(text)
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <Person>
	//   <name>Ada</name>
	//   <age>37</age>
	// </Person>
}

func ExampleDeserialize() {
	type Person struct {
		Name string `xml:"name"`
		Age  int    `xml:"age"`
	}

	text, err := serializer.Serialize(Person{Name: "Ada", Age: 37}, serializer.Binary)
	if err != nil {
		fmt.Println(err)
		return
	}

	person, err := serializer.Deserialize[Person](text, serializer.Binary)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s is %d\n", person.Name, person.Age)
	// Output:
	// Ada is 37
}

func ExampleSerializer_Serialize_unknownFormat() {
	_, err := serializer.New().Serialize("value", serializer.Format(7))
	fmt.Println(err)
	// Output:
	// invalid argument: invalid formatter option Format(7)
}

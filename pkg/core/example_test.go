/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: example_test.go
Description: Runnable examples of the engine flow.
*/

package core_test

import (
	"fmt"

	"github.com/kleascm/mentor/pkg/core"
	"github.com/kleascm/mentor/pkg/model"
)

func ExampleEngine_Generate() {
	engine, err := core.NewEngine(nil, nil)
	if err != nil {
		panic(err)
	}
	m, err := engine.LoadBytes([]byte("kind: re\nalphabet: ab\nregex: \"a*b\"\n"), 0)
	if err != nil {
		panic(err)
	}
	words, err := engine.Generate(m, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(words)
	// Output: [b ab aab aaab]
}

func ExampleEngine_Compare() {
	engine, err := core.NewEngine(nil, nil)
	if err != nil {
		panic(err)
	}
	left, _ := engine.LoadBytes([]byte("alphabet: ab\nregex: \"a*b\"\n"), model.KindRE)
	right, _ := engine.LoadBytes([]byte("alphabet: ab\nregex: \"(a|b)*b\"\n"), model.KindRE)

	res, err := engine.Compare(left, right)
	if err != nil {
		panic(err)
	}
	fmt.Println(res)
	// Output: not equivalent (witness "bb")
}

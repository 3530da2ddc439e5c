package main

import (
	"errors"
	"fmt"

	"github.com/henderiw/rangeindex/pkg/interval"
)

type value struct {
	from  int64
	to    int64
	value string
}

var basic = []value{
	{from: 1, to: 10, value: "a"},
	{from: 10, to: 20, value: "b"},
	{from: 20, to: 30, value: "c"},
}

var advanced = []value{
	{from: -10, to: -5, value: "r"},
	{from: -5, to: -2, value: "q"},
	{from: -2, to: 1, value: "z"},
	{from: 1, to: 4, value: "x"},
	{from: 4, to: 7, value: "f"},
	{from: 7, to: 10, value: "a"},
	{from: 10, to: 16, value: "e"},
	{from: 16, to: 20, value: "t"},
}

func main() {
	run("basic", basic, 1, 15, 20, 30)
	run("advanced", advanced, 2, -9, -2, 10, 17, 20)
}

func run(name string, values []value, points ...int64) {
	ranges := make([]*interval.Range[string], 0, len(values))
	for _, v := range values {
		r, err := interval.NewRange(v.from, v.to, v.value)
		if err != nil {
			panic(err)
		}
		ranges = append(ranges, r)
	}

	idx, err := interval.NewLeftClosed(ranges)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s: %d ranges, height %d\n", name, idx.Size(), idx.Height())

	for _, point := range points {
		v, err := idx.Find(point)
		var nf *interval.PointNotFoundError
		if errors.As(err, &nf) {
			fmt.Printf("number %d was not found\n", nf.Point)
			continue
		}
		fmt.Printf("number %d was found and the value is %q\n", point, v)
	}
}

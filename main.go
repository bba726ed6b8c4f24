package main

import "github.com/dch42/calcount/cmd/calcount"

func main() {
	calcount.Execute()
}

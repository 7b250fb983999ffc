package main

import (
	"github.com/andriyanf/kasresto/app"
)

func main() {
	app.Run()
}

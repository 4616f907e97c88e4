package main

import (
	"github.com/mergington/activities/cmd/app"
)

func main() {
	app.Run()
}

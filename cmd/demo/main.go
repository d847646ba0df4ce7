package main

import (
	"github.com/ilindan-dev/notification-dispatch/internal/app"
	"go.uber.org/fx"
)

// main runs the channel-switching demo and exits when it completes.
func main() {
	fx.New(app.DemoModule).Run()
}

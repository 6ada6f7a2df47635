package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/SlipperySkater/clippy-ai-agent/internal/agent"
	"github.com/SlipperySkater/clippy-ai-agent/internal/config"
	"github.com/SlipperySkater/clippy-ai-agent/internal/controller"
	"github.com/SlipperySkater/clippy-ai-agent/internal/logging"
	"github.com/SlipperySkater/clippy-ai-agent/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.slipperyskater.clippy-ai-agent"
	AppName = "Clippy"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	logging.Init(settings.GetVerboseLogs())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowMinWidth, ui.WindowMinHeight))

	root := ui.NewRootUI(myWindow, myApp)

	runner := controller.NewRunner(root, logging.WithComponent("runner"))
	ctrl := controller.New(agentFactory, root, runner, root.LogSink())
	root.AttachController(ctrl)

	// Cancel in-flight work and release the agent before the window goes
	myWindow.SetCloseIntercept(func() {
		runner.Shutdown()
		ctrl.Close()
		myWindow.Close()
	})

	myWindow.ShowAndRun()
}

// agentFactory builds the real agent for a config path
func agentFactory(configPath string) (agent.Agent, error) {
	return agent.New(configPath)
}

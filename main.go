package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/roffe/columnchart/pkg/calendar"
	"github.com/roffe/columnchart/pkg/config"
	"github.com/roffe/columnchart/pkg/eventbus"
	"github.com/roffe/columnchart/pkg/performance"
	"github.com/roffe/columnchart/pkg/theme"
	"github.com/roffe/columnchart/pkg/viewmodel"
	"github.com/roffe/columnchart/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Println(err)
	}
	var configFile string
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal(err)
	}

	dao, closeDAO, err := cfg.OpenDAO()
	if err != nil {
		log.Fatal(err)
	}
	defer closeDAO()

	bus := eventbus.New[viewmodel.UiState](nil)
	defer bus.Close()
	vm := viewmodel.New(performance.NewRepository(dao, cfg.PerformanceConfig()), bus)

	a := app.NewWithID("com.roffe.columnchart")
	a.Settings().SetTheme(&theme.ChartTheme{})

	mw, err := windows.NewMainWindow(a, cfg, vm, calendar.System())
	if err != nil {
		log.Fatal(err)
	}
	mw.SetMaster()
	mw.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height+40))
	a.Lifecycle().SetOnStarted(mw.Load)
	mw.ShowAndRun()
}

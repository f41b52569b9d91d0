package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/widgets/caltime"
	"github.com/OpticalFlyer/widgets/hsva"
	"github.com/OpticalFlyer/widgets/theme"
	"github.com/OpticalFlyer/widgets/ui"
	"github.com/OpticalFlyer/widgets/ulog"
)

const (
	initialWidth  = 800
	initialHeight = 600
	toolbarHeight = 44
)

// Demo showcases the picker widgets: three trigger buttons, each opening an
// anchored overlay editing a committed value the demo owns.
type Demo struct {
	ui      *ui.Controller
	theme   *theme.Theme
	toolbar *ui.Toolbar

	screenWidth  int
	screenHeight int

	// Committed values, written only when a picker commits.
	date caltime.Date
	tm   caltime.Time
	col  hsva.Value

	debugMode bool
}

func (d *Demo) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.debugMode = !d.debugMode
	}
	return d.ui.Update()
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA(d.theme.Background))

	// Echo the committed values below the toolbar.
	status := fmt.Sprintf("date: %04d-%02d-%02d   time: %02d:%02d:%02d %s   color: hsva(%.0f, %.2f, %.2f, %.2f)",
		d.date.Year, d.date.Month, d.date.Day,
		d.tm.Hour12(), d.tm.Minute, d.tm.Second, d.tm.Meridiem(),
		d.col.H, d.col.S, d.col.V, d.col.A)
	ebitenutil.DebugPrintAt(screen, status, 12, toolbarHeight+16)

	// Committed color swatch.
	vector.DrawFilledRect(screen, 12, toolbarHeight+40, 48, 48, d.col.NRGBA(), true)
	vector.StrokeRect(screen, 12, toolbarHeight+40, 48, 48, 1,
		color.RGBA(d.theme.Border), true)

	// The controller draws the widgets, then dims everything and draws the
	// overlay on top while a picker is open.
	d.ui.Draw(screen)

	if d.debugMode {
		d.ui.ShowDebugInfo(screen)
	}
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.screenWidth = outsideWidth
	d.screenHeight = outsideHeight
	d.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	d.toolbar.SetWidth(float64(outsideWidth))
	return outsideWidth, outsideHeight
}

func main() {
	themePath := flag.String("theme", "", "path to a YAML theme file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		ulog.SetLevel(ulog.LevelDebug)
	}

	th := theme.Default()
	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			log.Fatal(err)
		}
		th = loaded
		ulog.Info("theme loaded", "path", *themePath)
	}

	controller := ui.NewController(th)

	now := time.Now()
	demo := &Demo{
		ui:    controller,
		theme: th,
		date:  caltime.NewDate(now.Year(), int(now.Month()), now.Day()),
		tm:    caltime.NewTime(now.Hour(), now.Minute(), now.Second()),
		col:   hsva.New(210, 0.75, 0.9, 1),
	}

	toolbar := ui.NewToolbar(0, 0, initialWidth, toolbarHeight, th)
	controller.AddWidget(toolbar)
	demo.toolbar = toolbar

	var dateBtn, timeBtn, colorBtn *ui.Button
	toolbar.AddNext(110, func(x, y, w, h float64) ui.Component {
		dateBtn = ui.NewButton(x, y, w, h, "Pick date...", th, func() {
			session := ui.NewDateSession(&demo.date, time.Sunday, th, func(v caltime.Date) {
				ulog.Info("date committed", "year", v.Year, "month", v.Month, "day", v.Day)
			})
			controller.OpenOverlay(session, dateBtn.ScreenBounds())
		})
		return dateBtn
	})

	toolbar.AddNext(110, func(x, y, w, h float64) ui.Component {
		timeBtn = ui.NewButton(x, y, w, h, "Pick time...", th, func() {
			session := ui.NewTimeSession(&demo.tm, true, th, func(v caltime.Time) {
				ulog.Info("time committed", "hour", v.Hour, "minute", v.Minute, "second", v.Second)
			})
			controller.OpenOverlay(session, timeBtn.ScreenBounds())
		})
		return timeBtn
	})

	toolbar.AddNext(110, func(x, y, w, h float64) ui.Component {
		colorBtn = ui.NewButton(x, y, w, h, "Pick color...", th, func() {
			session := ui.NewColorSession(&demo.col, th, func(v hsva.Value) {
				ulog.Info("color committed", "h", v.H, "s", v.S, "v", v.V, "a", v.A)
			})
			controller.OpenOverlay(session, colorBtn.ScreenBounds())
		})
		return colorBtn
	})

	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Widgets")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}

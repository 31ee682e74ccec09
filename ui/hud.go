// Package ui holds the ebitenui screens drawn over the game world.
package ui

import (
	"image/color"
	"math"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// barResolution is the progress bar maximum; fills are mapped onto [0, barResolution].
const barResolution = 1000

const (
	barWidth  = 130
	barHeight = 9
)

// HUD shows the character's health and mana bars in the top-left corner.
type HUD struct {
	UI *ebitenui.UI

	health *widget.ProgressBar
	mana   *widget.ProgressBar
	face   text.Face
}

// NewHUD builds the bar widgets.
func NewHUD() *HUD {
	h := &HUD{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
	h.buildUI()
	return h
}

func (h *HUD) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(6, 4),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.health = h.addBar(panel, "HP", cfg.Green)
	h.mana = h.addBar(panel, "MP", cfg.Blue)

	root.AddChild(panel)
	h.UI = &ebitenui.UI{Container: root}
}

func (h *HUD) addBar(panel *widget.Container, label string, fill color.Color) *widget.ProgressBar {
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(label, &h.face, cfg.White),
	))

	bar := widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(barWidth, barHeight),
		),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: image.NewNineSliceColor(cfg.DarkGray)},
			&widget.ProgressBarImage{Idle: image.NewNineSliceColor(fill)},
		),
		widget.ProgressBarOpts.Values(0, barResolution, barResolution),
	)
	panel.AddChild(bar)
	return bar
}

// Sync copies the fill amounts written by the resource system into the bars.
func (h *HUD) Sync(data components.HUDData) {
	h.health.SetCurrent(BarValue(data.HealthFill))
	h.mana.SetCurrent(BarValue(data.ManaFill))
}

func (h *HUD) Update() {
	h.UI.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

// BarValue maps a fill amount in [0, 1] onto the bar's integer range.
func BarValue(fill float64) int {
	if math.IsNaN(fill) {
		return 0
	}
	fill = math.Max(0, math.Min(1, fill))
	return int(math.Round(fill * barResolution))
}

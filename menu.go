package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

var (
	menuBackground = color.RGBA{0x18, 0x1a, 0x1c, 0xff}
	buttonIdle     = color.RGBA{0x32, 0x36, 0x38, 0xff}
	buttonHover    = color.RGBA{0x50, 0x58, 0x5c, 0xff}
	buttonPressed  = color.RGBA{0x20, 0x22, 0x24, 0xff}
	titleColor     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

type menuAction struct {
	label   string
	handler func()
}

// newMenu builds a centered column with a title, a subtitle and one button
// per action. A nil background leaves the screen underneath visible.
func newMenu(f *fonts, background color.Color, title, subtitle string, actions ...menuAction) *ebitenui.UI {
	rootOpts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	}
	if background != nil {
		rootOpts = append(rootOpts, widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(background)))
	}
	root := widget.NewContainer(rootOpts...)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(18),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(column)

	column.AddChild(menuText(title, f.title, titleColor))
	if subtitle != "" {
		column.AddChild(menuText(subtitle, f.menu, hudColor))
	}
	for _, a := range actions {
		column.AddChild(menuButton(a, f.menu))
	}

	return &ebitenui.UI{Container: root}
}

func menuText(label string, face font.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
}

func menuButton(a menuAction, face font.Face) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    uiimage.NewNineSliceColor(buttonIdle),
			Hover:   uiimage.NewNineSliceColor(buttonHover),
			Pressed: uiimage.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(a.label, face, &widget.ButtonTextColor{
			Idle: hudColor,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{Left: 40, Right: 40, Top: 10, Bottom: 10}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			a.handler()
		}),
	)
}

func (g *Game) buildMenus() {
	g.homeMenu = newMenu(g.fonts, menuBackground,
		"maze 3d", "find the golden goal",
		menuAction{"Play", g.startPlaying},
		menuAction{"Quit", g.quit},
	)
	g.victoryMenu = newMenu(g.fonts, nil,
		"you found it!", "",
		menuAction{"Play again", g.startPlaying},
		menuAction{"Quit", g.quit},
	)
}

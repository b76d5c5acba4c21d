// internal/ui/gold_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/event"
)

// GoldIndicator отображает запас золота. Обновляется событием GoldChanged,
// чтобы не дергать игру каждый кадр.
type GoldIndicator struct {
	X, Y     int
	fontFace font.Face
	gold     int
}

// NewGoldIndicator создает индикатор и подписывает его на события экономики.
func NewGoldIndicator(x, y int, face font.Face, dispatcher *event.Dispatcher, startingGold int) *GoldIndicator {
	gi := &GoldIndicator{X: x, Y: y, fontFace: face, gold: startingGold}
	dispatcher.Subscribe(event.GoldChanged, gi)
	return gi
}

// OnEvent принимает новое значение золота.
func (gi *GoldIndicator) OnEvent(e event.Event) {
	if gold, ok := e.Data.(int); ok {
		gi.gold = gold
	}
}

// Draw отрисовывает индикатор.
func (gi *GoldIndicator) Draw(screen *ebiten.Image) {
	text.Draw(screen, strconv.Itoa(gi.gold)+"g", gi.fontFace, gi.X, gi.Y, config.UIGoldColor)
}

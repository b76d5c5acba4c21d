// internal/ui/base_health_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-grid-defense/internal/config"
)

const (
	healthCols          = 4
	healthCircleRadius  = 8.0
	healthCircleSpacing = 4.0
)

// BaseHealthIndicator отображает здоровье базы сеткой кружков.
type BaseHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewBaseHealthIndicator создает новый индикатор здоровья базы.
func NewBaseHealthIndicator(x, y float32, face font.Face) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y, fontFace: face}
}

// Draw рисует сетку кружков: заполненные — оставшееся здоровье.
func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if health < 0 {
		health = 0
	}

	for j := 0; j < maxHealth; j++ {
		row := j / healthCols
		col := j % healthCols

		cx := i.X + float32(col)*(healthCircleRadius*2+healthCircleSpacing) + healthCircleRadius
		cy := i.Y + float32(row)*(healthCircleRadius*2+healthCircleSpacing) + healthCircleRadius

		clr := config.UIEmptyColor
		if j < health {
			clr = config.UIHealthColor
		}
		vector.DrawFilledCircle(screen, cx, cy, healthCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, healthCircleRadius, 1, config.UIStrokeColor, true)
	}

	// Текстовое отображение здоровья над сеткой.
	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, i.fontFace, int(i.X), int(i.Y)-6, config.TextLightColor)
}

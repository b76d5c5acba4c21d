// cmd/game/main.go
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/ui"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
	"go-grid-defense/pkg/render"
)

const defsDir = "assets/defs"

type AppGame struct {
	game           *app.Game
	renderer       *render.Renderer
	waveIndicator  *ui.WaveIndicator
	goldIndicator  *ui.GoldIndicator
	baseIndicator  *ui.BaseHealthIndicator
	reloads        <-chan string
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	// Горячая перезагрузка балансных таблиц: применяем строго на тике
	// симуляции, чтобы не трогать общие карты из чужой горутины.
	select {
	case path := <-a.reloads:
		if err := defs.LoadClassDefinitions(path); err != nil {
			logrus.WithError(err).Warn("definition reload failed, keeping old values")
		}
	default:
	}

	a.game.Update(deltaTime)
	a.renderer.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.game.Enemies())
	a.waveIndicator.Draw(screen, a.game.Wave())
	a.goldIndicator.Draw(screen)
	a.baseIndicator.Draw(screen, a.game.BaseHealth(), config.BaseHealth)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// watchDefs следит за каталогом определений и шлет пути измененных JSON.
func watchDefs(dir string) <-chan string {
	ch := make(chan string, 1)
	if _, err := os.Stat(dir); err != nil {
		logrus.WithField("dir", dir).Info("no defs directory, hot reload disabled")
		return ch
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.WithError(err).Warn("fsnotify unavailable, hot reload disabled")
		return ch
	}
	if err := watcher.Add(dir); err != nil {
		logrus.WithError(err).Warn("cannot watch defs directory")
		watcher.Close()
		return ch
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Write|fsnotify.Create) && filepath.Ext(ev.Name) == ".json" {
					select {
					case ch <- ev.Name:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.WithError(err).Warn("defs watcher error")
			}
		}
	}()
	return ch
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	enemiesPath := filepath.Join(defsDir, "enemies.json")
	if _, err := os.Stat(enemiesPath); err == nil {
		if err := defs.LoadClassDefinitions(enemiesPath); err != nil {
			logrus.WithError(err).Warn("using built-in enemy definitions")
		}
	}

	gameMap := grid.NewGrid(config.GridWidth, config.GridHeight)
	provider := grid.NewProvider(gameMap, config.PathProviderDelayMS*time.Millisecond)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(0)

	game := app.NewGame(provider, dispatcher, rng,
		gameMap.EntryPosition(config.GroundHeight), gameMap.ExitWaypoint())
	game.StartWave(1)

	face := basicfont.Face7x13
	appGame := &AppGame{
		game:           game,
		renderer:       render.NewRenderer(gameMap, dispatcher),
		waveIndicator:  ui.NewWaveIndicator(config.ScreenWidth/2, config.IndicatorOffsetY, face),
		goldIndicator:  ui.NewGoldIndicator(config.ScreenWidth-config.IndicatorOffsetX-60, config.IndicatorOffsetY, face, dispatcher, game.Gold()),
		baseIndicator:  ui.NewBaseHealthIndicator(config.IndicatorOffsetX, config.IndicatorOffsetY, face),
		reloads:        watchDefs(defsDir),
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		logrus.Fatal(err)
	}
}

// internal/app/wave.go
package app

import (
	"github.com/sirupsen/logrus"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/event"
)

// StartWave запускает волну с данным номером: обнуляет таймеры спавна и
// решает, будет ли в волне босс.
func (g *Game) StartWave(waveNumber int) {
	g.wave = waveNumber
	g.enemiesToSpawn = config.InitialEnemiesPerWave + (waveNumber-1)*config.EnemiesIncrementPerWave
	g.bossToSpawn = waveNumber%config.BossWaveInterval == 0
	g.spawnTimer = 0
	g.wavePause = 0

	logrus.WithFields(logrus.Fields{"wave": waveNumber, "enemies": g.enemiesToSpawn, "boss": g.bossToSpawn}).
		Info("wave started")
	g.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveNumber})
}

func (g *Game) updateWave(deltaTime float64) {
	if g.wavePause > 0 {
		g.wavePause -= deltaTime
		if g.wavePause <= 0 {
			g.StartWave(g.wave + 1)
		}
		return
	}

	if g.enemiesToSpawn > 0 || g.bossToSpawn {
		g.spawnTimer += deltaTime
		if g.spawnTimer >= config.SpawnInterval {
			g.spawnEnemy()
			g.spawnTimer = 0
		}
		return
	}

	// Волна выпущена целиком и зачищена — пауза перед следующей.
	if g.wave > 0 && len(g.enemies) == 0 {
		g.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: g.wave})
		g.wavePause = config.WavePauseDuration
	}
}

// spawnEnemy выпускает одного врага у входа. Босс идет первым в своей волне,
// остальные классы выбираются взвешенно по таблице спавна.
func (g *Game) spawnEnemy() {
	var class defs.Class
	if g.bossToSpawn {
		class = defs.ClassBoss
		g.bossToSpawn = false
	} else {
		class = g.rng.ChooseClass(defs.SpawnTable, g.wave)
		g.enemiesToSpawn--
	}
	element := g.rng.ChooseElement(defs.Elements)

	id := g.nextID
	g.nextID++

	pos := g.entry
	e := enemy.New(id, enemy.Deps{
		PathProvider: g.provider,
		Combat:       g,
		Economy:      g,
	}, &pos, class, g.wave, element)
	e.SetTargetPosition(g.exit)

	g.enemies[id] = e
	g.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

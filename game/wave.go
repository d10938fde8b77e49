package game

import "log"

// minSpawnInterval bounds how fast late waves can insert enemies.
const minSpawnInterval = 0.1

// Wave is one batch of enemies inserted into the world over time. The whole
// roster is built on Start; two timers then insert one asteroid or one UFO
// each time they fire.
type Wave struct {
	Number       int
	NumAsteroids int
	NumUFOs      int

	cfg WaveConfig

	asteroids []*Entity
	ufos      []*Entity

	asteroidTimer float64
	ufoTimer      float64
	started       bool
}

// NewWave creates a wave with base target counts. Start adds the random bonus.
func NewWave(cfg WaveConfig, number, numAsteroids, numUFOs int) *Wave {
	return &Wave{
		Number:       number,
		NumAsteroids: numAsteroids,
		NumUFOs:      numUFOs,
		cfg:          cfg,
	}
}

// Start rolls the final counts, builds the roster and arms both timers.
func (wv *Wave) Start(w *World) {
	rng := w.Rand()
	wv.NumAsteroids += rng.IntRange(0, wv.cfg.StartBonus)
	wv.NumUFOs += rng.IntRange(0, wv.cfg.StartBonus)

	wv.asteroids = make([]*Entity, 0, wv.NumAsteroids)
	for i := 0; i < wv.NumAsteroids; i++ {
		wv.asteroids = append(wv.asteroids, w.NewAsteroid())
	}
	wv.ufos = make([]*Entity, 0, wv.NumUFOs)
	for i := 0; i < wv.NumUFOs; i++ {
		wv.ufos = append(wv.ufos, w.NewUFO())
	}

	wv.asteroidTimer = wv.interval(rng)
	wv.ufoTimer = wv.interval(rng)
	wv.started = true
}

// interval draws the next timer period. It shrinks with the wave number.
func (wv *Wave) interval(rng *Rand) float64 {
	d := rng.Range(wv.cfg.MinInterval, wv.cfg.MaxInterval) - float64(wv.Number)*wv.cfg.IntervalStep
	return max(d, minSpawnInterval)
}

// Update counts both timers down and inserts at most one enemy per fired timer.
func (wv *Wave) Update(w *World, dt float64) {
	if !wv.started {
		return
	}
	if len(wv.asteroids) > 0 {
		wv.asteroidTimer -= dt
		if wv.asteroidTimer <= 0 {
			e := wv.asteroids[0]
			wv.asteroids = wv.asteroids[1:]
			w.SpawnAsteroid(e)
			wv.asteroidTimer = wv.interval(w.Rand())
		}
	}
	if len(wv.ufos) > 0 {
		wv.ufoTimer -= dt
		if wv.ufoTimer <= 0 {
			e := wv.ufos[0]
			wv.ufos = wv.ufos[1:]
			w.SpawnUFO(e, Edge(w.Rand().Intn(int(edgeCount))))
			wv.ufoTimer = wv.interval(w.Rand())
		}
	}
}

// Remaining returns how many asteroids and UFOs are still waiting to be inserted.
func (wv *Wave) Remaining() (asteroids, ufos int) {
	return len(wv.asteroids), len(wv.ufos)
}

// Complete reports whether every enemy of the wave has been inserted.
// Inserted enemies may still be alive.
func (wv *Wave) Complete() bool {
	return wv.started && len(wv.asteroids) == 0 && len(wv.ufos) == 0
}

// WaveSystem runs waves back to back. The next wave starts on the frame the
// current one completes, so enemies of consecutive waves can share the field.
type WaveSystem struct {
	cfg     WaveConfig
	current *Wave
}

// NewWaveSystem prepares wave 0 with the configured base counts.
func NewWaveSystem(cfg WaveConfig) *WaveSystem {
	return &WaveSystem{
		cfg:     cfg,
		current: NewWave(cfg, 0, cfg.FirstAsteroids, cfg.FirstUFOs),
	}
}

// Number returns the current wave number.
func (ws *WaveSystem) Number() int {
	return ws.current.Number
}

// Current returns the running wave.
func (ws *WaveSystem) Current() *Wave {
	return ws.current
}

// Start starts the current wave.
func (ws *WaveSystem) Start(w *World) {
	ws.current.Start(w)
	log.Printf("[%s] wave %d started: %d asteroids, %d ufos",
		w.RunID, ws.current.Number, ws.current.NumAsteroids, ws.current.NumUFOs)
}

// Update advances the current wave and starts the next one once it has
// inserted everything.
func (ws *WaveSystem) Update(w *World, dt float64) {
	ws.current.Update(w, dt)
	if !ws.current.Complete() {
		return
	}
	n := ws.current.Number + 1
	log.Printf("[%s] wave %d fully deployed", w.RunID, ws.current.Number)
	ws.current = NewWave(ws.cfg, n, ws.TargetCount(w.Rand(), n), ws.TargetCount(w.Rand(), n))
	ws.Start(w)
}

// TargetCount returns the base enemy count of wave n: a quadratic in n plus a
// small uniform bonus.
func (ws *WaveSystem) TargetCount(rng *Rand, n int) int {
	return waveQuota(n) + rng.IntRange(0, ws.cfg.CountBonus)
}

func waveQuota(n int) int {
	k := float64(n + 4)
	return int(0.5*k*k + 0.5*k)
}

package sim

import (
	"math"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/route"
)

// slowApp is a per-tick slow accumulator entry. Simultaneous applications
// merge to the strongest factor (minimum) and the longest duration.
type slowApp struct {
	Factor   float64
	Duration float64
}

// Advance runs one simulation tick of dt seconds and returns the next
// state. The input state is never modified. If the match is over or dt is
// not positive, the input is returned unchanged.
//
// The step order below is load-bearing: spawning sees last tick's world,
// towers see post-movement enemies, projectiles resolve against the same
// post-movement positions, damage applies once, and the loss check
// suppresses wave advancement within the same tick.
func Advance(prev State, dt float64) State {
	if prev.Status != StatusRunning || dt <= 0 {
		return prev
	}

	s := prev.clone()
	s.RecentEvents = nil
	s.Beams = nil
	s.Time += dt

	s.stepSpawns(dt)
	s.stepMovement(dt)

	// Per-tick accumulators, discarded after the damage pass.
	damage := make(map[string]float64)
	slows := make(map[string]slowApp)

	s.stepTowers(dt, damage, slows)
	s.stepProjectiles(dt, damage, slows)
	s.stepDamage(damage, slows)

	if s.Lives <= 0 {
		s.Lives = 0
		s.Status = StatusLost
		s.emit(EventLost, "")
	} else {
		s.stepWaves()
	}

	s.stepEffects(dt)
	return s
}

// stepSpawns works through the current wave's schedule. The inter-spawn
// timer is a while-loop so a large dt spawns every enemy it covers in one
// tick, each with its own event and effect.
func (s *State) stepSpawns(dt float64) {
	wave, ok := s.CurrentWave()
	if !ok || s.Spawned >= wave.Count {
		return
	}

	if s.WaveDelay > 0 {
		s.WaveDelay -= dt
		if s.WaveDelay < 0 {
			s.WaveDelay = 0
		}
		return
	}

	s.SpawnTimer -= dt
	for s.SpawnTimer <= 0 && s.Spawned < wave.Count {
		s.spawnEnemy(wave.EnemyType)
		s.Spawned++
		s.SpawnTimer += wave.SpawnInterval
	}
	if s.Spawned >= wave.Count {
		s.SpawnTimer = 0
	}
}

func (s *State) spawnEnemy(typeID string) {
	arch := content.Enemy(typeID)
	e := Enemy{
		ID:         s.mintEnemyID(),
		Type:       arch.ID,
		Shape:      arch.Shape,
		Color:      arch.Color,
		Radius:     arch.Radius,
		Speed:      arch.Speed,
		Reward:     arch.Reward,
		CoreDamage: arch.CoreDamage,
		MaxHealth:  arch.MaxHealth,
		Health:     float64(arch.MaxHealth),
		Progress:   0,
		Pos:        s.gameMap.Route().Start(),
		SlowFactor: 1,
	}
	s.Enemies = append(s.Enemies, e)
	s.addEffect(Effect{
		Kind:        EffectSpawn,
		Pos:         e.Pos,
		Duration:    0.4,
		StartRadius: 0.2,
		EndRadius:   0.7,
		Color:       arch.Color,
	})
	s.emit(EventSpawn, "")
}

// stepMovement decays slow status and advances every enemy along the
// route. An enemy whose progress crosses the route total reaches the core:
// lives are debited by its core damage and it is removed with no reward
// and no death effect.
func (s *State) stepMovement(dt float64) {
	r := s.gameMap.Route()
	total := r.Total()

	out := s.Enemies[:0:0]
	for _, e := range s.Enemies {
		if e.SlowRemaining > 0 {
			e.SlowRemaining -= dt
			if e.SlowRemaining <= 0 {
				e.SlowRemaining = 0
				e.SlowFactor = 1
			}
		}

		e.Progress += e.Speed * e.SlowFactor * dt
		if e.Progress >= total {
			s.Lives -= e.CoreDamage
			s.emit(EventLeak, "")
			continue
		}
		e.Pos = r.Sample(e.Progress)
		out = append(out, e)
	}
	s.Enemies = out
}

// stepTowers runs targeting and firing for every tower against the
// post-movement enemy set. Beam towers deal continuous damage and rebuild
// their beam record every tick; other kinds launch projectiles on cooldown.
func (s *State) stepTowers(dt float64, damage map[string]float64, slows map[string]slowApp) {
	for i := range s.Towers {
		t := &s.Towers[i]
		arch := content.Tower(t.Type)
		stats := content.Stats(arch, t.Level, s.Balance)

		if t.Cooldown > 0 {
			t.Cooldown -= dt
			if t.Cooldown < 0 {
				t.Cooldown = 0
			}
		}

		target := s.selectTarget(t.Pos(), stats.Range, t.Mode)
		if target == nil {
			// Keep the last aim angle so the turret doesn't snap on render.
			continue
		}
		t.AimAngle = angleTo(t.Pos(), target.Pos)

		switch arch.Kind {
		case content.AttackBeam:
			// Damage is continuous and unthrottled; the fire event is paced
			// by the beam event interval to avoid audio spam.
			damage[target.ID] += float64(stats.Damage) * dt
			s.Beams = append(s.Beams, Beam{
				TowerID:   t.ID,
				TowerType: t.Type,
				From:      t.Pos(),
				To:        target.Pos,
				Color:     arch.Color,
			})
			if t.Cooldown <= 0 {
				s.emit(EventFire, t.Type)
				t.Cooldown = s.Balance.BeamEventInterval
			}

		case content.AttackDirect, content.AttackSplash, content.AttackSlow:
			if t.Cooldown > 0 {
				continue
			}
			p := Projectile{
				ID:        s.mintProjectileID(),
				TowerID:   t.ID,
				TowerType: t.Type,
				Kind:      arch.Kind,
				TargetID:  target.ID,
				Damage:    stats.Damage,
				Speed:     stats.ProjectileSpeed,
				Pos:       t.Pos(),
				Radius:    0.15,
				Color:     arch.Color,
			}
			if arch.Kind == content.AttackSplash {
				p.SplashRadius = arch.SplashRadius
			}
			if arch.Kind == content.AttackSlow {
				p.SlowFactor = arch.SlowFactor
				p.SlowDuration = arch.SlowDuration
			}
			s.Projectiles = append(s.Projectiles, p)
			s.emit(EventFire, t.Type)
			t.Cooldown = 1.0 / stats.FireRate
		}
	}
}

// selectTarget picks an enemy within range according to the target mode.
// Comparison uses squared distances. Ties resolve deterministically: only a
// strictly better candidate replaces the incumbent, so enemy id order (the
// slice order) breaks exact ties.
func (s *State) selectTarget(from route.Vec, rng float64, mode TargetMode) *Enemy {
	rngSq := rng * rng
	var best *Enemy
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if from.DistSq(e.Pos) > rngSq {
			continue
		}
		if best == nil || beats(mode, e, best) {
			best = e
		}
	}
	return best
}

// beats reports whether candidate e is strictly preferred over the
// incumbent under the given mode.
func beats(mode TargetMode, e, best *Enemy) bool {
	switch mode {
	case TargetFirst:
		if e.Progress != best.Progress {
			return e.Progress > best.Progress
		}
		return e.Health > best.Health
	case TargetLast:
		if e.Progress != best.Progress {
			return e.Progress < best.Progress
		}
		return e.Health > best.Health
	case TargetStrong:
		if e.Health != best.Health {
			return e.Health > best.Health
		}
		return e.Progress > best.Progress
	default:
		return false
	}
}

// stepProjectiles advances every in-flight shot. A projectile whose target
// vanished is dropped silently. Impacts feed the damage and slow
// accumulators; impact effects and hit events are subject to the per-tick
// emission budget, damage never is.
func (s *State) stepProjectiles(dt float64, damage map[string]float64, slows map[string]slowApp) {
	hitEvents := 0
	impactEffects := 0

	out := s.Projectiles[:0:0]
	for _, p := range s.Projectiles {
		target := s.enemyByID(p.TargetID)
		if target == nil {
			continue
		}

		remaining := math.Sqrt(p.Pos.DistSq(target.Pos))
		travel := p.Speed * dt
		if travel < remaining {
			dir := target.Pos.Sub(p.Pos).Scale(1 / remaining)
			p.Pos = p.Pos.Add(dir.Scale(travel))
			out = append(out, p)
			continue
		}

		// Impact this tick.
		impact := target.Pos
		switch p.Kind {
		case content.AttackSplash:
			rsq := p.SplashRadius * p.SplashRadius
			for i := range s.Enemies {
				if impact.DistSq(s.Enemies[i].Pos) <= rsq {
					damage[s.Enemies[i].ID] += float64(p.Damage)
				}
			}
		case content.AttackDirect, content.AttackSlow:
			damage[p.TargetID] += float64(p.Damage)
		case content.AttackBeam:
			// Beam towers never launch projectiles.
		}

		if p.SlowFactor > 0 && p.SlowFactor < 1 {
			prev, ok := slows[p.TargetID]
			if !ok {
				slows[p.TargetID] = slowApp{Factor: p.SlowFactor, Duration: p.SlowDuration}
			} else {
				if p.SlowFactor < prev.Factor {
					prev.Factor = p.SlowFactor
				}
				if p.SlowDuration > prev.Duration {
					prev.Duration = p.SlowDuration
				}
				slows[p.TargetID] = prev
			}
		}

		if impactEffects < s.Balance.MaxImpactEffectsPerTick {
			s.addEffect(impactEffect(p, impact))
			impactEffects++
		}
		if hitEvents < s.Balance.MaxHitEventsPerTick {
			s.emit(EventHit, p.TowerType)
			hitEvents++
		}
	}
	s.Projectiles = out
}

// impactEffect builds the visual for a projectile impact, keyed on payload.
func impactEffect(p Projectile, at route.Vec) Effect {
	switch p.Kind {
	case content.AttackSplash:
		return Effect{
			Kind:        EffectSplash,
			Pos:         at,
			Duration:    0.45,
			StartRadius: 0.2,
			EndRadius:   p.SplashRadius,
			Color:       core.ColorOrange,
		}
	case content.AttackSlow:
		return Effect{
			Kind:        EffectChill,
			Pos:         at,
			Duration:    0.35,
			StartRadius: 0.15,
			EndRadius:   0.5,
			Color:       core.ColorBrightCyan,
		}
	default:
		return Effect{
			Kind:        EffectHit,
			Pos:         at,
			Duration:    0.25,
			StartRadius: 0.1,
			EndRadius:   0.35,
			Color:       p.Color,
		}
	}
}

// stepDamage applies the tick's accumulated damage totals in one pass and
// merges slow status onto survivors. Dead enemies credit their reward and
// leave a death effect.
func (s *State) stepDamage(damage map[string]float64, slows map[string]slowApp) {
	if len(damage) == 0 && len(slows) == 0 {
		return
	}

	out := s.Enemies[:0:0]
	for _, e := range s.Enemies {
		if d, ok := damage[e.ID]; ok {
			e.Health -= d
		}
		if e.Health <= 0 {
			s.Money += e.Reward
			s.addEffect(Effect{
				Kind:        EffectDeath,
				Pos:         e.Pos,
				Duration:    0.5,
				StartRadius: e.Radius,
				EndRadius:   e.Radius + 0.6,
				Color:       e.Color,
			})
			s.emit(EventDeath, "")
			continue
		}
		if sl, ok := slows[e.ID]; ok {
			if sl.Factor < e.SlowFactor {
				e.SlowFactor = sl.Factor
			}
			if sl.Duration > e.SlowRemaining {
				e.SlowRemaining = sl.Duration
			}
		}
		out = append(out, e)
	}
	s.Enemies = out
}

// stepWaves advances to the next wave once the current quota is fully
// spawned and the field is clear. In classic mode, clearing the last wave
// wins the match; endless mode always synthesizes another wave. The next
// wave's delay is the fixed inter-wave pause plus its own start delay.
func (s *State) stepWaves() {
	wave, ok := s.CurrentWave()
	if !ok {
		if len(s.Enemies) == 0 {
			s.Status = StatusWon
			s.emit(EventWon, "")
		}
		return
	}
	if s.Spawned < wave.Count || len(s.Enemies) > 0 {
		return
	}

	if s.Mode == ModeClassic && s.WaveIndex+1 >= len(s.level.Waves) {
		s.Status = StatusWon
		s.emit(EventWon, "")
		return
	}

	s.WaveIndex++
	s.Spawned = 0
	s.SpawnTimer = 0
	next, _ := s.CurrentWave()
	s.WaveDelay = s.Balance.InterWavePause + next.StartDelay
	s.emit(EventWaveCleared, "")
}

// stepEffects ages every visual effect and prunes the expired ones.
func (s *State) stepEffects(dt float64) {
	out := s.Effects[:0:0]
	for _, e := range s.Effects {
		e.Age += dt
		if e.Age >= e.Duration {
			continue
		}
		out = append(out, e)
	}
	s.Effects = out
}

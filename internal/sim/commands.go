package sim

import (
	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/route"
)

// Player commands are transitions just like Advance: they clone, mutate
// the clone, and return it. An invalid command (bad cell, not enough
// money, unknown id, terminal state) is a silent no-op returning the
// input unchanged, so callers never need to pre-validate.

// CanPlace reports whether a tower of the given type could be placed on
// the cell right now: in bounds, off the path, unoccupied, affordable.
func CanPlace(s State, towerType string, cell route.Cell) bool {
	if s.Status != StatusRunning {
		return false
	}
	arch := content.Tower(towerType)
	if s.Money < arch.Cost {
		return false
	}
	if !s.gameMap.InBounds(cell) || s.gameMap.IsPathCell(cell) {
		return false
	}
	return s.TowerAt(cell) == nil
}

// PlaceTower buys and places a new level-1 tower on the given cell.
func PlaceTower(prev State, towerType string, cell route.Cell) State {
	if !CanPlace(prev, towerType, cell) {
		return prev
	}
	arch := content.Tower(towerType)

	s := prev.clone()
	s.RecentEvents = nil
	s.Money -= arch.Cost
	s.Towers = append(s.Towers, Tower{
		ID:       s.mintTowerID(),
		Type:     arch.ID,
		Cell:     cell,
		Level:    1,
		Mode:     TargetFirst,
		Invested: arch.Cost,
	})
	s.addEffect(Effect{
		Kind:        EffectBuild,
		Pos:         cell.Center(),
		Duration:    0.4,
		StartRadius: 0.2,
		EndRadius:   0.8,
		Color:       arch.Color,
	})
	s.emit(EventPlace, arch.ID)
	return s
}

// UpgradeTower raises the tower one level, charging the upgrade cost.
// No-op at max level or when money is short.
func UpgradeTower(prev State, towerID string) State {
	if prev.Status != StatusRunning {
		return prev
	}
	t := prev.TowerByID(towerID)
	if t == nil {
		return prev
	}
	arch := content.Tower(t.Type)
	cost, ok := content.UpgradeCost(arch, t.Level, prev.Balance)
	if !ok || prev.Money < cost {
		return prev
	}

	s := prev.clone()
	s.RecentEvents = nil
	nt := s.TowerByID(towerID)
	s.Money -= cost
	nt.Level++
	nt.Invested += cost
	s.emit(EventUpgrade, nt.Type)
	return s
}

// SellTower removes the tower, refunds a fraction of everything invested
// in it, and discards its in-flight projectiles and beams.
func SellTower(prev State, towerID string) State {
	if prev.Status != StatusRunning {
		return prev
	}
	t := prev.TowerByID(towerID)
	if t == nil {
		return prev
	}

	s := prev.clone()
	s.RecentEvents = nil
	s.Money += content.SellValue(t.Invested, s.Balance)

	towers := s.Towers[:0:0]
	for _, tw := range s.Towers {
		if tw.ID != towerID {
			towers = append(towers, tw)
		}
	}
	s.Towers = towers

	shots := s.Projectiles[:0:0]
	for _, p := range s.Projectiles {
		if p.TowerID != towerID {
			shots = append(shots, p)
		}
	}
	s.Projectiles = shots

	beams := s.Beams[:0:0]
	for _, b := range s.Beams {
		if b.TowerID != towerID {
			beams = append(beams, b)
		}
	}
	s.Beams = beams

	s.addEffect(Effect{
		Kind:        EffectSell,
		Pos:         t.Cell.Center(),
		Duration:    0.4,
		StartRadius: 0.6,
		EndRadius:   0.1,
		Color:       core.ColorGray,
	})
	s.emit(EventSell, t.Type)
	return s
}

// CycleTargetMode advances the tower's targeting policy to the next mode
// in the fixed cycle.
func CycleTargetMode(prev State, towerID string) State {
	if prev.Status != StatusRunning {
		return prev
	}
	if prev.TowerByID(towerID) == nil {
		return prev
	}

	s := prev.clone()
	s.RecentEvents = nil
	nt := s.TowerByID(towerID)
	nt.Mode = nt.Mode.Next()
	s.emit(EventTargetMode, nt.Type)
	return s
}

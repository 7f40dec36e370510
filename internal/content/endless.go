package content

// EndlessWave synthesizes the wave definition for the given wave index in
// endless mode. There is no stored table; difficulty and enemy-type
// selection are pure functions of the index, so two runs over the same
// indices always produce the same schedule.
func EndlessWave(index int, b Balance) Wave {
	ids := EndlessRotation()

	// Cheap types early, the full rotation once the index catches up.
	pool := 1 + index/2
	if pool > len(ids) {
		pool = len(ids)
	}
	enemy := ids[index%pool]

	interval := b.EndlessBaseInterval - b.EndlessIntervalStep*float64(index)
	if interval < b.EndlessMinInterval {
		interval = b.EndlessMinInterval
	}

	return Wave{
		EnemyType:     enemy,
		Count:         b.EndlessBaseCount + b.EndlessCountStep*index,
		SpawnInterval: interval,
		StartDelay:    b.EndlessStartDelay,
	}
}

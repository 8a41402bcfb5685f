package trashdesk

import "math/rand/v2"

// Desktop is the process-wide layout decided once at startup.
type Desktop struct {
	IconCount int
	TrashPos  Vec2
}

// NewDesktop samples the icon count uniformly from [MinIcons, MaxIcons)
// unless cfg.IconCount pins it, and resolves the trash position.
func NewDesktop(cfg Config, rng *rand.Rand) Desktop {
	count := cfg.IconCount
	if count <= 0 {
		count = cfg.MinIcons + rng.IntN(cfg.MaxIcons-cfg.MinIcons)
	}
	trash := cfg.DefaultTrashPos()
	if cfg.TrashPos != nil {
		trash = *cfg.TrashPos
	}
	return Desktop{IconCount: count, TrashPos: trash}
}

// NewRand returns a PCG-backed PRNG for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

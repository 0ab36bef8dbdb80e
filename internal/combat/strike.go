package combat

// StrikeResult describes one resolved attack.
type StrikeResult struct {
	Damage        int  // damage requested, before clamping
	TargetFainted bool // target health reached zero
}

// Strike plays the target's hit effect, then applies the attacker's base
// attack as flat damage. onComplete receives the result once the target's
// health display has finished updating.
func Strike(attacker, target *Combatant, onComplete func(StrikeResult)) {
	damage := attacker.BaseAttack()
	target.PlayTakeDamage(func() {
		target.TakeDamage(damage, func() {
			if onComplete != nil {
				onComplete(StrikeResult{
					Damage:        damage,
					TargetFainted: target.IsFainted(),
				})
			}
		})
	})
}

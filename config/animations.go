package config

// Animator parameter names understood by the character's animation sink.
const (
	AnimAttack1 = "Attack1"
	AnimAttack2 = "Attack2"
	AnimDie     = "die"
	AnimIsJump  = "isJump"
	AnimSpeed   = "Speed"
)

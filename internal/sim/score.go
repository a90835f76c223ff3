package sim

// Scorekeeper tracks score, remaining balls and the game-over flag.
type Scorekeeper struct {
	Score    int
	Lives    int
	Drained  int // balls lost so far, counted in practice too
	GameOver bool
	Practice bool
}

// Reset starts a new game with the given number of balls.
func (k *Scorekeeper) Reset(lives int) {
	k.Score = 0
	k.Lives = lives
	k.Drained = 0
	k.GameOver = false
}

// Award adds points unless the game is over.
func (k *Scorekeeper) Award(points int) {
	if k.GameOver {
		return
	}
	k.Score += points
}

// LoseBall records a drain and returns true when that ended the game.
func (k *Scorekeeper) LoseBall() bool {
	k.Drained++
	if k.Practice {
		return false
	}
	if k.Lives > 1 {
		k.Lives--
		return false
	}
	k.Lives = 0
	k.GameOver = true
	return true
}

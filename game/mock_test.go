package game

// loadedDie replays a fixed sequence of faces, wrapping around at the end.
type loadedDie struct {
	faces []Face
	next  int
}

func (d *loadedDie) Roll() Face {
	face := d.faces[d.next%len(d.faces)]
	d.next++
	return face
}

func playUntilOver(gs *GameState, die Die, rules *Rules) {
	for !gs.IsOver() {
		gs.Play(die.Roll(), rules)
	}
}

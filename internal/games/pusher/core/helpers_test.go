package core

// levelFromRows builds a level the same way the parser does, without the
// validation, so tests can describe boards as text.
func levelFromRows(rows ...string) *Level {
	g := GridFromRows(rows)
	var actor Coord
	var goals, boxes []Coord
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			switch g.At(x, y) {
			case SymActor:
				actor = C(x, y)
			case SymActorOnGoal:
				actor = C(x, y)
				goals = append(goals, C(x, y))
			case SymGoal:
				goals = append(goals, C(x, y))
			case SymBox:
				boxes = append(boxes, C(x, y))
			case SymBoxOnGoal:
				goals = append(goals, C(x, y))
				boxes = append(boxes, C(x, y))
			}
		}
	}
	return NewLevel(g, actor, goals, boxes)
}

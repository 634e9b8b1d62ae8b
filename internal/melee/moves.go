package melee

type move struct {
	name      string
	shortName string
}

var moves = map[int]move{
	1:  {"Miscellaneous", "misc"},
	2:  {"Jab", "jab"},
	3:  {"Jab", "jab"},
	4:  {"Jab", "jab"},
	5:  {"Rapid Jabs", "rapid-jabs"},
	6:  {"Dash Attack", "dash"},
	7:  {"Forward Tilt", "ftilt"},
	8:  {"Up Tilt", "utilt"},
	9:  {"Down Tilt", "dtilt"},
	10: {"Forward Smash", "fsmash"},
	11: {"Up Smash", "usmash"},
	12: {"Down Smash", "dsmash"},
	13: {"Neutral Air", "nair"},
	14: {"Forward Air", "fair"},
	15: {"Back Air", "bair"},
	16: {"Up Air", "uair"},
	17: {"Down Air", "dair"},
	18: {"Neutral B", "neutral-b"},
	19: {"Side B", "side-b"},
	20: {"Up B", "up-b"},
	21: {"Down B", "down-b"},
	50: {"Getup Attack", "getup"},
	51: {"Getup Attack (Slow)", "getup-slow"},
	52: {"Grab Pummel", "pummel"},
	53: {"Forward Throw", "fthrow"},
	54: {"Back Throw", "bthrow"},
	55: {"Up Throw", "uthrow"},
	56: {"Down Throw", "dthrow"},
	61: {"Edge Attack (Slow)", "edge-slow"},
	62: {"Edge Attack", "edge"},
}

var unknownMove = move{"Unknown Move", "unknown"}

func MoveName(id int) string {
	if m, ok := moves[id]; ok {
		return m.name
	}
	return unknownMove.name
}

func MoveShortName(id int) string {
	if m, ok := moves[id]; ok {
		return m.shortName
	}
	return unknownMove.shortName
}

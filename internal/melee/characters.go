package melee

type character struct {
	name   string
	colors []string
}

// Indexed by external character ID.
var characters = []character{
	{"Captain Falcon", []string{"Default", "Black", "Red", "White", "Green", "Blue"}},
	{"Donkey Kong", []string{"Default", "Black", "Red", "Blue", "Green"}},
	{"Fox", []string{"Default", "Red", "Blue", "Green"}},
	{"Mr. Game & Watch", []string{"Default", "Red", "Blue", "Green"}},
	{"Kirby", []string{"Default", "Yellow", "Blue", "Red", "Green", "White"}},
	{"Bowser", []string{"Default", "Red", "Blue", "Black"}},
	{"Link", []string{"Default", "Red", "Blue", "Black", "White"}},
	{"Luigi", []string{"Default", "White", "Blue", "Red"}},
	{"Mario", []string{"Default", "Yellow", "Black", "Blue", "Green"}},
	{"Marth", []string{"Default", "Red", "Green", "Black", "White"}},
	{"Mewtwo", []string{"Default", "Red", "Blue", "Green"}},
	{"Ness", []string{"Default", "Yellow", "Blue", "Green"}},
	{"Peach", []string{"Default", "Daisy", "White", "Blue", "Green"}},
	{"Pikachu", []string{"Default", "Red", "Party Hat", "Cowboy Hat"}},
	{"Ice Climbers", []string{"Default", "Green", "Orange", "Red"}},
	{"Jigglypuff", []string{"Default", "Red", "Blue", "Headband", "Crown"}},
	{"Samus", []string{"Default", "Pink", "Black", "Green", "Purple"}},
	{"Yoshi", []string{"Default", "Red", "Blue", "Yellow", "Pink", "Cyan"}},
	{"Zelda", []string{"Default", "Red", "Blue", "Green", "White"}},
	{"Sheik", []string{"Default", "Red", "Blue", "Green", "White"}},
	{"Falco", []string{"Default", "Red", "Blue", "Green"}},
	{"Young Link", []string{"Default", "Red", "Blue", "White", "Black"}},
	{"Dr. Mario", []string{"Default", "Red", "Blue", "Green", "Black"}},
	{"Roy", []string{"Default", "Red", "Blue", "Green", "Yellow"}},
	{"Pichu", []string{"Default", "Red", "Blue", "Green"}},
	{"Ganondorf", []string{"Default", "Red", "Blue", "Green", "Purple"}},
}

// CharacterName returns the character's display name, or "Unknown Character".
func CharacterName(id int) string {
	if id < 0 || id >= len(characters) {
		return "Unknown Character"
	}
	return characters[id].name
}

// CharacterColorName returns the name of a costume colour for the character.
func CharacterColorName(id, color int) string {
	if id < 0 || id >= len(characters) {
		return "Default"
	}
	colors := characters[id].colors
	if color < 0 || color >= len(colors) {
		return "Default"
	}
	return colors[color]
}

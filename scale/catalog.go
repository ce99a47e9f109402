package scale

// Root is the tonal root every default scale name is prefixed with.
const Root = "E"

var defaultCatalog = MustNew(
	Entry{Root + " Major", 0.00, Consonant},
	Entry{Root + " Major Pent", 0.03, Consonant},
	Entry{Root + " Lydian", 0.10, Consonant},
	Entry{Root + " Mixolydian", 0.18, Consonant},
	Entry{Root + " Minor Pent", 0.22, Consonant},
	Entry{Root + " Dorian", 0.25, Consonant},
	Entry{Root + " Aeolian", 0.35, Color},
	Entry{Root + " Harmonic Min", 0.50, Color},
	Entry{Root + " Melodic Min", 0.55, Color},
	Entry{Root + " Octatonic", 0.85, High},
	Entry{Root + " Phrygian Dom", 0.90, High},
)

// Default returns the built-in eleven-scale catalog.
func Default() Catalog {
	return defaultCatalog
}

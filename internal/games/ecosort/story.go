package ecosort

import "fmt"

// introPages is the campaign story shown before the first phase.
var introPages = [][]string{
	{
		"The city is drowning in trash.",
		"",
		"Landfills overflow, rivers choke on plastic,",
		"and nobody sorts anything anymore.",
	},
	{
		"You run the new Community Recycling Center.",
		"",
		"Click a falling item to pick it up,",
		"then click the bin it belongs in.",
	},
	{
		"Right bins build your combo and reputation.",
		"Wrong bins and missed items cost reputation.",
		"",
		"Lose all reputation and the center closes.",
	},
	{
		"Grab power-ups while they fall:",
		"",
		"x  Combo boost     *  Time freeze",
		"U  Magnet          #  Shield",
	},
}

// bossIntroLines introduces the final encounter.
var bossIntroLines = []string{
	"Your success has not gone unnoticed.",
	"",
	"The Landfill Baron profits from every ton",
	"buried in the ground, and he wants you gone.",
	"",
	"Every correct sort damages him.",
	"Every mistake or miss hurts you.",
	"Sort five in a row to earn a Strike (!).",
}

// phaseCompleteMessage builds the transition text after a phase ends.
func phaseCompleteMessage(spec PhaseSpec, next PhaseSpec, s *State) []string {
	return []string{
		spec.Title + " complete!",
		"",
		scoreLine(s.Score),
		fmt.Sprintf("Reputation: %d%%", s.Reputation),
		"",
		"Next: " + next.Title,
	}
}

func scoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

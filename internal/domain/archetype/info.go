package archetype

// Info is the display name and description of a tag.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var infos = map[Tag]Info{
	FiveToolPlayer:     {"Five-Tool Player", "Well-rounded player with every skill above average"},
	CompleteSlugger:    {"Complete Slugger", "Home run and gap power with a reliable hit tool"},
	HomeRunKing:        {"Home Run King", "Overwhelming home run power"},
	Slugger:            {"Slugger", "Middle-of-the-order bat with big power and adequate contact"},
	ContactMaster:      {"Contact Master", "Elite contact and plate discipline, gets on base"},
	TableSetter:        {"Table Setter", "Leadoff type who creates scoring chances with discipline and contact"},
	BalancedPower:      {"Balanced Power", "Home run and gap power in balance"},
	PowerDiscipline:    {"Power & Discipline", "Modern run producer who slugs and walks"},
	FreeSwinger:        {"Free Swinger", "Aggressive hitter with power but a loose approach"},
	PowerHitter:        {"Power Hitter", "Aggressive hitter built around extra-base power"},
	LineDriveMachine:   {"Line Drive Machine", "Contact and gap power together"},
	ContactSpecialist:  {"Contact Specialist", "High average, little power"},
	PatientHitter:      {"Patient Hitter", "Walk specialist with a sharp eye"},
	ClutchPerformer:    {"Clutch Performer", "Rises to the moment in high-leverage spots"},
	ConsistentProducer: {"Consistent Producer", "Steady production without slumps"},
	BalancedHitter:     {"Balanced Hitter", "Contact and power in harmony"},
	AverageHitter:      {"Average Hitter", "League-average ability across the board"},
	BelowAverage:       {"Below Average", "Bench bat or developing hitter"},

	Ace:                 {"Ace", "Front-line starter with stuff and command"},
	LockdownCloser:      {"Lockdown Closer", "Closer who misses bats and finishes games"},
	PowerPitcher:        {"Power Pitcher", "Overpowering stuff thrown aggressively in the zone"},
	Workhorse:           {"Workhorse", "Efficient starter who eats innings"},
	SetupSpecialist:     {"Setup Specialist", "Late-inning bridge with good stuff under pressure"},
	Fireman:             {"Fireman", "Reliever trusted to escape high-leverage jams"},
	StrikeoutReliever:   {"Strikeout Reliever", "Bullpen arm who misses bats"},
	ControlArtist:       {"Control Artist", "Pinpoint command, rarely behind in the count"},
	WildThrower:         {"Wild Thrower", "Electric stuff without reliable control"},
	FinessePitcher:      {"Finesse Pitcher", "Gets outs with command rather than velocity"},
	EfficiencyExpert:    {"Efficiency Expert", "Quick outs on few pitches"},
	LongReliever:        {"Long Reliever", "Multi-inning bullpen arm who works efficiently"},
	BalancedPitcher:     {"Balanced Pitcher", "Average or better in every category"},
	AveragePitcher:      {"Average Pitcher", "League-average pitcher"},
	BelowAveragePitcher: {"Below Average Pitcher", "Depth arm or developing pitcher"},
}

// Describe returns display information for tag. Unknown tags echo the tag.
func Describe(tag Tag) Info {
	if i, ok := infos[tag]; ok {
		return i
	}
	return Info{Name: string(tag), Description: "No classification information"}
}

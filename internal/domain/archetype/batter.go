package archetype

// Batter archetypes.
const (
	FiveToolPlayer     Tag = "FIVE_TOOL_PLAYER"
	CompleteSlugger    Tag = "COMPLETE_SLUGGER"
	HomeRunKing        Tag = "HOME_RUN_KING"
	Slugger            Tag = "SLUGGER"
	ContactMaster      Tag = "CONTACT_MASTER"
	TableSetter        Tag = "TABLE_SETTER"
	BalancedPower      Tag = "BALANCED_POWER"
	PowerDiscipline    Tag = "POWER_DISCIPLINE"
	FreeSwinger        Tag = "FREE_SWINGER"
	PowerHitter        Tag = "POWER_HITTER"
	LineDriveMachine   Tag = "LINE_DRIVE_MACHINE"
	ContactSpecialist  Tag = "CONTACT_SPECIALIST"
	PatientHitter      Tag = "PATIENT_HITTER"
	ClutchPerformer    Tag = "CLUTCH_PERFORMER"
	ConsistentProducer Tag = "CONSISTENT_PRODUCER"
	BalancedHitter     Tag = "BALANCED_HITTER"
	AverageHitter      Tag = "AVERAGE_HITTER"
	BelowAverage       Tag = "BELOW_AVERAGE"
)

const (
	contact     = "contact"
	gamePower   = "game_power"
	gapPower    = "gap_power"
	discipline  = "discipline"
	consistency = "consistency"
	clutch      = "clutch"
)

// A .320 average marks a contact specialist even when the contact grade lags.
const specialistAverage = 0.320

var batterRules = []Rule{
	{FiveToolPlayer, func(in Input) bool {
		return in.allAtLeast(60, contact, gamePower, gapPower, discipline)
	}},
	{CompleteSlugger, func(in Input) bool {
		return in.Score(gamePower) >= 70 && in.Score(contact) >= 60
	}},
	{HomeRunKing, func(in Input) bool {
		return in.Score(gamePower) >= 75
	}},
	{Slugger, func(in Input) bool {
		return in.Score(gamePower) >= 65 && in.Score(contact) >= 50
	}},
	{ContactMaster, func(in Input) bool {
		return in.Score(contact) >= 70 && in.Score(discipline) >= 60
	}},
	{TableSetter, func(in Input) bool {
		return in.Score(discipline) >= 70 && in.Score(contact) >= 60 && in.Score(gamePower) < 50
	}},
	{BalancedPower, func(in Input) bool {
		return in.Score(gamePower) >= 60 && in.Score(gapPower) >= 60
	}},
	{PowerDiscipline, func(in Input) bool {
		return in.Score(gamePower) >= 60 && in.Score(discipline) >= 60
	}},
	{FreeSwinger, func(in Input) bool {
		return in.Score(gamePower) >= 55 && in.Score(discipline) < 45
	}},
	{PowerHitter, func(in Input) bool {
		return in.Score(gamePower) >= 60
	}},
	{LineDriveMachine, func(in Input) bool {
		return in.Score(contact) >= 60 && in.Score(gapPower) >= 60
	}},
	{ContactSpecialist, func(in Input) bool {
		if in.Score(gamePower) >= 45 {
			return false
		}
		if in.Score(contact) >= 65 {
			return true
		}
		avg, ok := in.raw("batting_average")
		return ok && avg >= specialistAverage
	}},
	{PatientHitter, func(in Input) bool {
		return in.Score(discipline) >= 65
	}},
	{ClutchPerformer, func(in Input) bool {
		return in.Score(clutch) >= 65
	}},
	{ConsistentProducer, func(in Input) bool {
		return in.Score(consistency) >= 65 && in.Overall >= 50
	}},
	{BalancedHitter, func(in Input) bool {
		return in.allAtLeast(50, contact, gamePower, gapPower, discipline, consistency, clutch)
	}},
	{AverageHitter, func(in Input) bool {
		return in.Overall >= 50
	}},
	{BelowAverage, always},
}

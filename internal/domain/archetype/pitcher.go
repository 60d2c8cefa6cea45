package archetype

import "github.com/okian/scout/internal/domain/model"

// Pitcher archetypes.
const (
	Ace                 Tag = "ACE"
	LockdownCloser      Tag = "LOCKDOWN_CLOSER"
	PowerPitcher        Tag = "POWER_PITCHER"
	Workhorse           Tag = "WORKHORSE"
	SetupSpecialist     Tag = "SETUP_SPECIALIST"
	Fireman             Tag = "FIREMAN"
	StrikeoutReliever   Tag = "STRIKEOUT_RELIEVER"
	ControlArtist       Tag = "CONTROL_ARTIST"
	WildThrower         Tag = "WILD_THROWER"
	FinessePitcher      Tag = "FINESSE_PITCHER"
	EfficiencyExpert    Tag = "EFFICIENCY_EXPERT"
	LongReliever        Tag = "LONG_RELIEVER"
	BalancedPitcher     Tag = "BALANCED_PITCHER"
	AveragePitcher      Tag = "AVERAGE_PITCHER"
	BelowAveragePitcher Tag = "BELOW_AVERAGE_PITCHER"
)

const (
	control    = "control"
	aggression = "aggression"
	efficiency = "efficiency"
	stuff      = "stuff"
)

const workhorseInnings = 100

func (in Input) innings() float64 {
	v, ok := in.raw(model.KeyInningsPitched)
	if !ok {
		return 0
	}
	return model.Innings(v)
}

var pitcherRules = []Rule{
	{Ace, func(in Input) bool {
		return in.BullpenRole == model.BullpenStarter && in.Overall >= 65 &&
			in.Score(stuff) >= 60 && in.Score(control) >= 60
	}},
	{LockdownCloser, func(in Input) bool {
		return in.BullpenRole == model.BullpenCloser && in.Score(stuff) >= 60 && in.Score(clutch) >= 60
	}},
	{PowerPitcher, func(in Input) bool {
		return in.Score(stuff) >= 65 && in.Score(aggression) >= 60
	}},
	{Workhorse, func(in Input) bool {
		return in.BullpenRole == model.BullpenStarter && in.Score(efficiency) >= 60 &&
			in.innings() >= workhorseInnings
	}},
	{SetupSpecialist, func(in Input) bool {
		return in.BullpenRole == model.BullpenSetup && in.Score(clutch) >= 55 && in.Score(stuff) >= 55
	}},
	{Fireman, func(in Input) bool {
		return in.BullpenRole.IsReliever() && in.Score(clutch) >= 65
	}},
	{StrikeoutReliever, func(in Input) bool {
		return in.BullpenRole.IsReliever() && in.Score(stuff) >= 65
	}},
	{ControlArtist, func(in Input) bool {
		return in.Score(control) >= 65
	}},
	{WildThrower, func(in Input) bool {
		return in.Score(stuff) >= 60 && in.Score(control) < 40
	}},
	{FinessePitcher, func(in Input) bool {
		return in.Score(control) >= 60 && in.Score(stuff) < 50
	}},
	{EfficiencyExpert, func(in Input) bool {
		return in.Score(efficiency) >= 65
	}},
	{LongReliever, func(in Input) bool {
		return in.BullpenRole == model.BullpenLong && in.Score(efficiency) >= 55
	}},
	{BalancedPitcher, func(in Input) bool {
		return in.allAtLeast(50, control, aggression, efficiency, stuff, clutch)
	}},
	{AveragePitcher, func(in Input) bool {
		return in.Overall >= 50
	}},
	{BelowAveragePitcher, always},
}

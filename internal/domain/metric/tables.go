package metric

func pct(key, name string, w float64) Definition {
	return Definition{Key: key, Name: name, Weight: w, Kind: KindPercent, Unit: "%"}
}

func ratio(key, name string, w float64) Definition {
	return Definition{Key: key, Name: name, Weight: w, Kind: KindRatio, Unit: "%"}
}

func raw(key, name string, w float64, unit string) Definition {
	return Definition{Key: key, Name: name, Weight: w, Kind: KindRaw, Unit: unit}
}

func inverse(d Definition) Definition {
	d.Inverse = true
	return d
}

var batterCategories = []Category{
	{Key: "contact", Name: "Contact", Metrics: []Definition{
		raw("batting_average", "Batting Average", 0.45, ""),
		inverse(pct("strikeout_rate", "Strikeout Rate", 0.25)),
		pct("overall_contact_rate", "Overall Contact Rate", 0.08),
		pct("in_zone_contact_rate", "In-Zone Contact Rate", 0.07),
		pct("chase_contact_rate", "Chase Contact Rate", 0.05),
		pct("two_strike_contact_rate", "Two-Strike Contact Rate", 0.05),
		inverse(pct("swing_miss_rate", "Swing and Miss Rate", 0.05)),
	}},
	{Key: "game_power", Name: "Game Power", Metrics: []Definition{
		pct("home_run_rate", "Home Run Rate", 0.35),
		ratio("home_run_to_xbh_ratio", "HR / Extra-Base Hits", 0.25),
		raw("isolated_power_hr", "Isolated Power (HR)", 0.20, ""),
		pct("home_run_per_hit_rate", "HR per Hit", 0.20),
	}},
	{Key: "gap_power", Name: "Gap Power", Metrics: []Definition{
		pct("double_rate", "Double Rate", 0.30),
		pct("triple_rate", "Triple Rate", 0.15),
		raw("isolated_power_gap", "Isolated Power (Gap)", 0.25, ""),
		pct("gap_hit_rate", "Gap Hit Rate", 0.15),
		raw("double_to_single_ratio", "Double / Single Ratio", 0.15, ""),
	}},
	{Key: "discipline", Name: "Discipline", Metrics: []Definition{
		pct("walk_rate", "Walk Rate", 0.35),
		inverse(pct("chase_rate", "Chase Rate", 0.25)),
		pct("first_pitch_selectivity", "First-Pitch Selectivity", 0.15),
		pct("two_strike_approach", "Two-Strike Approach", 0.15),
		inverse(pct("called_strike_rate", "Called Strike Rate", 0.10)),
	}},
	{Key: "consistency", Name: "Consistency", Metrics: []Definition{
		inverse(raw("monthly_variance", "Monthly Variance", 0.35, "")),
		raw("platoon_split_stability", "Platoon Split Stability", 0.25, ""),
		raw("count_balance", "Count Balance", 0.20, ""),
		raw("inning_evenness", "Inning Evenness", 0.20, ""),
	}},
	{Key: "clutch", Name: "Clutch", Metrics: []Definition{
		raw("high_leverage_performance", "High-Leverage Performance", 0.35, ""),
		raw("risp_woba", "RISP wOBA", 0.30, ""),
		raw("close_game_performance", "Close-Game Performance", 0.20, ""),
		raw("two_out_performance", "Two-Out Performance", 0.15, ""),
	}},
}

var pitcherCategories = []Category{
	{Key: "control", Name: "Control", Metrics: []Definition{
		ratio("first_pitch_strike_rate", "First-Pitch Strike Rate", 0.25),
		ratio("three_ball_recovery_rate", "Three-Ball Recovery Rate", 0.20),
		ratio("walk_avoidance_rate", "Walk Avoidance Rate", 0.20),
		ratio("main_pitch_control_rate", "Main Pitch Control Rate", 0.20),
		ratio("favorable_count_entry_rate", "Favorable Count Entry Rate", 0.15),
	}},
	{Key: "aggression", Name: "Aggression", Metrics: []Definition{
		ratio("early_strike_rate", "Early Strike Rate", 0.30),
		ratio("finishing_ability_rate", "Finishing Ability", 0.30),
		ratio("two_strike_strikeout_rate", "Two-Strike Strikeout Rate", 0.25),
		ratio("high_velocity_decision_rate", "High-Velocity Decision Rate", 0.15),
	}},
	{Key: "efficiency", Name: "Efficiency", Metrics: []Definition{
		inverse(raw("avg_pitches_per_batter", "Pitches per Batter", 0.25, "")),
		ratio("quick_resolution_rate", "Quick Resolution Rate", 0.25),
		ratio("first_batter_out_rate", "First Batter Out Rate", 0.20),
		ratio("five_pitch_out_rate", "Five-Pitch Out Rate", 0.15),
		ratio("efficient_inning_rate", "Efficient Inning Rate", 0.15),
	}},
	{Key: "stuff", Name: "Stuff", Metrics: []Definition{
		ratio("whiff_rate", "Whiff Rate", 0.30),
		ratio("chase_rate", "Chase Rate Induced", 0.20),
		ratio("in_zone_whiff_rate", "In-Zone Whiff Rate", 0.20),
		ratio("unhittable_pitch_rate", "Unhittable Pitch Rate", 0.15),
		raw("avg_fastball_velocity", "Average Fastball Velocity", 0.15, "km/h"),
	}},
	{Key: "clutch", Name: "Clutch", Metrics: []Definition{
		ratio("risp_out_rate", "RISP Out Rate", 0.30),
		ratio("two_out_inning_end_rate", "Two-Out Inning End Rate", 0.25),
		ratio("bases_loaded_escape_rate", "Bases-Loaded Escape Rate", 0.25),
		ratio("three_up_three_down_rate", "Three-Up Three-Down Rate", 0.20),
	}},
}

var batterTraditional = []string{
	"batting_average",
	"on_base_percentage",
	"slugging_percentage",
	"ops",
	"home_runs",
	"rbi",
	"plate_appearances",
	"hits",
	"walks",
	"strikeouts",
	"stolen_bases",
}

var pitcherTraditional = []string{
	"total_games",
	"total_pitches",
	"total_innings_pitched",
	"k_per_9",
}

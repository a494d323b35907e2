package catalog

// Compiled-in defaults. The industry release list is curated by hand from
// press release calendars and changes slowly; update dates as they are
// announced. Last reviewed: 2026-02-17.

var defaultGames = []Game{
	{Name: "Counter-Strike 2", AppID: 730, Subreddit: "cs2", SteamShare: 1.0, Genre: "Tactical"},
	{Name: "Apex Legends", AppID: 1172470, Subreddit: "apexlegends", SteamShare: 0.25, Genre: "Battle Royale"},
	{Name: "Marvel Rivals", AppID: 2767030, Subreddit: "marvelrivals", SteamShare: 0.35, Genre: "Hero Shooter"},
	{Name: "Delta Force", AppID: 2507950, Subreddit: "DeltaForce", SteamShare: 0.70, Genre: "Extraction"},
	{Name: "Arc Raiders", AppID: 1808500, Subreddit: "ArcRaiders", SteamShare: 0.50, Genre: "Extraction"},
	{Name: "Battlefield 6", AppID: 2807960, Subreddit: "battlefield", SteamShare: 0.55, Genre: "Large-Scale"},
	{Name: "Call of Duty", AppID: 1938090, Subreddit: "CallOfDuty", SteamShare: 0.15, Genre: "Large-Scale"},
	{Name: "Halo Infinite", AppID: 1240440, Subreddit: "halo", SteamShare: 0.12, Genre: "Arena"},
	{Name: "Overwatch", AppID: 2357570, Subreddit: "Overwatch", SteamShare: 0.20, Genre: "Hero Shooter"},
	{Name: "Rainbow Six Siege", AppID: 359550, Subreddit: "Rainbow6", SteamShare: 0.35, Genre: "Tactical"},
	{Name: "PUBG: BATTLEGROUNDS", AppID: 578080, Subreddit: "PUBATTLEGROUNDS", SteamShare: 0.80, Genre: "Battle Royale"},
	{Name: "The Finals", AppID: 2073850, Subreddit: "thefinals", SteamShare: 0.50, Genre: "Arena"},
	{Name: "Destiny 2", AppID: 1085660, Subreddit: "DestinyTheGame", SteamShare: 0.35, Genre: "Looter Shooter"},
	{Name: "Team Fortress 2", AppID: 440, Subreddit: "tf2", SteamShare: 1.0, Genre: "Hero Shooter"},
	{Name: "Halo: MCC", AppID: 976730, Subreddit: "halo", SteamShare: 0.30, Genre: "Arena"},
}

var defaultPlatformNotes = map[string]string{
	"Counter-Strike 2":    "Steam-only title",
	"PUBG: BATTLEGROUNDS": "Krafton earnings; mobile is separate. Console ~20% of PC.",
	"Arc Raiders":         "Steam + Epic. Est. 50/50 split based on Embark data.",
	"Apex Legends":        "EA earnings (Q3 2025). Console-heavy (PS/Xbox ~75%).",
	"Delta Force":         "NetEase; primarily PC (Steam + launcher). ~30% non-Steam.",
	"Marvel Rivals":       "NetEase; PS/Xbox ~65% based on launch week platform split.",
	"Overwatch":           "Blizzard earnings. Console-dominant franchise (~80%).",
	"Rainbow Six Siege":   "Ubisoft earnings. Console ~65% historically.",
	"Battlefield 6":       "EA earnings. Console ~45% for BF franchise.",
	"Team Fortress 2":     "Steam-only title (legacy)",
	"Call of Duty":        "Activision earnings. Console-dominant franchise (~85%).",
	"The Finals":          "Embark data. Steam ~50%, rest PS/Xbox.",
	"Destiny 2":           "Bungie data. Console ~65% (PS dominant).",
	"Halo: MCC":           "Xbox Game Studios. Steam ~30%, Xbox ~70%.",
	"Halo Infinite":       "Xbox Game Studios. Steam ~12%, Xbox ~88%.",
}

var defaultEventAnnotations = map[string]string{
	"Overwatch":     "+76.4% ← Loverwatch event + OWCS S2 kickoff + sub-role passives patch",
	"Arc Raiders":   "-18.6% ← Post-launch decay. Second Expedition season announced Mar 1.",
	"Delta Force":   "+14.0% ← RED DAY event + Season Morphosis live",
	"Battlefield 6": "-22.6% ← Season 2 launched Feb 17 but failing to retain",
	"Halo: MCC":     "-21.3% ← Legacy title, Halo 2 Digsite content drop had limited impact",
	"Halo Infinite": "-9.3% ← Post-final update (Nov 2025). Expected attrition curve.",
	"Destiny 2":     "-23.7% ← Continued structural decline pre-Marathon (Mar 5)",
}

var defaultLifecycleStates = map[string]string{
	"Counter-Strike 2":    "Live",
	"PUBG: BATTLEGROUNDS": "Live",
	"Arc Raiders":         "Live",
	"Apex Legends":        "Maintenance",
	"Delta Force":         "Live",
	"Marvel Rivals":       "Live",
	"Overwatch":           "Live",
	"Rainbow Six Siege":   "Live",
	"Battlefield 6":       "Live",
	"Team Fortress 2":     "Legacy",
	"Call of Duty":        "Live",
	"The Finals":          "Live",
	"Destiny 2":           "Maintenance",
	"Halo: MCC":           "Legacy",
	"Halo Infinite":       "Sunset",
}

var defaultCadences = map[string]Cadence{
	"Call of Duty":        {Label: "Season", Weeks: 8},
	"Marvel Rivals":       {Label: "Season", Weeks: 8},
	"Apex Legends":        {Label: "Season", Weeks: 13},
	"Overwatch":           {Label: "Season", Weeks: 13},
	"Battlefield 6":       {Label: "Season", Weeks: 13},
	"Delta Force":         {Label: "Season", Weeks: 10},
	"Rainbow Six Siege":   {Label: "Season", Weeks: 13},
	"Destiny 2":           {Label: "Season", Weeks: 13},
	"The Finals":          {Label: "Season", Weeks: 10},
	"PUBG: BATTLEGROUNDS": {Label: "Content update", Weeks: 8},
}

var defaultIndustryReleases = []IndustryRelease{
	{Game: "Marathon", Date: "2026-03-05", Type: "New Release",
		Desc: "Bungie's extraction shooter reboot. PC/PS5/Xbox. Cross-play, $40.", Confirmed: true},
	{Game: "John Carpenter's Toxic Commando", Date: "2026-03-12", Type: "New Release",
		Desc: "Co-op zombie FPS. Saber Interactive. PC/PS5/Xbox.", Confirmed: true},
	{Game: "Mouse: P.I. for Hire", Date: "2026-03-19", Type: "New Release",
		Desc: "Noir-themed retro FPS. PC/PS5/Switch/Xbox.", Confirmed: true},
	{Game: "007 First Light", Date: "2026-05-27", Type: "New Release",
		Desc: "IO Interactive (Hitman devs) James Bond origin story. Third-person action-shooter. PC/PS5/Xbox/Switch 2.", Confirmed: true},
	{Game: "Halloween: The Game", Date: "2026-09-08", Type: "New Release",
		Desc: "Horror shooter based on the film franchise. PC/PS5/Xbox.", Confirmed: true},
	{Game: "Halo: Campaign Evolved", Date: "2026-06-15", Type: "New Release",
		Desc: "Full remake of Halo: Combat Evolved, rebuilt from the ground up. PC/PS5/Xbox. Targeting Summer 2026.", Confirmed: false},
	{Game: "Warhammer 40K: Boltgun 2", Date: "2026-06-01", Type: "New Release",
		Desc: "Retro-style FPS sequel. Auroch Digital. PC/PS5/Xbox. Targeting 2026.", Confirmed: false},
	{Game: "Turok Origins", Date: "2026-10-01", Type: "New Release",
		Desc: "FPS franchise revival/reboot. PC/PS5/Switch 2/Xbox. Targeting Fall 2026.", Confirmed: false},
	{Game: "Hell Let Loose: Vietnam", Date: "2026-09-01", Type: "New Release",
		Desc: "50v50 multiplayer set in Vietnam. Sequel to Hell Let Loose. PC/PS5/Xbox. Targeting 2026.", Confirmed: false},
	{Game: "Gears of War: E-Day", Date: "2026-11-15", Type: "New Release",
		Desc: "Prequel to the original Gears of War. The Coalition + People Can Fly. PC/Xbox.", Confirmed: false},
	{Game: "Borderlands 4", Date: "2026-09-15", Type: "New Release",
		Desc: "Looter-shooter FPS sequel. Gearbox Software. Multi-platform. Targeting 2026.", Confirmed: false},
	{Game: "Judas", Date: "2026-12-01", Type: "New Release",
		Desc: "FPS from Ken Levine (BioShock creator). Ghost Story Games. PC/PS5/Xbox.", Confirmed: false},
}

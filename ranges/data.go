package ranges

// Authored charts. Hands not listed fold. Seats where a scenario cannot arise
// (nobody has raised before UTG, the big blind never opens or faces a 3-bet
// after opening) are left out and report ErrNoRange.

var sixMaxOpen = []authored{
	opens(UTG,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77",
		"AKs", "AQs", "AJs", "ATs", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "J9s", "T9s", "98s", "87s", "76s", "65s",
		"AKo", "AQo",
	),
	opens(MP,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s",
		"QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "T8s", "98s", "87s", "76s", "65s", "54s",
		"AKo", "AQo", "AJo", "KQo",
	),
	opens(CO,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s",
		"QJs", "QTs", "Q9s", "Q8s",
		"JTs", "J9s", "J8s", "T9s", "T8s", "98s", "97s", "87s", "86s", "76s", "75s",
		"65s", "64s", "54s", "53s", "43s",
		"AKo", "AQo", "AJo", "ATo",
		"KQo", "KJo", "QJo", "JTo",
	),
	opens(BTN,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s",
		"JTs", "J9s", "J8s", "J7s",
		"T9s", "T8s", "T7s", "98s", "97s", "96s", "87s", "86s", "85s", "76s", "75s",
		"65s", "64s", "54s", "53s", "43s", "32s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o",
		"KQo", "KJo", "KTo", "K9o",
		"QJo", "QTo", "Q9o", "JTo", "J9o", "T9o", "T8o", "98o", "97o", "87o", "76o", "65o",
	),
	opens(SB,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s",
		"JTs", "J9s", "J8s", "J7s",
		"T9s", "T8s", "T7s", "98s", "97s", "96s", "87s", "86s", "76s", "75s", "65s", "64s",
		"54s", "53s", "43s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o",
		"KQo", "KJo", "KTo", "K9o",
		"QJo", "QTo", "Q9o", "JTo", "J9o", "T9o", "T8o", "98o", "87o", "76o",
	),
}

var sixMaxFacingRaise = []authored{
	versusRaise(MP,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88", "77",
			"AQs", "AJs", "ATs", "KQs", "KJs", "QJs", "JTs", "T9s", "98s", "87s", "76s", "65s",
			"AQo",
		),
	),
	versusRaise(CO,
		hands(
			"AA", "KK", "QQ", "JJ",
			"AKs", "AQs",
			"AKo",
		),
		hands(
			"TT", "99", "88", "77", "66",
			"AJs", "ATs", "A9s", "A5s", "A4s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "J9s", "T9s", "98s", "87s", "76s", "65s",
			"54s",
			"AQo", "AJo", "KQo",
		),
	),
	versusRaise(BTN,
		hands(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "AJs", "A5s", "A4s",
			"AKo", "AQo",
		),
		hands(
			"99", "88", "77", "66", "55",
			"ATs", "A9s", "A8s", "A7s", "A6s", "A3s", "A2s",
			"KQs", "KJs", "KTs", "K9s",
			"QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "T8s", "98s", "97s", "87s", "86s",
			"76s", "75s", "65s", "64s", "54s",
			"AJo", "ATo", "KQo", "KJo", "QJo", "JTo",
		),
	),
	versusRaise(SB,
		hands(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "AJs", "A5s",
			"AKo", "AQo",
		),
		hands(
			"99", "88", "77",
			"ATs", "A9s", "A8s", "A4s", "A3s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "T9s", "98s", "87s", "76s", "65s",
			"AJo", "KQo",
		),
	),
	versusRaise(BB,
		hands(
			"AA", "KK", "QQ",
			"AKs", "AQs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
			"AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
			"KQs", "KJs", "KTs", "K9s", "K8s", "K7s",
			"QJs", "QTs", "Q9s", "Q8s",
			"JTs", "J9s", "J8s", "T9s", "T8s", "98s", "97s", "87s", "86s", "76s", "75s",
			"65s", "64s", "54s", "53s", "43s",
			"AQo", "AJo", "ATo", "A9o",
			"KQo", "KJo", "KTo", "QJo", "QTo", "JTo", "T9o", "98o",
		),
	),
}

var sixMaxFacing3Bet = []authored{
	versus3Bet(UTG,
		hands(
			"AA", "KK",
			"AKs",
		),
		hands(
			"QQ", "JJ", "TT",
			"AQs", "AJs", "KQs",
			"AKo",
		),
	),
	versus3Bet(MP,
		hands(
			"AA", "KK",
			"AKs",
		),
		hands(
			"QQ", "JJ", "TT", "99",
			"AQs", "AJs", "ATs", "KQs",
			"AKo", "AQo",
		),
	),
	versus3Bet(CO,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88",
			"AQs", "AJs", "ATs", "A5s", "A4s",
			"KQs", "KJs", "QJs", "JTs", "T9s", "98s",
			"AQo", "AJo",
		),
	),
	versus3Bet(BTN,
		hands(
			"AA", "KK", "QQ", "JJ",
			"AKs", "AQs",
			"AKo",
		),
		hands(
			"TT", "99", "88", "77",
			"AJs", "ATs", "A9s", "A5s", "A4s", "A3s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "J9s", "T9s", "98s", "87s", "76s",
			"AQo", "AJo", "ATo", "KQo",
		),
	),
	versus3Bet(SB,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88",
			"AQs", "AJs", "ATs", "A5s", "A4s",
			"KQs", "KJs", "QJs", "JTs", "T9s", "98s",
			"AQo", "AJo", "KQo",
		),
	),
}

// Full ring plays tighter from early seats.

var nineMaxOpen = []authored{
	opens(UTG,
		"AA", "KK", "QQ", "JJ", "TT", "99",
		"AKs", "AQs", "AJs", "ATs",
		"KQs", "KJs", "QJs", "JTs",
		"AKo",
	),
	opens(UTG1,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88",
		"AKs", "AQs", "AJs", "ATs", "A5s",
		"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "T9s",
		"AKo", "AQo",
	),
	opens(UTG2,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77",
		"AKs", "AQs", "AJs", "ATs", "A5s", "A4s",
		"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "J9s", "T9s", "98s", "87s", "76s",
		"AKo", "AQo",
	),
	opens(LJ,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s",
		"QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "T8s", "98s", "87s", "76s", "65s", "54s",
		"AKo", "AQo", "AJo", "KQo",
	),
	opens(HJ,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s",
		"QJs", "QTs", "Q9s", "JTs", "J9s", "J8s", "T9s", "T8s", "98s", "97s", "87s", "86s",
		"76s", "75s", "65s", "64s", "54s", "53s", "43s",
		"AKo", "AQo", "AJo", "ATo",
		"KQo", "KJo", "QJo",
	),
	opens(CO,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s",
		"QJs", "QTs", "Q9s", "Q8s",
		"JTs", "J9s", "J8s", "T9s", "T8s", "T7s", "98s", "97s", "87s", "86s", "76s", "75s",
		"65s", "64s", "54s", "53s", "43s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQo", "KJo", "KTo", "QJo", "QTo", "JTo",
	),
	opens(BTN,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s",
		"JTs", "J9s", "J8s", "J7s",
		"T9s", "T8s", "T7s", "98s", "97s", "96s", "87s", "86s", "85s", "76s", "75s",
		"65s", "64s", "54s", "53s", "43s", "32s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o",
		"KQo", "KJo", "KTo", "K9o",
		"QJo", "QTo", "Q9o", "JTo", "J9o", "T9o", "T8o", "98o", "97o", "87o", "76o", "65o",
	),
	opens(SB,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s",
		"JTs", "J9s", "J8s", "J7s",
		"T9s", "T8s", "T7s", "98s", "97s", "96s", "87s", "86s", "76s", "75s", "65s", "64s",
		"54s", "53s", "43s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o",
		"KQo", "KJo", "KTo", "K9o",
		"QJo", "QTo", "Q9o", "JTo", "J9o", "T9o", "T8o", "98o", "87o", "76o",
	),
}

var nineMaxFacingRaise = []authored{
	versusRaise(UTG1,
		hands(
			"AA", "KK", "QQ",
			"AKs",
		),
		hands(
			"JJ", "TT", "99",
			"AQs", "AJs", "KQs",
			"AKo",
		),
	),
	versusRaise(UTG2,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88",
			"AQs", "AJs", "ATs", "KQs", "KJs", "QJs", "JTs",
			"AQo",
		),
	),
	versusRaise(LJ,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88", "77",
			"AQs", "AJs", "ATs", "A5s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "T9s", "98s", "87s", "76s", "65s",
			"AQo", "AJo", "KQo",
		),
	),
	versusRaise(HJ,
		hands(
			"AA", "KK", "QQ", "JJ",
			"AKs", "AQs",
			"AKo",
		),
		hands(
			"TT", "99", "88", "77", "66",
			"AJs", "ATs", "A9s", "A5s", "A4s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "J9s", "T9s", "98s", "87s", "76s", "65s",
			"54s",
			"AQo", "AJo", "KQo",
		),
	),
	versusRaise(CO,
		hands(
			"AA", "KK", "QQ", "JJ",
			"AKs", "AQs", "AJs",
			"AKo",
		),
		hands(
			"TT", "99", "88", "77", "66", "55",
			"ATs", "A9s", "A8s", "A5s", "A4s",
			"KQs", "KJs", "KTs", "K9s",
			"QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "T8s", "98s", "97s", "87s", "86s",
			"76s", "75s", "65s", "54s",
			"AQo", "AJo", "ATo", "KQo", "KJo", "QJo",
		),
	),
	versusRaise(BTN,
		hands(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "AJs", "A5s", "A4s",
			"AKo", "AQo",
		),
		hands(
			"99", "88", "77", "66", "55", "44",
			"ATs", "A9s", "A8s", "A7s", "A6s", "A3s", "A2s",
			"KQs", "KJs", "KTs", "K9s", "K8s",
			"QJs", "QTs", "Q9s", "JTs", "J9s", "J8s", "T9s", "T8s", "98s", "97s", "87s", "86s",
			"76s", "75s", "65s", "64s", "54s", "53s",
			"AJo", "ATo", "A9o", "KQo", "KJo", "KTo", "QJo", "QTo", "JTo",
		),
	),
	versusRaise(SB,
		hands(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "AJs", "A5s",
			"AKo", "AQo",
		),
		hands(
			"99", "88", "77",
			"ATs", "A9s", "A8s", "A4s", "A3s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "T9s", "98s", "87s", "76s", "65s",
			"AJo", "KQo",
		),
	),
	versusRaise(BB,
		hands(
			"AA", "KK", "QQ",
			"AKs", "AQs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
			"AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
			"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s",
			"QJs", "QTs", "Q9s", "Q8s", "Q7s",
			"JTs", "J9s", "J8s", "T9s", "T8s", "98s", "97s", "87s", "86s", "76s", "75s",
			"65s", "64s", "54s", "53s", "43s",
			"AQo", "AJo", "ATo", "A9o", "A8o",
			"KQo", "KJo", "KTo", "K9o",
			"QJo", "QTo", "JTo", "T9o", "98o", "87o",
		),
	),
}

var nineMaxFacing3Bet = []authored{
	versus3Bet(UTG,
		hands(
			"AA", "KK",
		),
		hands(
			"QQ", "JJ",
			"AKs", "AQs",
			"AKo",
		),
	),
	versus3Bet(UTG1,
		hands(
			"AA", "KK",
			"AKs",
		),
		hands(
			"QQ", "JJ", "TT",
			"AQs", "AJs", "KQs",
			"AKo",
		),
	),
	versus3Bet(UTG2,
		hands(
			"AA", "KK",
			"AKs",
		),
		hands(
			"QQ", "JJ", "TT", "99",
			"AQs", "AJs", "ATs", "KQs",
			"AKo", "AQo",
		),
	),
	versus3Bet(LJ,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99",
			"AQs", "AJs", "ATs", "A5s",
			"KQs", "KJs", "QJs", "JTs",
			"AQo", "AJo",
		),
	),
	versus3Bet(HJ,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88",
			"AQs", "AJs", "ATs", "A5s", "A4s",
			"KQs", "KJs", "QJs", "JTs", "T9s", "98s",
			"AQo", "AJo",
		),
	),
	versus3Bet(CO,
		hands(
			"AA", "KK", "QQ", "JJ",
			"AKs", "AQs",
			"AKo",
		),
		hands(
			"TT", "99", "88", "77",
			"AJs", "ATs", "A9s", "A5s", "A4s", "A3s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "J9s", "T9s", "98s", "87s",
			"AQo", "AJo", "ATo", "KQo",
		),
	),
	versus3Bet(BTN,
		hands(
			"AA", "KK", "QQ", "JJ",
			"AKs", "AQs",
			"AKo",
		),
		hands(
			"TT", "99", "88", "77",
			"AJs", "ATs", "A9s", "A5s", "A4s", "A3s",
			"KQs", "KJs", "KTs", "QJs", "QTs", "JTs", "J9s", "T9s", "98s", "87s", "76s",
			"AQo", "AJo", "ATo", "KQo",
		),
	),
	versus3Bet(SB,
		hands(
			"AA", "KK", "QQ",
			"AKs",
			"AKo",
		),
		hands(
			"JJ", "TT", "99", "88",
			"AQs", "AJs", "ATs", "A5s", "A4s",
			"KQs", "KJs", "QJs", "JTs", "T9s", "98s",
			"AQo", "AJo", "KQo",
		),
	),
}

var headsUpOpen = []authored{
	opens(BTN,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s", "K3s", "K2s",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s", "Q5s", "Q4s", "Q3s",
		"JTs", "J9s", "J8s", "J7s", "J6s", "J5s",
		"T9s", "T8s", "T7s", "T6s",
		"98s", "97s", "96s", "95s",
		"87s", "86s", "85s", "76s", "75s", "74s", "65s", "64s", "63s", "54s", "53s", "52s",
		"43s", "42s", "32s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o", "A4o", "A3o", "A2o",
		"KQo", "KJo", "KTo", "K9o", "K8o", "K7o", "K6o",
		"QJo", "QTo", "Q9o", "Q8o", "Q7o",
		"JTo", "J9o", "J8o", "J7o",
		"T9o", "T8o", "T7o", "98o", "97o", "96o", "87o", "86o", "85o", "76o", "75o",
		"65o", "64o", "54o", "53o", "43o",
	),
}

var headsUpFacingRaise = []authored{
	versusRaise(BB,
		hands(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "AJs", "A5s", "A4s", "A3s",
			"K9s",
			"AKo", "AQo",
		),
		hands(
			"99", "88", "77", "66", "55", "44", "33", "22",
			"ATs", "A9s", "A8s", "A7s", "A6s", "A2s",
			"KQs", "KJs", "KTs", "K8s", "K7s", "K6s", "K5s", "K4s", "K3s", "K2s",
			"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s", "Q5s",
			"JTs", "J9s", "J8s", "J7s", "J6s",
			"T9s", "T8s", "T7s", "T6s",
			"98s", "97s", "96s", "95s",
			"87s", "86s", "85s", "76s", "75s", "74s", "65s", "64s", "63s", "54s", "53s", "52s",
			"43s", "42s", "32s",
			"AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o", "A4o", "A3o", "A2o",
			"KQo", "KJo", "KTo", "K9o", "K8o", "K7o",
			"QJo", "QTo", "Q9o", "Q8o",
			"JTo", "J9o", "J8o", "T9o", "T8o", "98o", "97o", "87o", "86o", "76o", "75o",
			"65o", "64o", "54o",
		),
	),
}

var headsUpFacing3Bet = []authored{
	versus3Bet(BTN,
		hands(
			"AA", "KK", "QQ", "JJ", "TT",
			"AKs", "AQs", "A5s", "A4s",
			"AKo",
		),
		hands(
			"99", "88", "77", "66", "55",
			"AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A3s", "A2s",
			"KQs", "KJs", "KTs", "K9s", "K8s",
			"QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "T8s", "98s", "97s", "87s", "86s",
			"76s", "75s", "65s", "64s", "54s", "53s", "43s",
			"AQo", "AJo", "ATo", "A9o",
			"KQo", "KJo", "KTo", "QJo", "QTo", "JTo",
		),
	),
}

var authoredCatalog = map[TableSize]map[Scenario][]authored{
	SixMax: {
		Open:        sixMaxOpen,
		FacingRaise: sixMaxFacingRaise,
		Facing3Bet:  sixMaxFacing3Bet,
	},
	NineMax: {
		Open:        nineMaxOpen,
		FacingRaise: nineMaxFacingRaise,
		Facing3Bet:  nineMaxFacing3Bet,
	},
	HeadsUp: {
		Open:        headsUpOpen,
		FacingRaise: headsUpFacingRaise,
		Facing3Bet:  headsUpFacing3Bet,
	},
}

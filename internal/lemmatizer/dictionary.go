package lemmatizer

// defaultDictionary holds the built-in irregular-form table: every
// attested inflection of the irregular verbs and compound/prefixed
// derivatives, the irregular noun plurals (including Latin/Greek
// morphology and multi-spelling variants), and suppletive
// adjective/adverb comparatives and superlatives named in
// stemmer_const.h's NIrregularVerbs, NIrregularNouns and
// NIrregularAdjectives tables. AddWord is the extension point for
// anything still missing.
var defaultDictionary = buildDictionary()

func buildDictionary() map[string]string {
	d := make(map[string]string, 1024)

	addVerb := func(lemma string, forms ...string) {
		for _, f := range forms {
			d[f] = lemma
		}
	}

	addVerb("be", "am", "is", "are", "was", "were", "been", "being")
	addVerb("have", "has", "had", "having")
	addVerb("do", "does", "did", "doing", "done")
	addVerb("go", "goes", "went", "going", "gone")
	addVerb("undergo", "undergoes", "underwent", "undergone", "undergoing")
	addVerb("forgo", "forgoes", "forwent", "forgone", "forgoing")
	addVerb("run", "runs", "ran", "running")
	addVerb("overrun", "overruns", "overran", "overrunning")
	addVerb("rerun", "reruns", "reran", "rerunning")
	addVerb("take", "takes", "took", "taken", "taking")
	addVerb("undertake", "undertakes", "undertook", "undertaken", "undertaking")
	addVerb("mistake", "mistakes", "mistook", "mistaken", "mistaking")
	addVerb("overtake", "overtakes", "overtook", "overtaken", "overtaking")
	addVerb("retake", "retakes", "retook", "retaken", "retaking")
	addVerb("give", "gives", "gave", "given", "giving")
	addVerb("see", "sees", "saw", "seen", "seeing")
	addVerb("foresee", "foresees", "foresaw", "foreseen", "foreseeing")
	addVerb("oversee", "oversees", "oversaw", "overseen", "overseeing")
	addVerb("come", "comes", "came", "coming")
	addVerb("become", "becomes", "became", "becoming")
	addVerb("overcome", "overcomes", "overcame", "overcoming")
	addVerb("know", "knows", "knew", "known", "knowing")
	addVerb("make", "makes", "made", "making")
	addVerb("remake", "remakes", "remade", "remaking")
	addVerb("unmake", "unmakes", "unmade", "unmaking")
	addVerb("say", "says", "said", "saying")
	addVerb("tell", "tells", "told", "telling")
	addVerb("retell", "retells", "retold", "retelling")
	addVerb("foretell", "foretells", "foretold", "foretelling")
	addVerb("think", "thinks", "thought", "thinking")
	addVerb("rethink", "rethinks", "rethought", "rethinking")
	addVerb("find", "finds", "found", "finding")
	addVerb("get", "gets", "got", "gotten", "getting")
	addVerb("forget", "forgets", "forgot", "forgotten", "forgetting")
	addVerb("beget", "begets", "begot", "begotten", "begetting")
	addVerb("leave", "leaves", "left", "leaving")
	addVerb("feel", "feels", "felt", "feeling")
	addVerb("bring", "brings", "brought", "bringing")
	addVerb("buy", "buys", "bought", "buying")
	addVerb("catch", "catches", "caught", "catching")
	addVerb("teach", "teaches", "taught", "teaching")
	addVerb("seek", "seeks", "sought", "seeking")
	addVerb("write", "writes", "wrote", "written", "writing")
	addVerb("rewrite", "rewrites", "rewrote", "rewritten", "rewriting")
	addVerb("overwrite", "overwrites", "overwrote", "overwritten", "overwriting")
	addVerb("speak", "speaks", "spoke", "spoken", "speaking")
	addVerb("break", "breaks", "broke", "broken", "breaking")
	addVerb("outbreak", "outbreaks", "outbroke", "outbroken", "outbreaking")
	addVerb("choose", "chooses", "chose", "chosen", "choosing")
	addVerb("drive", "drives", "drove", "driven", "driving")
	addVerb("overdrive", "overdrives", "overdrove", "overdriven", "overdriving")
	addVerb("ride", "rides", "rode", "ridden", "riding")
	addVerb("override", "overrides", "overrode", "overridden", "overriding")
	addVerb("rise", "rises", "rose", "risen", "rising")
	addVerb("arise", "arises", "arose", "arisen", "arising")
	addVerb("fly", "flies", "flew", "flown", "flying")
	addVerb("overfly", "overflies", "overflew", "overflown", "overflying")
	addVerb("grow", "grows", "grew", "grown", "growing")
	addVerb("outgrow", "outgrows", "outgrew", "outgrown", "outgrowing")
	addVerb("throw", "throws", "threw", "thrown", "throwing")
	addVerb("overthrow", "overthrows", "overthrew", "overthrown", "overthrowing")
	addVerb("draw", "draws", "drew", "drawn", "drawing")
	addVerb("withdraw", "withdraws", "withdrew", "withdrawn", "withdrawing")
	addVerb("sing", "sings", "sang", "sung", "singing")
	addVerb("swim", "swims", "swam", "swum", "swimming")
	addVerb("begin", "begins", "began", "begun", "beginning")
	addVerb("drink", "drinks", "drank", "drunk", "drinking")
	addVerb("ring", "rings", "rang", "rung", "ringing")
	addVerb("sit", "sits", "sat", "sitting")
	addVerb("babysit", "babysits", "babysat", "babysitting")
	addVerb("stand", "stands", "stood", "standing")
	addVerb("understand", "understands", "understood", "understanding")
	addVerb("withstand", "withstands", "withstood", "withstanding")
	addVerb("hold", "holds", "held", "holding")
	addVerb("behold", "beholds", "beheld", "beholding")
	addVerb("withhold", "withholds", "withheld", "withholding")
	addVerb("uphold", "upholds", "upheld", "upholding")
	addVerb("read", "reads", "reading")
	addVerb("lead", "leads", "led", "leading")
	addVerb("mislead", "misleads", "misled", "misleading")
	addVerb("meet", "meets", "met", "meeting")
	addVerb("pay", "pays", "paid", "paying")
	addVerb("repay", "repays", "repaid", "repaying")
	addVerb("overpay", "overpays", "overpaid", "overpaying")
	addVerb("send", "sends", "sent", "sending")
	addVerb("spend", "spends", "spent", "spending")
	addVerb("overspend", "overspends", "overspent", "overspending")
	addVerb("build", "builds", "built", "building")
	addVerb("rebuild", "rebuilds", "rebuilt", "rebuilding")
	addVerb("lose", "loses", "lost", "losing")
	addVerb("keep", "keeps", "kept", "keeping")
	addVerb("sleep", "sleeps", "slept", "sleeping")
	addVerb("oversleep", "oversleeps", "overslept", "oversleeping")
	addVerb("win", "wins", "won", "winning")
	addVerb("wear", "wears", "wore", "worn", "wearing")
	addVerb("beat", "beats", "beaten", "beating")
	addVerb("bite", "bites", "bit", "bitten", "biting")
	addVerb("bind", "binds", "bound", "binding")
	addVerb("unbind", "unbinds", "unbound", "unbinding")
	addVerb("rebind", "rebinds", "rebound", "rebinding")
	addVerb("bleed", "bleeds", "bled", "bleeding")
	addVerb("blow", "blows", "blew", "blown", "blowing")
	addVerb("overblow", "overblows", "overblew", "overblown", "overblowing")
	addVerb("bear", "bears", "bore", "born", "borne", "bearing")
	addVerb("eat", "eats", "ate", "eaten", "eating")
	addVerb("overeat", "overeats", "overate", "overeaten", "overeating")
	addVerb("fall", "falls", "fell", "fallen", "falling")
	addVerb("befall", "befalls", "befell", "befallen", "befalling")
	addVerb("hide", "hides", "hid", "hidden", "hiding")
	addVerb("shake", "shakes", "shook", "shaken", "shaking")
	addVerb("freeze", "freezes", "froze", "frozen", "freezing")
	addVerb("steal", "steals", "stole", "stolen", "stealing")
	addVerb("tear", "tears", "tore", "torn", "tearing")
	addVerb("weave", "weaves", "wove", "woven", "weaving")
	addVerb("forbid", "forbids", "forbade", "forbidden", "forbidding")
	addVerb("forgive", "forgives", "forgave", "forgiven", "forgiving")
	addVerb("lie", "lies", "lay", "lain", "lying")
	addVerb("lay", "lays", "laid", "laying")
	addVerb("shine", "shines", "shone", "shined", "shining")
	addVerb("shoot", "shoots", "shot", "shooting")
	addVerb("overshoot", "overshoots", "overshot", "overshooting")
	addVerb("show", "shows", "showed", "shown", "showing")
	addVerb("shrink", "shrinks", "shrank", "shrunk", "shrinking")
	addVerb("shut", "shuts", "shutting")
	addVerb("slay", "slays", "slew", "slain", "slaying")
	addVerb("slide", "slides", "slid", "sliding")
	addVerb("sling", "slings", "slung", "slinging")
	addVerb("slit", "slits", "slitting")
	addVerb("smite", "smites", "smote", "smitten", "smiting")
	addVerb("sow", "sows", "sowed", "sown", "sowing")
	addVerb("spin", "spins", "spun", "spinning")
	addVerb("spit", "spits", "spat", "spitting")
	addVerb("split", "splits", "splitting")
	addVerb("spread", "spreads", "spreading")
	addVerb("spring", "springs", "sprang", "sprung", "springing")
	addVerb("stick", "sticks", "stuck", "sticking")
	addVerb("sting", "stings", "stung", "stinging")
	addVerb("stink", "stinks", "stank", "stunk", "stinking")
	addVerb("stride", "strides", "strode", "stridden", "striding")
	addVerb("strike", "strikes", "struck", "stricken", "striking")
	addVerb("string", "strings", "strung", "stringing")
	addVerb("strive", "strives", "strove", "striven", "striving")
	addVerb("swear", "swears", "swore", "sworn", "swearing")
	addVerb("sweep", "sweeps", "swept", "sweeping")
	addVerb("swell", "swells", "swelled", "swollen", "swelling")
	addVerb("swing", "swings", "swung", "swinging")
	addVerb("tread", "treads", "trod", "trodden", "treading")
	addVerb("wake", "wakes", "woke", "woken", "waking")
	addVerb("awake", "awakes", "awoke", "awoken", "awaking")
	addVerb("wind", "winds", "wound", "winding")
	addVerb("unwind", "unwinds", "unwound", "unwinding")
	addVerb("rewind", "rewinds", "rewound", "rewinding")
	addVerb("wring", "wrings", "wrung", "wringing")
	addVerb("light", "lights", "lit", "lighted", "lighting")
	addVerb("quit", "quits", "quitting")
	addVerb("set", "sets", "setting")
	addVerb("cut", "cuts", "cutting")
	addVerb("undercut", "undercuts", "undercutting")
	addVerb("hit", "hits", "hitting")
	addVerb("put", "puts", "putting")
	addVerb("let", "lets", "letting")
	addVerb("cost", "costs", "costing")
	addVerb("cast", "casts", "casting")
	addVerb("broadcast", "broadcasts", "broadcasting")
	addVerb("forecast", "forecasts", "forecasting")
	addVerb("overcast", "overcasts", "overcasting")
	addVerb("burst", "bursts", "bursting")
	addVerb("hurt", "hurts", "hurting")
	addVerb("bet", "bets", "betting")
	addVerb("bend", "bends", "bent", "bending")
	addVerb("lend", "lends", "lent", "lending")
	addVerb("feed", "feeds", "fed", "feeding")
	addVerb("overfeed", "overfeeds", "overfed", "overfeeding")
	addVerb("breed", "breeds", "bred", "breeding")
	addVerb("crossbreed", "crossbreeds", "crossbred", "crossbreeding")
	addVerb("speed", "speeds", "sped", "speeding")
	addVerb("flee", "flees", "fled", "fleeing")
	addVerb("deal", "deals", "dealt", "dealing")
	addVerb("mean", "means", "meant", "meaning")
	addVerb("lean", "leans", "leant", "leaned", "leaning")
	addVerb("leap", "leaps", "leapt", "leaped", "leaping")
	addVerb("overleap", "overleaps", "overleapt", "overleaping")
	addVerb("learn", "learns", "learnt", "learned", "learning")
	addVerb("burn", "burns", "burnt", "burned", "burning")
	addVerb("smell", "smells", "smelt", "smelled", "smelling")
	addVerb("spell", "spells", "spelt", "spelled", "spelling")
	addVerb("misspell", "misspells", "misspelt", "misspelling")
	addVerb("spill", "spills", "spilt", "spilled", "spilling")
	addVerb("spoil", "spoils", "spoilt", "spoiled", "spoiling")
	addVerb("dream", "dreams", "dreamt", "dreamed", "dreaming")
	addVerb("dwell", "dwells", "dwelt", "dwelled", "dwelling")
	addVerb("hang", "hangs", "hung", "hanged", "hanging")
	addVerb("overhang", "overhangs", "overhung", "overhanging")
	addVerb("dig", "digs", "dug", "digging")
	addVerb("cling", "clings", "clung", "clinging")
	addVerb("fling", "flings", "flung", "flinging")

	// Not in stemmer_const.h's tables but attested irregulars, kept
	// from the original table.
	addVerb("want", "wants", "wanted", "wanting")
	addVerb("hear", "hears", "heard", "hearing")
	addVerb("fight", "fights", "fought", "fighting")
	addVerb("sell", "sells", "sold", "selling")

	addNoun := func(lemma string, plurals ...string) {
		for _, p := range plurals {
			d[p] = lemma
		}
	}

	addNoun("child", "children")
	addNoun("man", "men")
	addNoun("woman", "women")
	addNoun("foot", "feet")
	addNoun("tooth", "teeth")
	addNoun("mouse", "mice")
	addNoun("goose", "geese")
	addNoun("person", "people")
	addNoun("louse", "lice")
	addNoun("ox", "oxen")
	addNoun("deer", "deer")
	addNoun("sheep", "sheep")
	addNoun("fish", "fish")
	addNoun("moose", "moose")
	addNoun("series", "series")
	addNoun("species", "species")
	addNoun("aircraft", "aircraft")
	addNoun("spacecraft", "spacecraft")
	addNoun("salmon", "salmon")
	addNoun("trout", "trout")
	addNoun("swine", "swine")
	addNoun("bison", "bison")
	addNoun("buffalo", "buffalo")
	addNoun("shrimp", "shrimp")
	addNoun("cod", "cod")
	addNoun("squid", "squid")
	addNoun("cactus", "cacti", "cactuses")
	addNoun("fungus", "fungi", "funguses")
	addNoun("nucleus", "nuclei")
	addNoun("syllabus", "syllabi", "syllabuses")
	addNoun("alumnus", "alumni")
	addNoun("focus", "foci", "focuses")
	addNoun("radius", "radii")
	addNoun("stimulus", "stimuli")
	addNoun("terminus", "termini", "terminuses")
	addNoun("analysis", "analyses")
	addNoun("axis", "axes")
	addNoun("basis", "bases")
	addNoun("crisis", "crises")
	addNoun("diagnosis", "diagnoses")
	addNoun("ellipsis", "ellipses")
	addNoun("hypothesis", "hypotheses")
	addNoun("oasis", "oases")
	addNoun("parenthesis", "parentheses")
	addNoun("synopsis", "synopses")
	addNoun("synthesis", "syntheses")
	addNoun("thesis", "theses")
	addNoun("phenomenon", "phenomena")
	addNoun("criterion", "criteria")
	addNoun("datum", "data")
	addNoun("erratum", "errata")
	addNoun("stratum", "strata")
	addNoun("addendum", "addenda", "addendums")
	addNoun("bacterium", "bacteria")
	addNoun("curriculum", "curricula")
	addNoun("memorandum", "memoranda")
	addNoun("medium", "media")
	addNoun("millennium", "millennia", "millenniums")
	addNoun("ovum", "ova")
	addNoun("spectrum", "spectra", "spectrums")
	addNoun("symposium", "symposia", "symposiums")
	addNoun("alga", "algae")
	addNoun("antenna", "antennae", "antennas")
	addNoun("formula", "formulae", "formulas")
	addNoun("larva", "larvae")
	addNoun("nebula", "nebulae")
	addNoun("vertebra", "vertebrae")
	addNoun("vita", "vitae")
	addNoun("appendix", "appendices", "appendixes")
	addNoun("codex", "codices")
	addNoun("index", "indices", "indexes")
	addNoun("matrix", "matrices", "matrixes")
	addNoun("vertex", "vertices")
	addNoun("vortex", "vortices", "vortexes")
	addNoun("apex", "apices", "apexes")
	addNoun("cortex", "cortices")
	addNoun("helix", "helices")
	addNoun("locus", "loci")
	addNoun("octopus", "octopi", "octopuses")
	addNoun("platypus", "platypuses", "platypi")
	addNoun("genius", "genii", "geniuses")
	addNoun("stylus", "styli", "styluses")
	addNoun("abscissa", "abscissae", "abscissas")
	addNoun("amoeba", "amoebae", "amoebas")
	addNoun("antithesis", "antitheses")
	addNoun("aphis", "aphides")
	addNoun("automaton", "automata", "automatons")
	addNoun("cervix", "cervices")
	addNoun("cranium", "crania", "craniums")
	addNoun("equilibrium", "equilibria", "equilibriums")
	addNoun("ganglion", "ganglia", "ganglions")
	addNoun("genus", "genera")
	addNoun("gymnasium", "gymnasia", "gymnasiums")
	addNoun("penumbra", "penumbrae")
	addNoun("phylum", "phyla")
	addNoun("quantum", "quanta")
	addNoun("rostrum", "rostra", "rostrums")
	addNoun("septum", "septa")
	addNoun("solarium", "solaria")
	addNoun("stamen", "stamina")
	addNoun("thorax", "thoraces")
	addNoun("ultimatum", "ultimata", "ultimatums")
	addNoun("umbra", "umbrae")
	addNoun("uterus", "uteri")
	addNoun("viscus", "viscera")
	addNoun("aquarium", "aquaria", "aquariums")
	addNoun("consortium", "consortia")
	addNoun("emporium", "emporia")
	addNoun("honorarium", "honoraria", "honorariums")
	addNoun("mausoleum", "mausolea", "mausoleums")
	addNoun("moratorium", "moratoria")
	addNoun("planetarium", "planetaria", "planetariums")
	addNoun("podium", "podia", "podiums")
	addNoun("referendum", "referenda", "referendums")
	addNoun("sanatorium", "sanatoria", "sanatoriums")
	addNoun("stadium", "stadia", "stadiums")
	addNoun("terrarium", "terraria", "terrariums")
	addNoun("vivarium", "vivaria", "vivariums")
	addNoun("atrium", "atria")
	addNoun("bacillus", "bacilli")
	addNoun("bronchus", "bronchi")
	addNoun("cilium", "cilia")
	addNoun("flagellum", "flagella")
	addNoun("mitochondrion", "mitochondria")
	addNoun("mycelium", "mycelia")
	addNoun("protozoan", "protozoa")
	addNoun("spermatozoon", "spermatozoa")
	addNoun("vena", "venae")
	addNoun("asymptote", "asymptotes")
	addNoun("binomial", "binomials")
	addNoun("corollary", "corollaries")
	addNoun("maximum", "maxima", "maximums")
	addNoun("minimum", "minima", "minimums")
	addNoun("optimum", "optima", "optimums")
	addNoun("polyhedron", "polyhedra", "polyhedrons")
	addNoun("radix", "radices")
	addNoun("simplex", "simplices")
	addNoun("corpus", "corpora")
	addNoun("lemma", "lemmas", "lemmata")
	addNoun("lexicon", "lexica", "lexicons")
	addNoun("schema", "schemata", "schemas")
	addNoun("pupa", "pupae")
	addNoun("chrysalis", "chrysalises", "chrysalides")
	addNoun("agendum", "agenda")
	addNoun("alumna", "alumnae")
	addNoun("candelabrum", "candelabra")
	addNoun("corrigendum", "corrigenda")
	addNoun("desideratum", "desiderata")
	addNoun("dictum", "dicta")
	addNoun("effluvium", "effluvia")
	addNoun("insigne", "insignia")
	addNoun("vaccinium", "vaccinia")

	// Not in stemmer_const.h's NOUNS[] table but attested English
	// irregular plurals (mostly -f/-fe -> -ves), kept from the original
	// table.
	addNoun("die", "dice")
	addNoun("leaf", "leaves")
	addNoun("knife", "knives")
	addNoun("life", "lives")
	addNoun("wife", "wives")
	addNoun("wolf", "wolves")
	addNoun("half", "halves")
	addNoun("shelf", "shelves")
	addNoun("self", "selves")
	addNoun("calf", "calves")
	addNoun("loaf", "loaves")
	addNoun("thief", "thieves")
	addNoun("elf", "elves")
	addNoun("cherub", "cherubim")

	addSuppletive := func(lemma string, forms ...string) {
		for _, f := range forms {
			d[f] = lemma
		}
	}

	addSuppletive("good", "better", "best")
	addSuppletive("bad", "worse", "worst")
	addSuppletive("far", "farther", "farthest", "further", "furthest")
	addSuppletive("little", "less", "least")
	addSuppletive("much", "more", "most")
	addSuppletive("many", "more", "most")
	addSuppletive("well", "better", "best")
	addSuppletive("old", "older", "oldest", "elder", "eldest")

	return d
}

package stemmer

import "testing"

func TestStemShortWordsUnchanged(t *testing.T) {
	for _, word := range []string{"", "a", "is", "at"} {
		if got := Stem(word); got != word {
			t.Errorf("Stem(%q) = %q, want %q (unchanged, len < 3)", word, got, word)
		}
	}
}

func TestStemStep1a(t *testing.T) {
	cases := map[string]string{
		"caresses": "caress",
		"ponies":   "poni",
		"caress":   "caress",
		"cats":     "cat",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStemStep1b(t *testing.T) {
	cases := map[string]string{
		"feed":      "feed",
		"agreed":    "agree",
		"plastered": "plaster",
		"bled":      "bled",
		"motoring":  "motor",
		"sing":      "sing",
		"conflated": "conflate",
		"troubled":  "trouble",
		"sized":     "size",
		"hopping":   "hop",
		"tanned":    "tan",
		"falling":   "fall",
		"hissing":   "hiss",
		"fizzed":    "fizz",
		"failing":   "fail",
		"filing":    "file",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStemStep1c(t *testing.T) {
	cases := map[string]string{
		"happy": "happi",
		"sky":   "sky",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStemStep2Through4(t *testing.T) {
	cases := map[string]string{
		"relational":     "relat",
		"conditional":    "condit",
		"rationalize":    "ration",
		"valency":        "valenc",
		"hesitancy":      "hesit",
		"digitizer":      "digit",
		"conformabli":    "conform",
		"radicalli":      "radic",
		"differentli":    "differ",
		"vileli":         "vile",
		"analogousli":    "analog",
		"vietnamization": "vietnam",
		"predication":    "predic",
		"operator":       "oper",
		"feudalism":      "feudal",
		"decisiveness":   "decis",
		"hopefulness":    "hope",
		"callousness":    "callous",
		"formaliti":      "formal",
		"sensitiviti":    "sensit",
		"sensibiliti":    "sensibl",
		"triplicate":     "triplic",
		"formative":      "form",
		"formalize":      "formal",
		"electriciti":    "electr",
		"electrical":     "electr",
		"hopeful":        "hope",
		"goodness":       "good",
		"revival":        "reviv",
		"allowance":      "allow",
		"inference":      "infer",
		"airliner":       "airlin",
		"gyroscopic":     "gyroscop",
		"adjustable":     "adjust",
		"defensible":     "defens",
		"irritant":       "irrit",
		"replacement":    "replac",
		"adjustment":     "adjust",
		"dependent":      "depend",
		"adoption":       "adopt",
		"homologou":      "homolog",
		"communism":      "commun",
		"activate":       "activ",
		"angulariti":     "angular",
		"homologous":     "homolog",
		"effective":      "effect",
		"bowdlerize":     "bowdler",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStemStep5(t *testing.T) {
	cases := map[string]string{
		"probate":    "probat",
		"rate":       "rate",
		"cease":      "ceas",
		"controll":   "control",
		"roll":       "roll",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStemSpecEquivalenceScenario(t *testing.T) {
	if got := Stem("running"); got != "run" {
		t.Errorf(`Stem("running") = %q, want "run"`, got)
	}
	if got := Stem("swimmer"); got != "swimmer" {
		t.Errorf(`Stem("swimmer") = %q, want "swimmer"`, got)
	}
	if got := Stem("swim"); got != "swim" {
		t.Errorf(`Stem("swim") = %q, want "swim"`, got)
	}
}

func TestStemIsPure(t *testing.T) {
	a := Stem("nationalization")
	b := Stem("nationalization")
	if a != b {
		t.Errorf("Stem is not a pure function: got %q then %q", a, b)
	}
}

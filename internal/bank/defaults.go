package bank

// DefaultRules returns the built-in bank types for the 3D rock model
// collection. Each call returns fresh values.
func DefaultRules() []Rule {
	rules := []Rule{
		{
			Name:             "RockOrMineral",
			Title:            "Rock or mineral? Level {difficulty}",
			Prompt:           "<p>Is this a rock or a mineral?</p>",
			HTML:             true,
			WordingColumns:   []string{"Embed"},
			FeedbackColumn:   "Description",
			DifficultyColumn: "Difficulty",
			Answer: AnswerRule{
				Mode:    ModeMatch,
				Columns: []string{"Type"},
				Choices: []Choice{
					{Text: "rock", Match: []string{
						"rock",
						"igneous",
						"extrusive igneous",
						"intrusive igneous",
						"sedimentary",
						"sedimentary rock",
						"metamorphic",
						"metamorphic rock",
					}},
					{Text: "mineral", Match: []string{"mineral"}},
				},
			},
		},
		{
			Name:             "RockCycleClassification",
			Title:            "Rock Cycle Rock Classification Level {difficulty}",
			Prompt:           "<p>What kind of rock is this?</p>",
			HTML:             true,
			WordingColumns:   []string{"Embed"},
			FeedbackColumn:   "Description",
			DifficultyColumn: "Difficulty",
			Answer: AnswerRule{
				Mode:    ModeMatch,
				Columns: []string{"Type"},
				Choices: []Choice{
					{Text: "mineral", Match: []string{"mineral"}},
					{Text: "sedimentary", Match: []string{"sedimentary rock", "sedimentary"}},
					{Text: "extrusive igneous", Match: []string{"extrusive igneous"}},
					{Text: "intrusive igneous", Match: []string{"intrusive igneous"}},
					{Text: "metamorphic", Match: []string{"metamorphic", "metamorphic rock"}},
				},
			},
		},
		{
			Name:             "IgneousClassification",
			Title:            "Igneous Rock Classification Level {difficulty}",
			Prompt:           "<p>How did this rock form?</p>",
			HTML:             true,
			WordingColumns:   []string{"Embed"},
			FeedbackColumn:   "Description",
			DifficultyColumn: "Difficulty",
			Filter:           &Filter{Column: "Type", Contains: "igneous"},
			Answer: AnswerRule{
				Mode:    ModeMatch,
				Columns: []string{"Type", "Felsic-Mafic"},
				Choices: []Choice{
					{
						Text:  "Formed during an eruption (extrusive igneous) of felsic lava",
						Match: []string{"extrusive igneous felsic"},
					},
					{
						Text:  "Formed during an eruption (extrusive igneous) of lava of intermediate composition",
						Match: []string{"extrusive igneous intermediate"},
					},
					{
						Text:  "Formed during an eruption (extrusive igneous) of mafic lava",
						Match: []string{"extrusive igneous mafic"},
					},
					{
						Text:  "Felsic magma cooled slowly inside the Earth",
						Match: []string{"intrusive igneous felsic"},
					},
					{
						Text:  "Intermediate composition magma cooled slowly inside the Earth",
						Match: []string{"intrusive igneous intermediate"},
					},
					{
						Text:  "Mafic magma cooled slowly inside the Earth",
						Match: []string{"intrusive igneous mafic"},
					},
				},
			},
		},
	}
	for i := range rules {
		rules[i].Normalize()
	}
	return rules
}

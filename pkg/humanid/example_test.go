package humanid_test

import (
	"fmt"

	"github.com/dmitrymomot/humanids/pkg/humanid"
	"github.com/dmitrymomot/humanids/pkg/lexicon"
)

func ExampleGenerator_Generate() {
	g := humanid.New(humanid.WithCategories(
		lexicon.MustCategory("adjectives", "quick"),
		lexicon.MustCategory("nouns", "fox"),
		lexicon.MustCategory("verbs", "jumps"),
		lexicon.MustCategory("adverbs", "silently"),
	))

	fmt.Println(g.Generate(humanid.DefaultOptions()))
	fmt.Println(g.Generate(humanid.NewBuilder().Separator("").Capitalize(false).AdjectiveCount(0).MustBuild()))
	fmt.Println(g.Generate(humanid.NewBuilder().Separator("_").AddAdverb(true).AdjectiveCount(2).MustBuild()))
	// Output:
	// Quick-Fox-Jumps
	// foxjumps
	// Quick_Quick_Fox_Jumps_Silently
}

func ExampleBuilder() {
	opts, err := humanid.NewBuilder().
		Separator(".").
		Capitalize(false).
		AdjectiveCount(2).
		Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(opts.WordCount())
	// Output: 4
}

package cmd

import (
	"github.com/etnz/pft/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var predictDate = predict.Something

// rangeFlagsPredictors complete the flags of rangeFlags.
var rangeFlagsPredictors = map[string]complete.Predictor{
	"p": predict.Set{"day", "week", "month", "quarter", "year"},
	"s": predictDate,
	"d": predictDate,
}

// completion returns the completion tree of the application.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	list := map[string]complete.Predictor{
		"head": predict.Something,
		"tail": predict.Something,
		"md":   predict.Nothing,
	}
	summary := map[string]complete.Predictor{
		"md": predict.Nothing,
	}
	for name, p := range rangeFlagsPredictors {
		list[name] = p
		summary[name] = p
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"menu": {},
			"init": {},
			"add": {
				Flags: map[string]complete.Predictor{
					"t": predict.Set{"income", "expense"},
					"c": predict.Something,
					"a": predict.Something,
					"m": predict.Something,
					"d": predictDate,
				},
			},
			"list":    {Flags: list},
			"summary": {Flags: summary},
			"export": {
				Flags: map[string]complete.Predictor{
					"format": predict.Set{"json", "yaml"},
					"o":      predict.Files("*"),
				},
			},
			"query": {Args: predict.Something},
			"topic": {Flags: map[string]complete.Predictor{"l": predict.Nothing}, Args: predict.Set(append(topics, "*"))},
			"help":  {Args: predict.Set{"menu", "init", "add", "list", "summary", "export", "query", "topic"}},
		},
		Flags: map[string]complete.Predictor{
			"store":    predict.Files("*.csv"),
			"currency": predict.Set{"EUR", "USD", "GBP", "INR", "JPY", "CHF"},
			"v":        predict.Nothing,
		},
	}
}

// Complete runs the shell completion for the binary called name.
// It exits the program when invoked by the shell, and is a no-op otherwise.
func Complete(name string) {
	completion().Complete(name)
}

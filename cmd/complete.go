package cmd

import (
	"flag"
	"log"

	"github.com/etnz/compound/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands registered in c
// and of the top-level flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = predictFlag(f.Name) })

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictFlag(f.Name) })
		root.Sub[cmd.Name()] = sub
	})

	if sub, ok := root.Sub["topic"]; ok {
		sub.Args = predictTopics()
	}
	for _, name := range []string{"import", "export"} {
		if sub, ok := root.Sub[name]; ok {
			sub.Args = predict.Files("*.json")
		}
	}
	return root
}

func predictFlag(name string) complete.Predictor {
	switch name {
	case "store":
		return predict.Files("*.json")
	case "freq", "pay":
		return predict.Set{"weekly", "fortnightly", "monthly", "yearly"}
	case "category":
		return predict.Set{"necessity", "cost", "savings"}
	case "type":
		return predict.Set{"emergency_fund", "wealth", "time_specific", "debt_free", "etf", "kiwisaver", "other"}
	case "d", "on", "by":
		return predict.Set{"0d", "-1w", "-1m", "+1m", "+1y"}
	case "html", "apply", "sub", "init":
		return predict.Nothing
	}
	return predict.Something
}

func predictTopics() complete.Predictor {
	topics, err := docs.GetAllTopics()
	if err != nil {
		log.Printf("completion-error err=%v", err)
		return predict.Nothing
	}
	return predict.Set(append(topics, "*"))
}

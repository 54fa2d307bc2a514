package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"

	"github.com/hananather/probability/catalog"
	"github.com/hananather/probability/journey"
)

func addCatalogFlag(cmd *kingpin.CmdClause) *string {
	return cmd.Flag("catalog", "YAML route table replacing the built-in chapters").
		Envar("PROBABILITY_CATALOG").
		PlaceHolder("FILE").
		String()
}

func loadCatalog(e *env, path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	e.log.WithField("path", path).Debug("loading catalog")
	return catalog.LoadFile(path)
}

func chaptersCommand(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	cmd := app.Command("chapters", "Print the chapter route table.")
	path := addCatalogFlag(cmd)

	return cmd, func(string) int {
		c, err := loadCatalog(e, *path)
		if err != nil {
			e.log.Error(err)
			return 1
		}
		for _, ch := range c.Chapters {
			fmt.Fprintf(e.out, "%s  %s\n", ch.Path, ch.Title)
			for _, s := range ch.Sections {
				fmt.Fprintf(e.out, "    %s  %s\n", s.URL, s.Title)
			}
		}
		fmt.Fprintf(e.out, "%d chapters, %d sections\n", len(c.Chapters), c.SectionCount())
		return 0
	}
}

func tourCommand(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	cmd := app.Command("tour", "Replay navigation keys (ArrowRight, ArrowLeft, Home, End, ...) through a chapter.")
	path := addCatalogFlag(cmd)
	snapshot := cmd.Flag("snapshot", "print the final progress as YAML").Bool()
	chapter := cmd.Arg("chapter", "chapter path, e.g. /chapter1").Required().String()
	keys := cmd.Arg("keys", "keys to replay").Strings()

	return cmd, func(string) int {
		c, err := loadCatalog(e, *path)
		if err != nil {
			e.log.Error(err)
			return 1
		}
		j, err := c.Journey(*chapter, journey.WithOnComplete(func() {
			fmt.Fprintln(e.out, "chapter complete")
		}))
		if err != nil {
			e.log.Error(err)
			return 1
		}
		j.OnTransition(func(t journey.Transition) {
			e.log.WithFields(logrus.Fields{
				"event": t.Event.String(),
				"from":  t.From,
				"to":    t.To,
			}).Debug("transition")
		})

		fmt.Fprintf(e.out, "start %d %s\n", j.Current(), j.Section().Title)
		for _, key := range *keys {
			t, ok := j.HandleKey(key)
			if !ok {
				e.log.WithField("key", key).Warn("key has no binding")
				continue
			}
			fmt.Fprintf(e.out, "%-10s %d -> %d %s (%.0f%%)\n", key, t.From, t.To, j.Section().Title, 100*j.Progress())
		}

		if *snapshot {
			out, err := yaml.Marshal(j.Snapshot())
			if err != nil {
				e.log.Error(err)
				return 1
			}
			fmt.Fprint(e.out, string(out))
		}
		return 0
	}
}
